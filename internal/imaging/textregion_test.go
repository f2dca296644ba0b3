package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createStrokeImage draws letter-like vertical strokes inside area on a
// white width x height canvas
func createStrokeImage(width, height int, area image.Rectangle) *image.RGBA {
	img := createInMemoryImage(width, height, color.White)
	for x := area.Min.X; x+1 < area.Max.X; x += 12 {
		for y := area.Min.Y; y < area.Max.Y; y++ {
			img.Set(x, y, color.Black)
			img.Set(x+1, y, color.Black)
		}
	}
	return img
}

func TestTextBounds_Blank(t *testing.T) {
	img := createInMemoryImage(400, 200, color.White)

	if r, ok := TextBounds(img); ok {
		t.Errorf("blank image should have no text area, got %v", r)
	}
}

func TestTextBounds_Strokes(t *testing.T) {
	text := image.Rect(200, 120, 400, 140)
	img := createStrokeImage(600, 300, text)

	r, ok := TextBounds(img)
	if !ok {
		t.Fatal("expected a text area")
	}
	t.Logf("text area: %v", r)

	center := image.Pt(300, 130)
	if !center.In(r) {
		t.Errorf("text area %v should contain %v", r, center)
	}
	if r.Dy() >= 300 {
		t.Errorf("text area %v should be shorter than the image", r)
	}
	if !r.In(img.Bounds()) {
		t.Errorf("text area %v outside image", r)
	}
}

func TestTextBounds_OffsetImage(t *testing.T) {
	src := createStrokeImage(600, 300, image.Rect(200, 120, 400, 140))
	shifted := src.SubImage(image.Rect(100, 50, 600, 300))

	r, ok := TextBounds(shifted)
	if !ok {
		t.Fatal("expected a text area")
	}
	if !r.In(shifted.Bounds()) {
		t.Errorf("text area %v should use source coordinates within %v", r, shifted.Bounds())
	}
}

func TestCropToText(t *testing.T) {
	img := createStrokeImage(600, 300, image.Rect(200, 120, 400, 140))

	out := CropToText(img, 10)

	b := out.Bounds()
	if b.Dy() >= 300 {
		t.Errorf("cropped height %d, want less than 300", b.Dy())
	}
	if b.Dx() < 200 || b.Dy() < 20 {
		t.Errorf("crop %v is smaller than the text", b)
	}
}

func TestCropToText_BlankUnchanged(t *testing.T) {
	img := createInMemoryImage(300, 100, color.White)

	out := CropToText(img, 10)

	if out.Bounds() != img.Bounds() {
		t.Errorf("blank image cropped to %v", out.Bounds())
	}
}

func TestPrepareForOCR_CropToText(t *testing.T) {
	img := createStrokeImage(1200, 600, image.Rect(400, 250, 700, 270))
	opts := DefaultPreprocessOptions()
	opts.CropToText = true
	opts.Contrast = 0

	out := PrepareForOCR(img, opts)

	// The crop is narrower than MinWidth, so it is upscaled afterwards.
	b := out.Bounds()
	if b.Dy() >= 600 {
		t.Errorf("output height %d suggests no crop happened", b.Dy())
	}
}

func TestStrokeScore(t *testing.T) {
	edges := make([][]bool, 20)
	for y := range edges {
		edges[y] = make([]bool, 20)
	}
	if got := strokeScore(edges, 0, 0, 20, 20); got != 0 {
		t.Errorf("empty window score = %.2f, want 0", got)
	}

	// Vertical strokes: many horizontal runs, few vertical ones.
	for y := 2; y < 18; y++ {
		for x := 2; x < 18; x += 4 {
			edges[y][x] = true
		}
	}
	if got := strokeScore(edges, 0, 0, 20, 20); got < minStrokeScore {
		t.Errorf("vertical strokes score = %.2f, want >= %.2f", got, minStrokeScore)
	}
}
