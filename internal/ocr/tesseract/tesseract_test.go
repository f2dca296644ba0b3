//go:build cgo

package tesseract

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// renderText renders text in basicfont, scales it up, and returns PNG bytes
func renderText(t *testing.T, text string, scale int) []byte {
	t.Helper()

	w, h := len(text)*7+40, 40
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(small, 20, 25, text, color.Black)

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return buf.Bytes()
}

// skipIfUnavailable skips when the local Tesseract install cannot run OCR
func skipIfUnavailable(t *testing.T, err error) {
	t.Helper()
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "tesseract") ||
		strings.Contains(msg, "library") ||
		strings.Contains(msg, "language") {
		t.Skipf("Tesseract not available: %v", err)
	}
}

func TestNew_DefaultTessdata(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if e == nil {
		t.Fatal("New() returned nil engine")
	}
}

func TestNew_MissingTessdataDir(t *testing.T) {
	_, err := New(Options{TessdataPrefix: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Error("New() should fail for a missing tessdata directory")
	}
}

func TestRecognize_RealText(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	text, err := e.Recognize(context.Background(), renderText(t, "HELLO WORLD", 4), "eng")
	if err != nil {
		skipIfUnavailable(t, err)
		t.Fatalf("Recognize failed: %v", err)
	}

	t.Logf("Extracted text: %q", text)
	if !strings.Contains(strings.ToUpper(text), "HELLO") {
		t.Log("Warning: expected word not recognized - may need larger scale or different font")
	}
}

func TestRecognize_SimpleWords(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for _, word := range []string{"TEST", "SALE", "12345"} {
		t.Run(word, func(t *testing.T) {
			text, err := e.Recognize(context.Background(), renderText(t, word, 4), "eng")
			if err != nil {
				skipIfUnavailable(t, err)
				t.Fatalf("Recognize failed: %v", err)
			}
			t.Logf("Input: %q, Output: %q", word, strings.TrimSpace(text))
		})
	}
}

func TestRecognize_BlankImage(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	text, err := e.Recognize(context.Background(), buf.Bytes(), "eng")
	if err != nil {
		skipIfUnavailable(t, err)
		t.Fatalf("Recognize failed: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Logf("blank image produced text %q", text)
	}
}

func TestRecognize_CancelledContext(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Recognize(ctx, renderText(t, "TEST", 2), "eng"); err == nil {
		t.Error("Recognize should fail for a cancelled context")
	}
}

func TestRecognize_InvalidImage(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := e.Recognize(context.Background(), []byte("not an image"), "eng"); err == nil {
		t.Error("Recognize should fail for invalid image bytes")
	}
}

func TestVersion(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Logf("Tesseract version: %q", e.Version())
}
