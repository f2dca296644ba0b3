package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// textWindows are the sliding window sizes tried by TextBounds, from very
// small to large caption text.
var textWindows = []struct{ w, h int }{
	{80, 25},
	{100, 30},
	{150, 40},
	{200, 50},
}

const (
	// edgeThreshold is the gray level step (0-255) that marks an edge.
	edgeThreshold = 30

	// Text has medium edge density: not sparse like a background, not dense like noise.
	minTextDensity = 0.05
	maxTextDensity = 0.4

	// minStrokeScore is the lowest share of horizontal edge runs accepted.
	// Letters are mostly vertical strokes, so scanning a row crosses many
	// short runs while scanning a column crosses few.
	minStrokeScore = 0.5
)

// TextBounds finds the area of img that looks like it contains text.
//
// Parameters:
//   - img: Source image.
//
// Returns:
//   - image.Rectangle: Union of all text-like windows, in img coordinates.
//   - bool: False when no window qualifies (blank or purely photographic
//     images); the rectangle is then empty.
//
// # Algorithm
//
//  1. Edge map of the grayscale image from neighbour differences.
//  2. Windows of several sizes slide over the map in half-window steps.
//  3. A window qualifies when its edge density lies between minTextDensity
//     and maxTextDensity and its stroke score reaches minStrokeScore.
//
// Densities come from a summed-area table, so only candidate windows pay
// for the run counting.
func TextBounds(img image.Image) (image.Rectangle, bool) {
	edges, width, height := edgeMap(img)
	if width == 0 || height == 0 {
		return image.Rectangle{}, false
	}
	sums := integral(edges, width, height)

	var union image.Rectangle
	found := false
	for _, ws := range textWindows {
		stepX, stepY := ws.w/2, ws.h/2
		for y := 0; y+ws.h <= height; y += stepY {
			for x := 0; x+ws.w <= width; x += stepX {
				count := sums[y+ws.h][x+ws.w] - sums[y][x+ws.w] - sums[y+ws.h][x] + sums[y][x]
				density := float64(count) / float64(ws.w*ws.h)
				if density < minTextDensity || density > maxTextDensity {
					continue
				}
				if strokeScore(edges, x, y, ws.w, ws.h) < minStrokeScore {
					continue
				}
				union = union.Union(image.Rect(x, y, x+ws.w, y+ws.h))
				found = true
			}
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return union.Add(img.Bounds().Min), true
}

// CropToText crops img to TextBounds grown by margin pixels on every side.
// Images without a text-like area are returned unchanged.
func CropToText(img image.Image, margin int) image.Image {
	r, ok := TextBounds(img)
	if !ok {
		return img
	}
	r = r.Inset(-margin).Intersect(img.Bounds())
	if r.Empty() || r.Eq(img.Bounds()) {
		return img
	}
	return imaging.Crop(img, r)
}

// edgeMap marks pixels whose gray value differs from the right or lower
// neighbour by more than edgeThreshold.
func edgeMap(img image.Image) ([][]bool, int, int) {
	gray := imaging.Grayscale(img)
	width, height := gray.Bounds().Dx(), gray.Bounds().Dy()

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		if y == height-1 {
			continue
		}
		row := gray.Pix[y*gray.Stride:]
		below := gray.Pix[(y+1)*gray.Stride:]
		for x := 0; x < width-1; x++ {
			c := int(row[x*4])
			dx := abs(c - int(row[(x+1)*4]))
			dy := abs(c - int(below[x*4]))
			edges[y][x] = dx > edgeThreshold || dy > edgeThreshold
		}
	}
	return edges, width, height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// integral builds a summed-area table with one extra leading row and column.
func integral(edges [][]bool, width, height int) [][]int {
	sums := make([][]int, height+1)
	sums[0] = make([]int, width+1)
	for y := 0; y < height; y++ {
		sums[y+1] = make([]int, width+1)
		rowSum := 0
		for x := 0; x < width; x++ {
			if edges[y][x] {
				rowSum++
			}
			sums[y+1][x+1] = sums[y][x+1] + rowSum
		}
	}
	return sums
}

// strokeScore returns horizontal runs / (horizontal + vertical runs) for
// the window, or 0 when it has no edges.
func strokeScore(edges [][]bool, x, y, w, h int) float64 {
	horizontalRuns := 0
	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if edges[row][col] {
				if !inRun {
					horizontalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	verticalRuns := 0
	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if edges[row][col] {
				if !inRun {
					verticalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if horizontalRuns+verticalRuns == 0 {
		return 0
	}
	return float64(horizontalRuns) / float64(horizontalRuns+verticalRuns)
}
