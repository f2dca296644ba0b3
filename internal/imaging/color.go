package imaging

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxLightnessSamples caps how many pixels MeanLightness reads per axis.
const maxLightnessSamples = 256

// MeanLightness returns the average perceptual lightness of img.
//
// Lightness is the CIE L* component, scaled to 0.0 (black) through 1.0
// (white). Large images are sampled on a regular grid of at most
// maxLightnessSamples x maxLightnessSamples pixels. Fully transparent
// pixels are ignored. An empty image, or one with no opaque pixel,
// reports 1.0.
func MeanLightness(img image.Image) float64 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 1.0
	}

	stepX := max(1, width/maxLightnessSamples)
	stepY := max(1, height/maxLightnessSamples)

	var total float64
	var count int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			total += l
			count++
		}
	}

	if count == 0 {
		return 1.0
	}
	return clamp01(total / float64(count))
}

// IsDark reports whether img is mostly dark, i.e. its mean lightness is
// below threshold.
func IsDark(img image.Image, threshold float64) bool {
	return MeanLightness(img) < threshold
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
