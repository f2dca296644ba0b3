package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// PreprocessOptions tunes PrepareForOCR.
type PreprocessOptions struct {
	// DarkThreshold is the mean lightness (0-1) below which the image is
	// inverted. Tesseract reads dark text on a light background best.
	DarkThreshold float64

	// MinWidth is the width in pixels below which the image is upscaled.
	MinWidth int

	// UpscaleFactor multiplies both dimensions of narrow images.
	UpscaleFactor int

	// Contrast is the bild contrast change (-1 to 1). Zero disables it.
	Contrast float64

	// CropToText crops to the text-like area found by TextBounds before
	// upscaling, dropping photo content around captions.
	CropToText bool

	// CropMargin is the padding in pixels kept around the text area.
	CropMargin int
}

// DefaultPreprocessOptions returns settings tuned for memes and screenshots.
func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{
		DarkThreshold: 0.5,
		MinWidth:      1000,
		UpscaleFactor: 2,
		Contrast:      0.3,
		CropMargin:    16,
	}
}

// PrepareForOCR returns a copy of img adjusted for text recognition.
//
// # Steps
//
//  1. Grayscale conversion.
//  2. Inversion when the image is mostly dark, so white caption text
//     becomes dark text on a light background.
//  3. Optional crop to the text area (CropToText).
//  4. Lanczos upscaling when the image is narrower than MinWidth.
//  5. Contrast boost.
//
// The input image is never modified.
func PrepareForOCR(img image.Image, opts PreprocessOptions) image.Image {
	var out image.Image = imaging.Grayscale(img)

	if IsDark(out, opts.DarkThreshold) {
		out = effect.Invert(out)
	}

	if opts.CropToText {
		out = CropToText(out, opts.CropMargin)
	}

	bounds := out.Bounds()
	if opts.UpscaleFactor > 1 && bounds.Dx() > 0 && bounds.Dx() < opts.MinWidth {
		out = imaging.Resize(out, bounds.Dx()*opts.UpscaleFactor, bounds.Dy()*opts.UpscaleFactor, imaging.Lanczos)
	}

	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast)
	}

	return out
}
