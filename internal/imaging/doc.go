// Package imaging loads images and prepares them for text recognition.
//
// This package sits between the filesystem and the OCR engine. It decodes
// image files through an afero.Fs, normalizes orientation, and can apply a
// small preprocessing chain that improves Tesseract's results on memes,
// screenshots and other images with styled captions.
//
// # Loading
//
// Load reads a file and decodes it with EXIF auto-orientation. Decoding
// always happens in Go, which doubles as validation: a truncated or corrupt
// file fails here, before any OCR work is spent on it. EncodePNG turns the
// decoded image into the bytes handed to the engine.
//
// # Preprocessing
//
// PrepareForOCR converts to grayscale, inverts mostly-dark images, upscales
// narrow ones and boosts contrast. MeanLightness (CIE L*, via go-colorful)
// drives the inversion decision.
//
// # Text Regions
//
// TextBounds locates caption-like areas with an edge-density heuristic:
// windows whose edges are neither sparse nor dense, and whose runs look like
// vertical letter strokes, are merged into one rectangle. CropToText uses it
// to drop photo content around a caption when PreprocessOptions.CropToText
// is set.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently on different
// images. Input images are never modified.
package imaging
