package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// Load reads and decodes the image at path.
//
// Parameters:
//   - fsys: Filesystem to read from. Use afero.NewOsFs() for the real disk.
//   - path: Path to the image file. Supported formats are PNG, JPEG and GIF
//     (and anything else the imaging package registers).
//
// Returns:
//   - image.Image: The decoded image, rotated according to its EXIF
//     orientation tag so text reads upright.
//   - error: Non-nil if the file cannot be read or is not a decodable image.
//
// For animated GIFs only the first frame is returned.
func Load(fsys afero.Fs, path string) (image.Image, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Decode decodes image bytes, applying EXIF auto-orientation.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes img as PNG.
//
// Images are always handed to the OCR engine as PNG: Leptonica builds
// without giflib or libjpeg reject those inputs.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
