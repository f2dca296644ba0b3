package tesseract

import "errors"

// ErrUnavailable is returned when the binary was built without cgo and
// therefore has no Tesseract bindings.
var ErrUnavailable = errors.New("tesseract OCR is unavailable: binary built without cgo")

// Options configures the Tesseract engine.
type Options struct {
	// TessdataPrefix is the directory holding *.traineddata files.
	// Empty means Tesseract's own default lookup (including TESSDATA_PREFIX).
	TessdataPrefix string
}
