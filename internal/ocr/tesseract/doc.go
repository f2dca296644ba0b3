// Package tesseract provides the production OCR engine backed by Tesseract.
//
// With cgo enabled the engine uses the gosseract library and the system's
// libtesseract and Leptonica. Training data comes from the system
// installation, from the TESSDATA_PREFIX environment variable, or from an
// explicit Options.TessdataPrefix.
//
// Without cgo, New returns ErrUnavailable so the rest of the program still
// builds and can report a clear error.
//
// # Installation
//
//	Debian/Ubuntu: apt install tesseract-ocr libtesseract-dev libleptonica-dev
//	macOS:         brew install tesseract leptonica
package tesseract
