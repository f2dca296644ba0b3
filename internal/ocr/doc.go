// Package ocr extracts text from image files for the renamer.
//
// The package separates the OCR engine from the extraction contract:
//
//   - Engine is the black-box text recognizer. The production implementation
//     lives in the tesseract subpackage and wraps gosseract/v2; tests use
//     EngineFunc fakes.
//   - Extractor loads an image through an afero.Fs, optionally preprocesses
//     it, and asks the Engine for its text.
//
// # Extraction Results
//
// Extractor.Extract returns an Extraction value instead of an error. Callers
// choose what a failure means (skip the file, or fall back to a generic
// name) by checking Failed and Present. Failures are logged by the
// Extractor itself, so callers need not log them again.
//
// # Languages
//
// The default language is English ("eng"). Other Tesseract codes such as
// "deu" or "eng+fra" work when the matching traineddata is installed.
package ocr
