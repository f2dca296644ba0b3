package ocr

import "context"

// DefaultLanguage is the Tesseract language code used when none is configured.
const DefaultLanguage = "eng"

// Engine recognizes text in an encoded image.
//
// Implementations must be safe for concurrent use; the pipeline calls
// Recognize from several goroutines at once.
type Engine interface {
	// Recognize returns the raw text found in image (PNG bytes) using the
	// given language code. An image without text returns "" and a nil error.
	Recognize(ctx context.Context, image []byte, language string) (string, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, image []byte, language string) (string, error)

// Recognize calls f.
func (f EngineFunc) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	return f(ctx, image, language)
}
