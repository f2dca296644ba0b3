//go:build !cgo

package tesseract

import "context"

// Engine is a placeholder used when cgo is disabled.
type Engine struct{}

// New always fails with ErrUnavailable.
func New(opts Options) (*Engine, error) {
	return nil, ErrUnavailable
}

// Recognize always fails with ErrUnavailable.
func (e *Engine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	return "", ErrUnavailable
}

// Version returns an empty string.
func (e *Engine) Version() string {
	return ""
}
