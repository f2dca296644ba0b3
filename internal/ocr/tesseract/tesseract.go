//go:build cgo

package tesseract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text with native Tesseract through gosseract.
//
// A new gosseract client is created for every call, so one Engine can be
// shared by any number of goroutines.
type Engine struct {
	opts Options

	tessdataOnce sync.Once
	tessdataErr  error
}

// New creates an Engine.
//
// Parameters:
//   - opts: Engine options. A non-empty TessdataPrefix must name an
//     existing directory.
//
// Returns:
//   - *Engine: Ready to use engine.
//   - error: Non-nil if the tessdata directory is missing.
func New(opts Options) (*Engine, error) {
	e := &Engine{opts: opts}
	if err := e.ensureTessdata(); err != nil {
		return nil, err
	}
	return e, nil
}

// ensureTessdata verifies the configured training data directory once.
func (e *Engine) ensureTessdata() error {
	e.tessdataOnce.Do(func() {
		if e.opts.TessdataPrefix == "" {
			return
		}
		info, err := os.Stat(e.opts.TessdataPrefix)
		if err != nil {
			e.tessdataErr = fmt.Errorf("tessdata directory: %w", err)
			return
		}
		if !info.IsDir() {
			e.tessdataErr = fmt.Errorf("tessdata path is not a directory: %s", e.opts.TessdataPrefix)
		}
	})
	return e.tessdataErr
}

// Recognize performs OCR on encoded image bytes and returns the raw text.
//
// Parameters:
//   - ctx: Checked before the (uninterruptible) native call starts.
//   - image: Encoded image. PNG is always supported; other formats depend
//     on how Leptonica was built.
//   - language: Tesseract language code such as "eng" or "eng+fra".
//
// Returns:
//   - string: Recognized text with Tesseract's original spacing and newlines.
//   - error: Non-nil if the context is done or Tesseract fails.
func (e *Engine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := e.ensureTessdata(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(e.opts.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(strings.Split(language, "+")...); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}

// Version returns the linked Tesseract version.
func (e *Engine) Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
