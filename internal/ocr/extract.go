package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/ironsheep/image-renamer/internal/errors"
	"github.com/ironsheep/image-renamer/internal/imaging"
)

// Extraction is the outcome of reading text from one image.
//
// Exactly one of three states holds: text was found (Present), the image
// had no text (neither Present nor Failed), or extraction failed (Failed,
// with Err describing why).
type Extraction struct {
	// Text is the recognized text with surrounding whitespace trimmed.
	Text string

	// Err is an EXTRACTION_FAILED error when the image could not be
	// decoded or the engine failed. Text is empty in that case.
	Err error
}

// Present reports whether usable text was extracted.
func (e Extraction) Present() bool {
	return e.Err == nil && e.Text != ""
}

// Failed reports whether extraction failed.
func (e Extraction) Failed() bool {
	return e.Err != nil
}

// ExtractorOptions configures an Extractor.
type ExtractorOptions struct {
	// Language is the Tesseract language code. Defaults to DefaultLanguage.
	Language string

	// Preprocess enables imaging.PrepareForOCR before recognition.
	Preprocess bool

	// PreprocessOptions tunes preprocessing. Zero value means defaults.
	PreprocessOptions *imaging.PreprocessOptions
}

// Extractor turns image files into Extractions.
type Extractor struct {
	fs         afero.Fs
	engine     Engine
	language   string
	preprocess bool
	prepOpts   imaging.PreprocessOptions
	log        *slog.Logger
}

// NewExtractor creates an Extractor reading files from fsys and recognizing
// text with engine. A nil logger discards log output.
func NewExtractor(fsys afero.Fs, engine Engine, opts ExtractorOptions, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	lang := opts.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	prep := imaging.DefaultPreprocessOptions()
	if opts.PreprocessOptions != nil {
		prep = *opts.PreprocessOptions
	}
	return &Extractor{
		fs:         fsys,
		engine:     engine,
		language:   lang,
		preprocess: opts.Preprocess,
		prepOpts:   prep,
		log:        log,
	}
}

// Extract reads the image at path and runs OCR on it.
//
// Extract never returns a Go error: decoding and engine failures are
// logged at error level and reported through Extraction.Err, so one bad
// file cannot disturb the rest of a run.
func (x *Extractor) Extract(ctx context.Context, path string) Extraction {
	text, err := x.recognize(ctx, path)
	if err != nil {
		x.log.Error("Error extracting text", "path", path, "error", err)
		return Extraction{Err: errors.NewExtractionError(path, err)}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		x.log.Debug("No text found", "path", path)
	}
	return Extraction{Text: text}
}

func (x *Extractor) recognize(ctx context.Context, path string) (text string, err error) {
	// cgo engines can panic on malformed input; treat that as a failed file.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("OCR engine panicked: %v", r)
		}
	}()

	img, err := imaging.Load(x.fs, path)
	if err != nil {
		return "", err
	}

	if x.preprocess {
		img = imaging.PrepareForOCR(img, x.prepOpts)
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	text, err = x.engine.Recognize(ctx, data, x.language)
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
