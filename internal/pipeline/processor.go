package pipeline

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/image-renamer/internal/discovery"
	"github.com/ironsheep/image-renamer/internal/naming"
	"github.com/ironsheep/image-renamer/internal/ocr"
)

// Extractor reads the text of one image file. *ocr.Extractor implements it.
type Extractor interface {
	Extract(ctx context.Context, path string) ocr.Extraction
}

// Options configures a Processor.
type Options struct {
	// Dir is the directory whose images are renamed.
	Dir string

	// ProcessAll includes files that already start with the "_" sentinel.
	ProcessAll bool

	// Workers bounds the number of files processed at once.
	// Zero means runtime.NumCPU().
	Workers int

	// MaxFilenameLength caps generated names. Zero means naming.MaxFilenameLength.
	MaxFilenameLength int

	// MaxAttempts caps the disambiguation counter. Zero means naming.DefaultMaxAttempts.
	MaxAttempts int

	// SkipUnreadable leaves files whose extraction failed untouched. By
	// default they are treated as having no text and get a fallback name.
	SkipUnreadable bool

	// Progress receives the progress bar. Nil hides it.
	Progress io.Writer
}

// Processor renames the images of one directory after their text.
type Processor struct {
	fs        afero.Fs
	extractor Extractor
	opts      Options
	log       *slog.Logger
}

// New creates a Processor. A nil logger discards log output.
func New(fsys afero.Fs, extractor Extractor, opts Options, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxFilenameLength <= 0 {
		opts.MaxFilenameLength = naming.MaxFilenameLength
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = naming.DefaultMaxAttempts
	}
	return &Processor{fs: fsys, extractor: extractor, opts: opts, log: log}
}

// Run processes every eligible image in the directory.
//
// Parameters:
//   - ctx: Cancelling it stops dispatching new files. Files already being
//     processed run to completion.
//
// Returns:
//   - *RunStats: Per-outcome counters for the run.
//   - error: A DIRECTORY_ERROR when the directory cannot be listed. Per-file
//     failures are logged and counted, never returned.
func (p *Processor) Run(ctx context.Context) (*RunStats, error) {
	files, err := discovery.Discover(p.fs, p.opts.Dir, discovery.Options{IncludeTagged: p.opts.ProcessAll})
	if err != nil {
		return nil, err
	}
	return p.Process(ctx, files)
}

// Process renames files previously returned by discovery.Discover for the
// same directory. An empty list ends the run immediately.
func (p *Processor) Process(ctx context.Context, files []discovery.ImageFile) (*RunStats, error) {
	stats := &RunStats{Total: len(files)}
	if len(files) == 0 {
		p.log.Info("No valid image files found to process", "dir", p.opts.Dir)
		return stats, nil
	}

	existing, err := discovery.Snapshot(p.fs, p.opts.Dir)
	if err != nil {
		return nil, err
	}
	registry := naming.NewRegistry(existing,
		naming.WithMaxLength(p.opts.MaxFilenameLength),
		naming.WithMaxAttempts(p.opts.MaxAttempts),
	)

	p.log.Info("Processing images", "dir", p.opts.Dir, "count", len(files), "workers", p.opts.Workers)

	bar := newProgressBar(p.opts.Progress, len(files))
	taskCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(p.opts.Workers)

	for i, f := range files {
		if ctx.Err() != nil {
			stats.Cancelled.Add(int64(len(files) - i))
			break
		}
		g.Go(func() error {
			defer bar.Add(1)
			p.processFile(taskCtx, registry, f, stats)
			return nil
		})
	}
	_ = g.Wait()
	_ = bar.Finish()

	if n := stats.Cancelled.Load(); n > 0 {
		p.log.Warn("Interrupted, remaining files left untouched", "remaining", n)
	}
	p.log.Info("Processing complete", stats.LogAttrs()...)
	return stats, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Renaming images"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(w, "\n") }),
	)
}
