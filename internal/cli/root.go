// Package cli defines the image-renamer command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-renamer/internal/config"
	"github.com/ironsheep/image-renamer/internal/discovery"
	"github.com/ironsheep/image-renamer/internal/errors"
	"github.com/ironsheep/image-renamer/internal/imaging"
	"github.com/ironsheep/image-renamer/internal/logging"
	"github.com/ironsheep/image-renamer/internal/ocr"
	"github.com/ironsheep/image-renamer/internal/ocr/tesseract"
	"github.com/ironsheep/image-renamer/internal/pipeline"
)

// EngineFactory builds the OCR engine for a run.
type EngineFactory func(cfg *config.Config) (ocr.Engine, error)

// TesseractEngine is the production EngineFactory.
func TesseractEngine(cfg *config.Config) (ocr.Engine, error) {
	e, err := tesseract.New(tesseract.Options{TessdataPrefix: cfg.TessdataPrefix})
	if err != nil {
		return nil, err
	}
	return e, nil
}

type rootFlags struct {
	configPath     string
	processAll     bool
	verbose        bool
	workers        int
	lang           string
	tessdata       string
	preprocess     bool
	cropText       bool
	skipUnreadable bool
	logFile        string
	noProgress     bool
}

// NewRootCmd returns the root command operating on the real filesystem
// with the Tesseract engine.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs(), TesseractEngine)
}

func newRootCmd(fsys afero.Fs, newEngine EngineFactory) *cobra.Command {
	f := &rootFlags{}
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "image-renamer <directory>",
		Short: "Rename images after the text they contain",
		Long: `image-renamer reads the text in every JPEG, PNG and GIF image of a directory
with Tesseract OCR and renames each file after it.

Renamed files start with "_" and are skipped on later runs unless --process-all
is given. Images without readable text are named "meme_<N>".

Environment variables:
  IMAGE_RENAMER_WORKERS     Number of images processed at once
  IMAGE_RENAMER_LANG        Tesseract language code
  IMAGE_RENAMER_LOG_FILE    Log file path (empty disables it)
  IMAGE_RENAMER_LOG_LEVEL   debug | info | warn | error
  TESSDATA_PREFIX           Tesseract training data directory

A .env file in the working directory is loaded first.`,
		Example: `  image-renamer ~/Pictures/memes
  image-renamer --process-all --verbose ./screenshots
  image-renamer --lang deu --preprocess -w 2 ./scans`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, f, args[0])
			if err != nil {
				return err
			}
			return run(cmd, fsys, newEngine, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML config file")
	flags.BoolVar(&f.processAll, "process-all", false, `Also process files that already start with "_"`)
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log every rename (info level)")
	flags.IntVarP(&f.workers, "workers", "w", defaults.Workers, "Number of images processed at once")
	flags.StringVar(&f.lang, "lang", defaults.Language, "Tesseract language code (e.g. eng, deu, eng+fra)")
	flags.StringVar(&f.tessdata, "tessdata", "", "Tesseract training data directory")
	flags.BoolVar(&f.preprocess, "preprocess", false, "Grayscale, invert dark images and upscale before OCR")
	flags.BoolVar(&f.cropText, "crop-text", false, "Crop to the text area before OCR (implies --preprocess)")
	flags.BoolVar(&f.skipUnreadable, "skip-unreadable", false, `Leave images whose OCR fails untouched instead of naming them "meme_<N>"`)
	flags.StringVar(&f.logFile, "log-file", defaults.LogFile, "Append logs to this file (empty disables)")
	flags.BoolVar(&f.noProgress, "no-progress", false, "Hide the progress bar")

	return cmd
}

// buildConfig layers defaults, config file, environment and the flags the
// user actually set.
func buildConfig(cmd *cobra.Command, f *rootFlags, dir string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		if err := config.LoadFile(&cfg, f.configPath); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("process-all") {
		cfg.ProcessAll = f.processAll
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("lang") {
		cfg.Language = f.lang
	}
	if changed("tessdata") {
		cfg.TessdataPrefix = f.tessdata
	}
	if changed("preprocess") {
		cfg.Preprocess = f.preprocess
	}
	if changed("crop-text") {
		cfg.CropToText = f.cropText
	}
	if changed("skip-unreadable") {
		cfg.SkipUnreadable = f.skipUnreadable
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("no-progress") {
		cfg.ShowProgress = !f.noProgress
	}

	cfg.Directory = config.NormalizeDirArg(dir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func run(cmd *cobra.Command, fsys afero.Fs, newEngine EngineFactory, cfg *config.Config) error {
	log, err := logging.New(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	// List the directory before paying for engine setup.
	files, err := discovery.Discover(fsys, cfg.Directory, discovery.Options{IncludeTagged: cfg.ProcessAll})
	if err != nil {
		if errors.HasCode(err, errors.CodeDirectory) {
			log.Error("Error accessing directory", "dir", cfg.Directory, "error", err)
		} else {
			log.Error("Error listing images", "dir", cfg.Directory, "error", err)
		}
		return err
	}
	if len(files) == 0 {
		log.Info("No valid image files found to process", "dir", cfg.Directory)
		return nil
	}

	engine, err := newEngine(cfg)
	if err != nil {
		log.Error("OCR engine unavailable", "error", err)
		return fmt.Errorf("failed to initialize OCR engine: %w", err)
	}
	if v, ok := engine.(interface{ Version() string }); ok {
		log.Debug("OCR engine ready", "tesseract", v.Version(), "lang", cfg.Language)
	}

	prep := imaging.DefaultPreprocessOptions()
	prep.CropToText = cfg.CropToText
	extractor := ocr.NewExtractor(fsys, engine, ocr.ExtractorOptions{
		Language:          cfg.Language,
		Preprocess:        cfg.Preprocess || cfg.CropToText,
		PreprocessOptions: &prep,
	}, log.Logger)

	var progress io.Writer
	if cfg.ShowProgress {
		progress = cmd.ErrOrStderr()
	}

	proc := pipeline.New(fsys, extractor, pipeline.Options{
		Dir:               cfg.Directory,
		ProcessAll:        cfg.ProcessAll,
		Workers:           cfg.Workers,
		MaxFilenameLength: cfg.MaxFilenameLength,
		MaxAttempts:       cfg.MaxAttempts,
		SkipUnreadable:    cfg.SkipUnreadable,
		Progress:          progress,
	}, log.Logger)

	if _, err := proc.Process(cmd.Context(), files); err != nil {
		log.Error("Error accessing directory", "dir", cfg.Directory, "error", err)
		return err
	}
	return nil
}
