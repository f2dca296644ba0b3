// Package config holds runtime configuration: defaults, the optional YAML
// file, environment overrides, and validation.
//
// Sources are layered in this order, later ones winning:
//
//	DefaultConfig -> LoadFile -> ApplyEnv -> CLI flags set by the user
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvWorkers        = "IMAGE_RENAMER_WORKERS"
	EnvLanguage       = "IMAGE_RENAMER_LANG"
	EnvLogFile        = "IMAGE_RENAMER_LOG_FILE"
	EnvLogLevel       = "IMAGE_RENAMER_LOG_LEVEL"
	EnvTessdataPrefix = "TESSDATA_PREFIX"
)

// DefaultLogFile is written in the working directory.
const DefaultLogFile = "image_renamer.log"

// minFilenameLength leaves room for "_", one character, a counter and ".jpeg".
const minFilenameLength = 16

// Config holds all runtime settings.
type Config struct {
	// Directory is the target directory (positional argument).
	Directory string `yaml:"directory"`

	// Selection and naming.
	ProcessAll        bool `yaml:"process_all"`
	SkipUnreadable    bool `yaml:"skip_unreadable"`
	MaxFilenameLength int  `yaml:"max_filename_length"` // Default: 255.
	MaxAttempts       int  `yaml:"max_attempts"`        // Default: 10000.

	// OCR.
	Language       string `yaml:"language"`        // Default: "eng".
	TessdataPrefix string `yaml:"tessdata_prefix"` // Empty: Tesseract's own lookup.
	Preprocess     bool   `yaml:"preprocess"`
	CropToText     bool   `yaml:"crop_to_text"` // Implies Preprocess.

	// Concurrency.
	Workers int `yaml:"workers"` // Default: runtime.NumCPU().

	// Display and logging.
	Verbose      bool   `yaml:"verbose"`
	LogFile      string `yaml:"log_file"`  // Default: "image_renamer.log". Empty disables the file.
	LogLevel     string `yaml:"log_level"` // debug | info | warn | error. Empty: derived from Verbose.
	ShowProgress bool   `yaml:"show_progress"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		MaxFilenameLength: 255,
		MaxAttempts:       10000,
		Language:          "eng",
		Workers:           runtime.NumCPU(),
		LogFile:           DefaultLogFile,
		ShowProgress:      true,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current value; unknown keys are an error.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment overrides onto cfg. lookup is usually
// os.LookupEnv. A variable that is set but empty clears string settings;
// this is how IMAGE_RENAMER_LOG_FILE= disables the log file.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvLanguage); ok && v != "" {
		cfg.Language = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvTessdataPrefix); ok && v != "" {
		cfg.TessdataPrefix = v
	}
	return nil
}

// NormalizeDirArg cleans a directory argument. Empty stays empty.
func NormalizeDirArg(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// Validate checks ranges and enum values. It does not touch the filesystem;
// a missing directory is reported by the pipeline as a DIRECTORY_ERROR.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return errors.New("a target directory is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if strings.TrimSpace(c.Language) == "" {
		return errors.New("OCR language must not be empty")
	}
	if c.MaxFilenameLength < minFilenameLength {
		return fmt.Errorf("max filename length must be at least %d, got %d", minFilenameLength, c.MaxFilenameLength)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level %q (use debug, info, warn or error)", c.LogLevel)
	}
	return nil
}
