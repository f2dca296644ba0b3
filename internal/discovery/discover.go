// Package discovery lists the image files in a directory that are eligible
// for renaming.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/ironsheep/image-renamer/internal/errors"
)

// SentinelPrefix marks a file as already renamed.
const SentinelPrefix = "_"

// Recognized image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ImageFile describes one discovered image. It is immutable once created.
type ImageFile struct {
	// Path is the full path of the file as discovered.
	Path string

	// Name is the base name including the extension.
	Name string

	// Stem is the base name without the extension.
	Stem string

	// Ext is the lowercased extension, used for recognition.
	Ext string

	// Suffix is the extension exactly as it appears on disk. New names keep it.
	Suffix string
}

// Options controls which files Discover returns.
type Options struct {
	// IncludeTagged disables skipping of names that start with SentinelPrefix.
	IncludeTagged bool
}

// IsImageExt reports whether ext (any case, leading dot) is a recognized image extension.
func IsImageExt(ext string) bool {
	return imageExtensions[strings.ToLower(ext)]
}

// Discover lists the regular image files directly inside dir.
//
// Files whose name starts with SentinelPrefix are skipped unless
// opts.IncludeTagged is set. Symlinks are followed. The order is whatever
// the directory listing yields. A directory with no matches returns an
// empty slice and a nil error; a missing path or a non-directory returns a
// DIRECTORY_ERROR.
func Discover(fsys afero.Fs, dir string, opts Options) ([]ImageFile, error) {
	entries, err := readDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	files := make([]ImageFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if !isRegular(fsys, path, entry) {
			continue
		}
		if !opts.IncludeTagged && strings.HasPrefix(name, SentinelPrefix) {
			continue
		}

		suffix := filepath.Ext(name)
		if suffix == name || !IsImageExt(suffix) {
			// A bare ".png" is a hidden file with no extension.
			continue
		}

		files = append(files, ImageFile{
			Path:   path,
			Name:   name,
			Stem:   strings.TrimSuffix(name, suffix),
			Ext:    strings.ToLower(suffix),
			Suffix: suffix,
		})
	}

	return files, nil
}

// Snapshot returns the names of every entry in dir, files and directories
// alike. It seeds the name registry so new names never shadow anything that
// already exists.
func Snapshot(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := readDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func readDir(fsys afero.Fs, dir string) ([]os.FileInfo, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, errors.NewDirectoryError(dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewDirectoryError(dir, nil)
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.NewDirectoryError(dir, err)
	}
	return entries, nil
}

// isRegular resolves symlinks before checking the mode, matching what a
// plain stat of the path would report.
func isRegular(fsys afero.Fs, path string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.Mode().IsRegular()
	}
	target, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}
