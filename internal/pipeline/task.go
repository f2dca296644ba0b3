package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ironsheep/image-renamer/internal/discovery"
	"github.com/ironsheep/image-renamer/internal/errors"
	"github.com/ironsheep/image-renamer/internal/naming"
)

// maxOccupiedRetries bounds how often a file asks for a new name after its
// reserved target turned out to exist on disk.
const maxOccupiedRetries = 3

var errTargetExists = stderrors.New("target already exists")

// processFile runs extract, sanitize, allocate and rename for one file.
// Every outcome is counted in stats; nothing is returned.
func (p *Processor) processFile(ctx context.Context, registry *naming.Registry, f discovery.ImageFile, stats *RunStats) {
	result := p.extractor.Extract(ctx, f.Path)
	if result.Failed() && p.opts.SkipUnreadable {
		// The extractor already logged the cause.
		stats.Skipped.Add(1)
		return
	}

	base := ""
	if result.Present() {
		base = naming.Sanitize(result.Text, naming.Budget(registry.MaxLength(), f.Suffix))
	}
	if base == "" {
		base = registry.NextFallback()
		stats.Fallback.Add(1)
		p.log.Debug("No usable text, using fallback name", "path", f.Path, "base", base)
	}

	for attempt := 0; ; attempt++ {
		name, err := registry.Reserve(base, f.Suffix)
		if err != nil {
			p.log.Error("Error renaming file", "path", f.Path, "error", err)
			stats.Failed.Add(1)
			return
		}

		err = renameFile(p.fs, f, name)
		if err == nil {
			stats.Renamed.Add(1)
			p.log.Info("Renamed", "from", f.Name, "to", name)
			return
		}

		occupied := stderrors.Is(err, errTargetExists)
		if occupied && attempt < maxOccupiedRetries {
			// The name stays reserved: something on disk already answers to it,
			// such as a case variant on a case-insensitive filesystem.
			p.log.Debug("Target exists, allocating another name", "path", f.Path, "name", name)
			continue
		}
		if !occupied {
			registry.Release(name)
		}
		p.log.Error("Error renaming file", "path", f.Path, "error", err)
		stats.Failed.Add(1)
		return
	}
}

// renameFile moves f to name in the same directory. It refuses to replace
// a file that appeared after the directory snapshot was taken.
func renameFile(fsys afero.Fs, f discovery.ImageFile, name string) error {
	target := filepath.Join(filepath.Dir(f.Path), name)

	exists, err := afero.Exists(fsys, target)
	if err != nil {
		return errors.NewRenameError(f.Path, err)
	}
	if exists {
		return errors.NewRenameError(f.Path, fmt.Errorf("%w: %s", errTargetExists, name))
	}

	if err := fsys.Rename(f.Path, target); err != nil {
		return errors.NewRenameError(f.Path, err)
	}
	return nil
}
