// Package pipeline orchestrates a renaming run over one directory.
//
// A run discovers the eligible images, snapshots the directory's names into
// a naming.Registry, and processes each file on a bounded worker pool:
//
//	extract text -> sanitize -> reserve a unique name -> rename
//
// Files with no usable text get a "meme_<N>" fallback base; a failed
// extraction counts as no text unless Options.SkipUnreadable is set, which
// leaves those files untouched. Per-file failures are logged and counted in
// RunStats; only a directory error aborts the run.
package pipeline
