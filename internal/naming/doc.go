// Package naming turns OCR text into unique, filesystem-safe file names.
//
// Names are built in two steps:
//
//   - Sanitize reduces raw text to a bounded fragment of letters, digits and
//     single underscores.
//   - Registry.Reserve prefixes the fragment with the "_" sentinel, appends
//     the file's extension and, on collision, a "_<n>" counter, then records
//     the result so no other file can claim it.
//
// Files without usable text get a "meme_<N>" base from Registry.NextFallback.
//
// All lengths are measured in bytes, since that is what file systems limit.
package naming
