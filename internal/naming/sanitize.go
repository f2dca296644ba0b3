package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFilenameLength is the longest file name, in bytes, the renamer produces.
const MaxFilenameLength = 255

var (
	reDisallowed  = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}]`)
	reWhitespace  = regexp.MustCompile(`[\s\p{Z}]+`)
	reUnderscores = regexp.MustCompile(`_+`)
	reLeading     = regexp.MustCompile(`^[^\p{L}\p{N}]+`)
)

// Sanitize converts raw OCR text into a file name fragment of at most
// budget bytes.
//
// Characters other than letters, digits, underscores and whitespace become
// underscores; whitespace runs (newlines included) collapse to a single
// underscore, as do underscore runs. Leading characters that are not a
// letter or digit are dropped, then the result is cut to budget bytes on a
// rune boundary and trailing underscores are removed.
//
// The result may be empty, e.g. for text made only of punctuation. Sanitize
// is idempotent for any result that already fits within budget.
func Sanitize(text string, budget int) string {
	s := reDisallowed.ReplaceAllString(text, "_")
	s = reWhitespace.ReplaceAllString(s, "_")
	s = reUnderscores.ReplaceAllString(s, "_")
	s = reLeading.ReplaceAllString(s, "")
	return strings.TrimRight(truncate(s, budget), "_")
}

// Budget returns the byte budget Sanitize may use for a base name so that
// "_<base>_<n><suffix>" can still be built within maxLen. Two bytes are
// reserved: the sentinel prefix and the disambiguation separator.
func Budget(maxLen int, suffix string) int {
	b := maxLen - len(suffix) - 2
	if b < 0 {
		return 0
	}
	return b
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
