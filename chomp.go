package markify

import (
	"strings"
	"unicode"
)

// Chomp splits text into its leading whitespace, the trimmed core and its
// trailing whitespace. prefix + core + suffix always equals text.
func Chomp(text string) (prefix, core, suffix string) {
	core = strings.TrimLeftFunc(text, unicode.IsSpace)
	prefix = text[:len(text)-len(core)]
	trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
	suffix = core[len(trimmed):]
	return prefix, trimmed, suffix
}
