package config

import (
	"strings"
	"unicode/utf8"
)

// maxFileNameBytes leaves room for the extension under usual 255 bytes limit.
const maxFileNameBytes = 240

const badFileName = "_bad_file_name_"

// CleanFileName turns arbitrary text (source name, document title, template
// output) into a single path segment. Control characters and characters the
// platform does not allow are dropped, leading dots are removed so result is
// never hidden or relative, and long names are cut on rune boundary.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < 0x20 || sym == 0x7f || strings.ContainsRune(forbiddenFileNameChars, sym) {
			return -1
		}
		return sym
	}, in)
	out = trimFileName(truncateName(strings.TrimLeft(out, "."), maxFileNameBytes))
	if len(out) == 0 {
		return badFileName
	}
	return out
}

func truncateName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	for limit > 0 && !utf8.RuneStart(name[limit]) {
		limit--
	}
	return name[:limit]
}
