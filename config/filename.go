package config

import (
	"strings"
	"unicode/utf8"
)

// maxFileNameLen is in bytes, most file systems limit names to 255.
const maxFileNameLen = 200

// CleanFileName removes characters not allowed in file names, leading dots and
// spaces, trailing dots and spaces. Long names are cut on a rune boundary.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if isBadFileRune(sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimRight(strings.TrimLeft(out, ". "), ". ")
	if len(out) > maxFileNameLen {
		cut := maxFileNameLen
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimRight(out[:cut], ". ")
	}
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
