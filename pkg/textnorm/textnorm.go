// Package textnorm folds locale letter variants onto plain Latin
// letters so that catalog text can be compared byte-wise.
package textnorm

import (
	"strings"
	"unicode"
)

// FoldRune maps one rune to its lower-case base Latin form.
//
// The mapping is rune-count preserving: callers may fold a rune slice
// in place and keep positional correspondence with the original text.
func FoldRune(r rune) rune {
	switch r {
	case 'ı', 'I', 'İ':
		return 'i'
	case 'ğ', 'Ğ':
		return 'g'
	case 'ü', 'Ü':
		return 'u'
	case 'ş', 'Ş':
		return 's'
	case 'ö', 'Ö':
		return 'o'
	case 'ç', 'Ç':
		return 'c'
	}
	return unicode.ToLower(r)
}

// Fold trims surrounding whitespace and folds every rune with
// [FoldRune]. Empty input folds to the empty string.
func Fold(s string) string {
	return strings.Map(FoldRune, strings.TrimSpace(s))
}
