package estree

import (
	"unicode"
	"unicode/utf8"
)

// IsIdentifierName reports whether name is a syntactically valid JavaScript
// identifier name. Reserved words are accepted: they are valid property names.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !isIDStart(r) {
				return false
			}
			continue
		}
		if !isIDContinue(r) {
			return false
		}
	}
	return true
}

func isIDStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIDContinue(r rune) bool {
	if isIDStart(r) {
		return true
	}
	if r < utf8.RuneSelf {
		return '0' <= r && r <= '9'
	}
	// ZWNJ and ZWJ are allowed after the first character.
	if r == '\u200c' || r == '\u200d' {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}
