package langpref

import (
	"strings"
	"unicode"
)

var scriptTables = map[string][]*unicode.RangeTable{
	"japanese": {unicode.Hiragana, unicode.Katakana, unicode.Han},
	"latin":    {unicode.Latin},
}

// ContainsScript reports whether text contains at least one rune of the named
// script ("japanese" or "latin"). Unknown script names match nothing.
func ContainsScript(text, script string) bool {
	tables, ok := scriptTables[strings.ToLower(script)]
	if !ok {
		return false
	}
	for _, r := range text {
		for _, t := range tables {
			if unicode.Is(t, r) {
				return true
			}
		}
	}
	return false
}
