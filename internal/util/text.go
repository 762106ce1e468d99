package util

import (
	"strings"
	"unicode"
)

// TitleWords capitalizes every whitespace-separated word independently,
// lowering the rest of each word: "trufa de morango" -> "Trufa De Morango".
func TitleWords(input string) string {
	words := strings.Fields(input)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// HasFoldPrefix reports whether text starts with prefix, ASCII case-insensitive.
func HasFoldPrefix(text, prefix string) bool {
	return len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix)
}
