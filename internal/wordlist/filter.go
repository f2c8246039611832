// Package wordlist provides word list filtering helpers.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// ASCIILetters keeps words made only of ASCII letters.
func ASCIILetters(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}
