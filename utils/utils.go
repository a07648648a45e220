package utils

import (
	rndm "math/rand"
	"regexp"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// QuoteSearch escapes a user-supplied search term so it matches as a literal
// substring inside a $regex filter.
func QuoteSearch(term string) string {
	return regexp.QuoteMeta(term)
}
