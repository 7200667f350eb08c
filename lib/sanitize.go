package lib

import "strings"

// NormalizeProductKey collapses internal whitespace runs and trims the key so
// that "RX  6600 " and "RX 6600" group into the same product.
func NormalizeProductKey(key string) string {
	return strings.Join(strings.Fields(key), " ")
}

// SanitizeString trims a query parameter value. With stripSpaces set, all
// whitespace is removed; with lower set, the value is lowercased.
func SanitizeString(s string, stripSpaces, lower bool) string {
	s = strings.TrimSpace(s)
	if stripSpaces {
		s = strings.Join(strings.Fields(s), "")
	}
	if lower {
		s = strings.ToLower(s)
	}
	return s
}
