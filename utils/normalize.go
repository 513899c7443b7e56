package utils

import "strings"

// Normalize turns a name, address or city into its comparison key
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameKey compares two keys after normalization
func SameKey(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// SameIdentity compares two (firstName, lastName) pairs after normalization
func SameIdentity(firstA, lastA, firstB, lastB string) bool {
	return SameKey(firstA, firstB) && SameKey(lastA, lastB)
}

// IsBlank reports whether s has no content besides whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
