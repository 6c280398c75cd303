// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// MaxPageSize caps every limit accepted from a client.
const MaxPageSize = 100

// LimitSkip parses limit/skip query values. A missing or non-positive limit
// becomes def, limits above MaxPageSize are clipped, and negative skips
// become 0.
func LimitSkip(limit, skip string, def int) (int, int) {
	l := AtoiDefault(limit, def)
	if l <= 0 {
		l = def
	}
	if l > MaxPageSize {
		l = MaxPageSize
	}
	s := AtoiDefault(skip, 0)
	if s < 0 {
		s = 0
	}
	return l, s
}
