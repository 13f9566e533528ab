package scp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidID is returned by ParseID for anything that is not a usable
// article number. Its message is shown to API callers verbatim.
var ErrInvalidID = errors.New("Invalid or missing SCP ID")

// HarmonizeID renders n in decimal, zero-padded to at least three digits.
// Wider numbers are left as is.
func HarmonizeID(n int) string {
	return fmt.Sprintf("%03d", n)
}

// ParseID validates a raw id parameter. The input must be a finite,
// non-negative number; its value is the leading run of decimal digits, so
// "12.7" is 12 and "1e3" is 1.
func ParseID(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidID
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, ErrInvalidID
	}
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		// ".5" and the like have no integer digits
		return 0, ErrInvalidID
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, ErrInvalidID
	}
	return n, nil
}
