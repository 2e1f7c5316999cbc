// Package rut validates and formats Chilean national identity numbers (RUT).
// A RUT is a 7 or 8 digit body followed by a verifier character computed with
// a weighted modulo-11 checksum; the verifier can be a digit or 'K'.
package rut

import "strings"

// clean strips the dot and dash separators accepted in user input.
func clean(raw string) string {
	s := strings.ReplaceAll(raw, ".", "")
	return strings.ReplaceAll(s, "-", "")
}

// wellFormed reports whether s is 7-8 digits followed by one digit or K/k.
func wellFormed(s string) bool {
	if len(s) < 8 || len(s) > 9 {
		return false
	}
	for _, r := range s[:len(s)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	last := s[len(s)-1]
	return (last >= '0' && last <= '9') || last == 'K' || last == 'k'
}

// Validate reports whether raw is a structurally valid RUT with a correct
// verifier. Separators are ignored and the verifier is case-insensitive.
// Malformed input returns false; Validate never panics.
func Validate(raw string) bool {
	s := clean(raw)
	if !wellFormed(s) {
		return false
	}

	body := s[:len(s)-1]
	verifier := strings.ToUpper(s[len(s)-1:])

	// Weighted sum over the body from least to most significant digit, with
	// multipliers cycling 2,3,4,5,6,7.
	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	expected := 11 - (sum % 11)
	var want string
	switch expected {
	case 11:
		want = "0"
	case 10:
		want = "K"
	default:
		want = string(rune('0' + expected))
	}

	return verifier == want
}

// Format returns the canonical dotted-dashed rendering of raw, e.g.
// "123456789" -> "12.345.678-9". Separators already present are stripped
// first, so Format(Format(x)) == Format(x). The verifier is carried over
// as supplied, not recomputed; callers are expected to Validate first.
func Format(raw string) string {
	s := clean(raw)
	if len(s) < 2 {
		return s
	}

	body := s[:len(s)-1]
	verifier := s[len(s)-1:]

	var b strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return b.String() + "-" + verifier
}
