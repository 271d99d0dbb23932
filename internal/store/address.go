package store

import (
	"fmt"
	"strings"
	"unicode"
)

// invisible reports the zero-width and byte-order-mark code points
// that wallets and copy/paste leave around addresses (U+200B..U+200F, U+FEFF).
func invisible(r rune) bool {
	return (r >= '\u200b' && r <= '\u200f') || r == '\ufeff'
}

// SanitizeAddress strips invisible code points and surrounding whitespace.
// Hex-prefixed input additionally loses all internal whitespace, so
// "0x12 34" becomes "0x1234" instead of being sent to a name resolver.
func SanitizeAddress(s string) string {
	s = strings.Map(func(r rune) rune {
		if invisible(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[:2], "0x") {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	return s
}

// SanitizeInput applies SanitizeAddress to arbitrary input. Nil stays nil.
// If stringifying the value panics, the original value is returned unchanged.
func SanitizeInput(v any) (out any) {
	if v == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			out = v
		}
	}()
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return nil
		}
		s = *t
	case []byte:
		s = string(t)
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return SanitizeAddress(s)
}

// NormalizeAddress ensures addresses are lowercase with 0x prefix.
func NormalizeAddress(addr string) string {
	s := strings.ToLower(SanitizeAddress(addr))
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return s
}

// SubjectKey builds a local-store key. It returns "" when the subject is
// empty after sanitizing, and callers treat that as a no-op.
func SubjectKey(prefix, subject string, lower bool) string {
	s := SanitizeAddress(subject)
	if s == "" {
		return ""
	}
	if lower {
		s = strings.ToLower(s)
	}
	return prefix + s
}
