package wire

import (
	"errors"
	"strings"
)

// ErrBadEscape reports a broken percent sequence in a cookie value.
var ErrBadEscape = errors.New("cookiewire: bad percent escape")

// Pair is one name=value segment exactly as it appeared on the wire,
// before any percent decoding.
type Pair struct {
	Name  string
	Value string
}

// SplitPairs splits a raw Cookie header into pairs. Segments are separated
// by ';' with optional surrounding whitespace; name and value split on the
// FIRST '='. Segments without '=' or with an empty name are skipped.
func SplitPairs(header string) []Pair {
	if header == "" {
		return nil
	}
	segs := strings.Split(header, ";")
	out := make([]Pair, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		name, val, ok := strings.Cut(seg, "=")
		if !ok || name == "" {
			continue
		}
		out = append(out, Pair{Name: name, Value: val})
	}
	return out
}

// ValidName reports whether name can appear on the left of '=' in a pair.
// Names must be non-empty printable ASCII with no separators ('=', ';', ','),
// no whitespace and no control bytes.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= 0x20 || c >= 0x7f {
			return false
		}
		switch c {
		case '=', ';', ',':
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

// unreserved is the set left unescaped by standard URI component escaping.
func unreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Escape percent-encodes s for transport inside a cookie value token.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// Unescape reverses Escape. Only '%XX' triplets are translated; every other
// byte (including '+') passes through untouched. A truncated or non-hex
// sequence returns ErrBadEscape.
func Unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) {
			return "", ErrBadEscape
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", ErrBadEscape
		}
		b.WriteByte(hi<<4 | lo)
		i += 3
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
