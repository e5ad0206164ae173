package grammar

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc6266/internal/constraints"
)

// Unescape converts each 3-byte encoded substring of the form "% HEXDIG HEXDIG"
// into the hex-decoded octet. Unlike URL unescaping it is strict: a '%' not
// followed by two hex digits fails the whole decode.
func Unescape[T constraints.Byteseq](s T) (T, error) {
	var zero T
	if len(s) == 0 {
		return s, nil
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			return zero, errtrace.Wrap(newMalformedInputErr("invalid percent escape at offset %d", i))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return T(b.Bytes()), nil
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
