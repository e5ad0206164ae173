// Package grammar implements the Content-Disposition header grammar of
// RFC 6266 (RFC 2183 disposition production, RFC 2045 tokens) and the
// RFC 5987 ext-value production.
package grammar

//go:generate go tool errtrace -w .

import (
	"strings"

	"github.com/ghettovoice/rfc6266/internal/constraints"
	"github.com/ghettovoice/rfc6266/internal/errorutil"
	"github.com/ghettovoice/rfc6266/internal/util"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// tokenChars marks the RFC 2045 token charset: visible ASCII without tspecials.
var tokenChars [256]bool

func init() {
	for c := 0x21; c < 0x7f; c++ {
		tokenChars[c] = true
	}
	for _, c := range []byte(`()<>@,;:\"/[]?={}`) {
		tokenChars[c] = false
	}
}

// IsTokenChar checks the token charset rule.
func IsTokenChar(c byte) bool { return tokenChars[c] }

// IsToken reports whether s is a non-empty RFC 2045 token.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}

// IsQuotable reports whether s can be carried as quoted-string content,
// that is whether it is free of control characters other than HTAB.
func IsQuotable[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if (s[i] < 0x20 && s[i] != '\t') || s[i] == 0x7f {
			return false
		}
	}
	return true
}

// Quote renders s as a quoted-string, escaping '"' and '\'.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// ExtValue is the decomposition of an RFC 5987 extended parameter value into
// the charset'language'value triplet. Value stays percent-encoded.
type ExtValue struct {
	Charset string
	Lang    string
	Value   string
}

// ParseExtValue splits raw on the two required single-quote delimiters.
// A third delimiter anywhere in the value is malformed: the apostrophe is not
// an attr-char.
func ParseExtValue(raw string) (ExtValue, error) {
	i := strings.IndexByte(raw, '\'')
	if i < 0 {
		return ExtValue{}, newMalformedInputErr("ext-value: missing charset delimiter")
	}
	j := strings.IndexByte(raw[i+1:], '\'')
	if j < 0 {
		return ExtValue{}, newMalformedInputErr("ext-value: missing language delimiter")
	}
	j += i + 1
	if strings.IndexByte(raw[j+1:], '\'') >= 0 {
		return ExtValue{}, newMalformedInputErr("ext-value: stray delimiter")
	}
	return ExtValue{Charset: raw[:i], Lang: raw[i+1 : j], Value: raw[j+1:]}, nil
}
