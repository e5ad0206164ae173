package grammar

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc6266/internal/constraints"
	"github.com/ghettovoice/rfc6266/internal/util"
)

// Param is a single disposition parameter as it appeared in the header.
// Name is folded to lowercase with the extended-form "*" suffix stripped into
// Extended. For the plain form Value holds the value with quotes consumed and
// backslash escapes resolved; for the extended form it holds the raw
// charset'language'pct-encoded triplet.
type Param struct {
	Name     string
	Value    string
	Extended bool
}

// Disposition is the raw parse result of a Content-Disposition header value.
// Params keeps the order of appearance, duplicates included.
type Disposition struct {
	Type   string
	Params []Param
}

// ParseDisposition parses s as the RFC 2183 production
//
//	disposition-type *( ";" disposition-parm )
//
// with optional whitespace around the type and each parameter and a single
// optional trailing ";". The input is consumed left-to-right exactly once;
// any malformed segment fails the whole parse.
func ParseDisposition[T constraints.Byteseq](s T) (*Disposition, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	sc := scanner{src: string(s)}
	sc.skipWS()
	dispType := sc.scanToken()
	if dispType == "" {
		return nil, errtrace.Wrap(newMalformedInputErr("disposition type must be a token"))
	}

	disp := &Disposition{Type: dispType}
	for {
		sc.skipWS()
		if sc.eof() {
			return disp, nil
		}
		if !sc.consume(';') {
			return nil, errtrace.Wrap(newMalformedInputErr("unexpected character %q at offset %d", sc.src[sc.pos], sc.pos))
		}
		sc.skipWS()
		if sc.eof() {
			// trailing ";"
			return disp, nil
		}

		name := sc.scanToken()
		if name == "" {
			return nil, errtrace.Wrap(newMalformedInputErr("parameter name must be a token, offset %d", sc.pos))
		}
		sc.skipWS()
		if !sc.consume('=') {
			return nil, errtrace.Wrap(newMalformedInputErr("parameter %q: missing '='", name))
		}
		sc.skipWS()

		var value string
		if sc.peek('"') {
			v, err := sc.scanQuotedString()
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			value = v
		} else if value = sc.scanToken(); value == "" {
			return nil, errtrace.Wrap(newMalformedInputErr("parameter %q: missing value", name))
		}

		name = util.LCase(name)
		ext := strings.HasSuffix(name, "*")
		if ext {
			if name = name[:len(name)-1]; name == "" {
				return nil, errtrace.Wrap(newMalformedInputErr(`parameter name "*" without a leading token`))
			}
		}
		disp.Params = append(disp.Params, Param{Name: name, Value: value, Extended: ext})
	}
}

type scanner struct {
	src string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) skipWS() {
	for !sc.eof() && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *scanner) peek(c byte) bool { return !sc.eof() && sc.src[sc.pos] == c }

func (sc *scanner) consume(c byte) bool {
	if sc.peek(c) {
		sc.pos++
		return true
	}
	return false
}

func (sc *scanner) scanToken() string {
	start := sc.pos
	for !sc.eof() && tokenChars[sc.src[sc.pos]] {
		sc.pos++
	}
	return sc.src[start:sc.pos]
}

// scanQuotedString consumes a double-quoted string resolving backslash
// escapes, any \X to X. A missing closing quote fails the scan.
func (sc *scanner) scanQuotedString() (string, error) {
	sc.pos++ // opening quote

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for !sc.eof() {
		c := sc.src[sc.pos]
		sc.pos++
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			if sc.eof() {
				return "", newMalformedInputErr("unterminated quoted string")
			}
			sb.WriteByte(sc.src[sc.pos])
			sc.pos++
		default:
			sb.WriteByte(c)
		}
	}
	return "", newMalformedInputErr("unterminated quoted string")
}
