package rfc6266

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc6266/internal/grammar"
	"github.com/ghettovoice/rfc6266/internal/ioutil"
	"github.com/ghettovoice/rfc6266/internal/util"
)

// HeaderName is the canonical name of the header this package parses.
const HeaderName = "Content-Disposition"

// ContentDisposition is a parsed Content-Disposition header value: the
// disposition type as it appeared in the header plus the ordered parameter
// list. Values are plain data, constructed once per parse and never mutated
// by this package.
type ContentDisposition struct {
	Type   string
	Params Params
}

// CanonicName returns the name of the header this value belongs to.
func (*ContentDisposition) CanonicName() string { return HeaderName }

// RenderTo writes the header value to w. Plain parameter values are emitted
// as tokens when possible and quoted otherwise; extended values are emitted
// verbatim after "name*=".
func (hdr *ContentDisposition) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.Type)
	cw.Call(hdr.Params.renderTo)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the header value as a string.
func (hdr *ContentDisposition) Render() string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr *ContentDisposition) String() string { return hdr.Render() }

func (hdr *ContentDisposition) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods ContentDisposition
		type ContentDisposition hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*ContentDisposition)(hdr))
		return
	}
}

// Clone returns a deep copy of the header value.
func (hdr *ContentDisposition) Clone() *ContentDisposition {
	if hdr == nil {
		return nil
	}

	hdr2 := *hdr
	hdr2.Params = hdr.Params.Clone()
	return &hdr2
}

// Equal compares this header value with another for equality. Disposition
// types and parameter names compare case-insensitively, parameter values
// byte for byte.
func (hdr *ContentDisposition) Equal(val any) bool {
	var other *ContentDisposition
	switch v := val.(type) {
	case *ContentDisposition:
		other = v
	case ContentDisposition:
		other = &v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return util.EqFold(hdr.Type, other.Type) && hdr.Params.Equal(other.Params)
}

// IsValid reports whether the value renders into a header that parses back.
func (hdr *ContentDisposition) IsValid() bool {
	return hdr != nil && grammar.IsToken(hdr.Type) && hdr.Params.IsValid()
}
