// Package rfc6266 parses HTTP Content-Disposition response headers
// (RFC 6266) and resolves the filename a response body should be saved
// under. The header value is attacker-influenced input: Parse rejects
// anything outside the disposition grammar, while the filename helpers
// never fail, degrading to an absent result on malformed filename data.
package rfc6266

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc6266/internal/grammar"
)

// ParamFilename is the name of the filename disposition parameter.
const ParamFilename = "filename"

// Registered disposition types. Any other token is accepted by the grammar
// and passed through verbatim.
const (
	TypeAttachment = "attachment"
	TypeInline     = "inline"
)

// Parse parses a raw Content-Disposition header value into its disposition
// type and ordered parameter list. The input is either well-formed or
// rejected with a grammar error; there is no partial-success mode.
func Parse[T ~string | ~[]byte](s T) (*ContentDisposition, error) {
	disp, err := grammar.ParseDisposition(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	hdr := &ContentDisposition{Type: disp.Type}
	if len(disp.Params) > 0 {
		hdr.Params = make(Params, len(disp.Params))
		for i, p := range disp.Params {
			hdr.Params[i] = Param(p)
		}
	}
	return hdr, nil
}

// ParseFilename parses s and resolves the filename it carries.
// It is total over its domain: grammar failures and unusable filename
// parameters yield ("", false), never an error.
func ParseFilename[T ~string | ~[]byte](s T, opts ...Option) (string, bool) {
	hdr, err := Parse(s)
	if err != nil {
		return "", false
	}
	o := makeOptions(opts)
	return hdr.filename(&o)
}
