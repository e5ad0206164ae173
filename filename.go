package rfc6266

import (
	"unicode/utf8"

	"github.com/ghettovoice/rfc6266/internal/grammar"
	"github.com/ghettovoice/rfc6266/internal/util"
)

// Charsets accepted in extended filename parameters.
const (
	charsetUTF8   = "UTF-8"
	charsetLatin1 = "ISO-8859-1"
)

// Filename resolves the filename carried by the header. Per RFC 6266 the
// extended form is preferred: the first "filename*" parameter wins when its
// value decodes cleanly, else the first plain "filename" parameter is used
// verbatim. Malformed filename data never fails the call, it degrades to
// ("", false).
func (hdr *ContentDisposition) Filename() (string, bool) {
	return hdr.filename(&options{})
}

func (hdr *ContentDisposition) filename(o *options) (string, bool) {
	if hdr == nil {
		return "", false
	}
	if o.enforceType && !util.EqFold(hdr.Type, TypeAttachment) && !util.EqFold(hdr.Type, TypeInline) {
		return "", false
	}

	if p, ok := hdr.Params.FirstExtended(ParamFilename); ok {
		if name, ok := decodeExtFilename(p.Value); ok {
			return name, true
		}
	}
	if p, ok := hdr.Params.FirstPlain(ParamFilename); ok && p.Value != "" {
		return p.Value, true
	}
	return "", false
}

// decodeExtFilename decodes one charset'language'value triplet. Every failure
// mode reports ok=false: malformed triplet, unsupported charset, bad percent
// escape, octets invalid for the charset, or an empty result.
func decodeExtFilename(raw string) (string, bool) {
	ev, err := grammar.ParseExtValue(raw)
	if err != nil {
		return "", false
	}
	octets, err := grammar.Unescape(ev.Value)
	if err != nil {
		return "", false
	}

	switch {
	case util.EqFold(ev.Charset, charsetUTF8):
		if octets == "" || !utf8.ValidString(octets) {
			return "", false
		}
		return octets, true
	case util.EqFold(ev.Charset, charsetLatin1):
		if octets == "" {
			return "", false
		}
		rs := make([]rune, len(octets))
		for i := 0; i < len(octets); i++ {
			b := octets[i]
			// no C0/C1 control characters in decoded Latin-1
			if b < 0x20 || (0x7f <= b && b <= 0x9f) {
				return "", false
			}
			rs[i] = rune(b)
		}
		return string(rs), true
	default:
		return "", false
	}
}
