package rfc6266

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc6266/internal/grammar"
	"github.com/ghettovoice/rfc6266/internal/ioutil"
	"github.com/ghettovoice/rfc6266/internal/util"
)

// Param is a single disposition parameter.
type Param struct {
	// Name is the parameter name folded to lowercase, without the
	// extended-form "*" suffix.
	Name string
	// Value is the unquoted value for the plain form, or the raw
	// charset'language'pct-encoded triplet for the extended form.
	Value string
	// Extended marks the RFC 5987 extended form (the name ended in "*").
	Extended bool
}

// IsValid reports whether the parameter can be rendered back into a
// well-formed header: the name must be a token and the value must fit the
// form it is tagged with.
func (p Param) IsValid() bool {
	if !grammar.IsToken(p.Name) {
		return false
	}
	if p.Extended {
		_, err := grammar.ParseExtValue(p.Value)
		return err == nil
	}
	return grammar.IsQuotable(p.Value)
}

// Equal compares this Param with another for equality. Names compare
// case-insensitively, values byte for byte.
func (p Param) Equal(val any) bool {
	var other Param
	switch v := val.(type) {
	case Param:
		other = v
	case *Param:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(p.Name, other.Name) &&
		p.Value == other.Value &&
		p.Extended == other.Extended
}

// Params is the ordered parameter list of a disposition header.
// Duplicate names are preserved in order of appearance; which occurrence
// wins is the resolver's call, not the parser's.
type Params []Param

// First returns the first parameter with the given name, of either form.
func (ps Params) First(name string) (Param, bool) {
	for _, p := range ps {
		if util.EqFold(p.Name, name) {
			return p, true
		}
	}
	return Param{}, false
}

// FirstPlain returns the first non-extended parameter with the given name.
func (ps Params) FirstPlain(name string) (Param, bool) {
	for _, p := range ps {
		if !p.Extended && util.EqFold(p.Name, name) {
			return p, true
		}
	}
	return Param{}, false
}

// FirstExtended returns the first extended parameter with the given name.
func (ps Params) FirstExtended(name string) (Param, bool) {
	for _, p := range ps {
		if p.Extended && util.EqFold(p.Name, name) {
			return p, true
		}
	}
	return Param{}, false
}

// Get returns all parameters with the given name in order of appearance.
func (ps Params) Get(name string) []Param {
	var res []Param
	for _, p := range ps {
		if util.EqFold(p.Name, name) {
			res = append(res, p)
		}
	}
	return res
}

// Has checks whether a parameter with the given name is in the list.
func (ps Params) Has(name string) bool {
	_, ok := ps.First(name)
	return ok
}

// Clone returns a copy of the list.
func (ps Params) Clone() Params { return slices.Clone(ps) }

// Equal compares this Params with another for equality, order included.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case []Param:
		other = v
	default:
		return false
	}
	return slices.EqualFunc(ps, other, func(p1, p2 Param) bool { return p1.Equal(p2) })
}

// IsValid reports whether every parameter in the list is valid.
func (ps Params) IsValid() bool {
	for _, p := range ps {
		if !p.IsValid() {
			return false
		}
	}
	return true
}

func (ps Params) renderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, p := range ps {
		switch {
		case p.Extended:
			cw.Fprint("; ", p.Name, "*=", p.Value)
		case grammar.IsToken(p.Value):
			cw.Fprint("; ", p.Name, "=", p.Value)
		default:
			cw.Fprint("; ", p.Name, "=", grammar.Quote(p.Value))
		}
	}
	return errtrace.Wrap2(cw.Result())
}
