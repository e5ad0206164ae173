package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/rfc6266/internal/errorutil"
	"github.com/ghettovoice/rfc6266/internal/grammar"
)

func TestParseDisposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    *grammar.Disposition
		wantErr error
	}{
		{
			"type only",
			"inline",
			&grammar.Disposition{Type: "inline"},
			nil,
		},
		{
			"type case preserved",
			"ATTACHMENT",
			&grammar.Disposition{Type: "ATTACHMENT"},
			nil,
		},
		{
			"quoted filename",
			`attachment; filename="foo.html"`,
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: "foo.html"}},
			},
			nil,
		},
		{
			"token value",
			"attachment; filename=foo.html",
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: "foo.html"}},
			},
			nil,
		},
		{
			"param name folded",
			`ATTACHMENT; FILENAME="x.txt"`,
			&grammar.Disposition{
				Type:   "ATTACHMENT",
				Params: []grammar.Param{{Name: "filename", Value: "x.txt"}},
			},
			nil,
		},
		{
			"extended form",
			"attachment; filename*=UTF-8''%e2%82%ac%20rates",
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: "UTF-8''%e2%82%ac%20rates", Extended: true}},
			},
			nil,
		},
		{
			"escapes resolved",
			`attachment; filename="a \"b\" \\c"`,
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: `a "b" \c`}},
			},
			nil,
		},
		{
			"duplicates preserved in order",
			`attachment; filename="a.txt"; filename*=UTF-8''b.txt; filename="c.txt"`,
			&grammar.Disposition{
				Type: "attachment",
				Params: []grammar.Param{
					{Name: "filename", Value: "a.txt"},
					{Name: "filename", Value: "UTF-8''b.txt", Extended: true},
					{Name: "filename", Value: "c.txt"},
				},
			},
			nil,
		},
		{
			"unknown params retained",
			`form-data; foo=bar; filename="x"`,
			&grammar.Disposition{
				Type: "form-data",
				Params: []grammar.Param{
					{Name: "foo", Value: "bar"},
					{Name: "filename", Value: "x"},
				},
			},
			nil,
		},
		{
			"continuation segment kept as-is",
			"attachment; filename*0*=UTF-8''seg",
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename*0", Value: "UTF-8''seg", Extended: true}},
			},
			nil,
		},
		{
			"surrounding whitespace",
			"  attachment ;\tfilename=\"x\"  ",
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: "x"}},
			},
			nil,
		},
		{
			"whitespace around equals",
			`attachment; filename = "x"`,
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: "x"}},
			},
			nil,
		},
		{
			"trailing semicolon",
			`attachment; filename="x";`,
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: "x"}},
			},
			nil,
		},
		{
			"empty quoted value",
			`attachment; filename=""`,
			&grammar.Disposition{
				Type:   "attachment",
				Params: []grammar.Param{{Name: "filename", Value: ""}},
			},
			nil,
		},
		{"empty", "", nil, grammar.ErrEmptyInput},
		{"blank", "   ", nil, grammar.ErrMalformedInput},
		{"missing type", `; filename="x"`, nil, grammar.ErrMalformedInput},
		{"illegal type char", "atta/chment", nil, grammar.ErrMalformedInput},
		{"missing semicolon", `attachment filename="x"`, nil, grammar.ErrMalformedInput},
		{"missing equals", "attachment; filename", nil, grammar.ErrMalformedInput},
		{"missing value", "attachment; filename=", nil, grammar.ErrMalformedInput},
		{"missing name", "attachment; =x", nil, grammar.ErrMalformedInput},
		{"bare wildcard name", "attachment; *=UTF-8''x", nil, grammar.ErrMalformedInput},
		{"double semicolon", "attachment;; filename=x", nil, grammar.ErrMalformedInput},
		{"unterminated quoted string", `attachment; filename="x`, nil, grammar.ErrMalformedInput},
		{"trailing quote", `attachment; filename=unterminated"`, nil, grammar.ErrMalformedInput},
		{"dangling escape", `attachment; filename="x\`, nil, grammar.ErrMalformedInput},
		{"garbage after value", `attachment; filename="x" y`, nil, grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.ParseDisposition(c.str)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("grammar.ParseDisposition(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.str, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.ParseDisposition(%q) mismatch (-got +want):\n%v", c.str, diff)
			}
		})
	}
}

func TestParseDisposition_Bytes(t *testing.T) {
	t.Parallel()

	got, err := grammar.ParseDisposition([]byte(`attachment; filename="foo.html"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &grammar.Disposition{
		Type:   "attachment",
		Params: []grammar.Param{{Name: "filename", Value: "foo.html"}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("grammar.ParseDisposition mismatch (-got +want):\n%v", diff)
	}
}

func TestParseDisposition_GrammarErr(t *testing.T) {
	t.Parallel()

	_, err := grammar.ParseDisposition("attachment; broken")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errorutil.IsGrammarErr(err) {
		t.Errorf("expected a grammar error, got %v", err)
	}
}
