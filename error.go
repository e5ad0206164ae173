package rfc6266

import (
	"github.com/ghettovoice/rfc6266/internal/errorutil"
	"github.com/ghettovoice/rfc6266/internal/grammar"
)

// Grammar error sentinels returned by Parse, matchable with errors.Is.
var (
	ErrEmptyInput error = grammar.ErrEmptyInput
	ErrMalformed  error = grammar.ErrMalformedInput
)

// IsGrammarErr returns true if the error is a grammar error.
func IsGrammarErr(err error) bool { return errorutil.IsGrammarErr(err) }
