package rfc6266

import (
	"log/slog"

	"github.com/ghettovoice/rfc6266/internal/log"
)

// Option configures the filename resolution helpers.
type Option interface {
	apply(*options)
}

type options struct {
	enforceType bool
	log         *slog.Logger
}

func makeOptions(opts []Option) options {
	o := options{log: log.Noop}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

type enforceTypeOption struct{}

func (enforceTypeOption) apply(o *options) { o.enforceType = true }

// WithEnforceType restricts filename resolution to the two registered
// disposition types, "attachment" and "inline". Any other disposition type
// resolves to no filename.
func WithEnforceType() Option { return enforceTypeOption{} }

type loggerOption struct {
	log *slog.Logger
}

func (opt loggerOption) apply(o *options) {
	if opt.log != nil {
		o.log = opt.log
	}
}

// WithLogger sets the logger used by ResponseFilename. The default logger
// discards everything.
func WithLogger(l *slog.Logger) Option { return loggerOption{l} }
