package rfc6266

//go:generate go tool mockgen -package headermock -destination internal/testutil/headermock/header_source.go github.com/ghettovoice/rfc6266 HeaderSource

import (
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

// HeaderSource is any object able to look up a header value by
// case-insensitive name.
type HeaderSource interface {
	// GetHeader returns the first value of the named header and whether the
	// header is present.
	GetHeader(name string) (string, bool)
}

// HeaderMap adapts an http.Header to the HeaderSource capability.
type HeaderMap http.Header

func (h HeaderMap) GetHeader(name string) (string, bool) {
	vs := http.Header(h).Values(name)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// FilenameFromHeaderSource looks up the Content-Disposition header on src
// and resolves a filename from it. An absent header, a grammar failure and
// unusable filename parameters all yield ("", false).
func FilenameFromHeaderSource(src HeaderSource, opts ...Option) (string, bool) {
	if src == nil {
		return "", false
	}
	v, ok := src.GetHeader(HeaderName)
	if !ok || v == "" {
		return "", false
	}
	return ParseFilename(v, opts...)
}

// FilenameFromResponse resolves a filename from the Content-Disposition
// header of resp.
func FilenameFromResponse(resp *http.Response, opts ...Option) (string, bool) {
	if resp == nil {
		return "", false
	}
	return FilenameFromHeaderSource(HeaderMap(resp.Header), opts...)
}

// ResponseFilename turns resp into a filename, trying in order the
// Content-Disposition filename, the last segment of the request URL path and
// finally a generated "unknown-<uuid>" name. The result always passes
// through SecureFilename.
func ResponseFilename(resp *http.Response, opts ...Option) string {
	o := makeOptions(opts)

	if name, ok := FilenameFromResponse(resp, opts...); ok {
		name = SecureFilename(name)
		o.log.Debug("filename resolved from header", "header", HeaderName, "filename", name)
		return name
	}

	if resp != nil && resp.Request != nil && resp.Request.URL != nil {
		if base := path.Base(resp.Request.URL.Path); base != "" && base != "/" && base != "." {
			name := SecureFilename(base)
			o.log.Debug("filename resolved from URL path", "path", resp.Request.URL.Path, "filename", name)
			return name
		}
	}

	name := "unknown-" + uuid.NewString()
	o.log.Debug("filename generated", "filename", name)
	return name
}

var pathSepRpl = strings.NewReplacer(`\`, "_", "/", "_")

// SecureFilename applies rudimentary filename security by replacing path
// separators with underscores. Full sanitization for a target OS is the
// caller's responsibility.
func SecureFilename(name string) string {
	return pathSepRpl.Replace(name)
}
