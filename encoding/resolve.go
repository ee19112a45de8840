package encoding

import (
	"strings"

	"github.com/vyrodovalexey/multipayload/config"
	"github.com/vyrodovalexey/multipayload/observability"
)

// Header names the adapter inspects.
const (
	// HeaderContentType is the Content-Type header name.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the Accept header name.
	HeaderAccept = "Accept"
)

// Resolve classifies a single header value (Content-Type or Accept) into a
// Format. An empty value stands for an absent header.
//
// Matching is case-insensitive on the whole value and compares known MIME
// prefixes in a fixed order, so trailing parameters such as
// "; charset=utf-8" are tolerated. A value that matches a format outside
// the enabled set resolves to FormatUnrecognized, as does anything else.
//
// Resolve is pure and never fails.
func (r *Registry) Resolve(headerValue string) Format {
	if headerValue == "" {
		return FormatUnrecognized
	}

	value := strings.ToLower(headerValue)

	var matched Format
	switch {
	case strings.HasPrefix(value, config.ContentTypeJSON):
		matched = FormatJSON
	case strings.HasPrefix(value, config.ContentTypeProtobuf):
		matched = FormatProtobuf
	case strings.HasPrefix(value, config.ContentTypeXML),
		strings.HasPrefix(value, config.ContentTypeTextXML):
		matched = FormatXML
	default:
		return FormatUnrecognized
	}

	if !r.enabled[matched] {
		r.logger.Debug("content type matches a disabled format",
			observability.String("contentType", headerValue),
			observability.String("format", matched.String()))
		return FormatUnrecognized
	}

	return matched
}
