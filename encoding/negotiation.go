package encoding

import (
	"github.com/vyrodovalexey/multipayload/observability"
)

// SelectResponseFormat picks the wire format for an outbound response.
//
// The Accept header is resolved first: the responder honors what the
// client says it accepts. If Accept yields nothing concrete, the request's
// Content-Type is mirrored. If neither header selects an enabled format,
// the registry default applies.
//
// For a registry with at least one enabled format the result is never
// FormatUnrecognized, so response generation always has a deterministic
// format on the happy path.
func (r *Registry) SelectResponseFormat(acceptHeader, contentTypeHeader string) Format {
	if f := r.Resolve(acceptHeader); f != FormatUnrecognized {
		r.logger.Debug("response format selected from Accept",
			observability.String("accept", acceptHeader),
			observability.String("format", f.String()))
		return f
	}

	if f := r.Resolve(contentTypeHeader); f != FormatUnrecognized {
		r.logger.Debug("response format mirrors request Content-Type",
			observability.String("contentType", contentTypeHeader),
			observability.String("format", f.String()))
		return f
	}

	return r.defaultFormat
}
