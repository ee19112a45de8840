package encoding

import (
	"github.com/vyrodovalexey/multipayload/config"
	"github.com/vyrodovalexey/multipayload/observability"
)

// Format identifies one of the supported wire formats.
//
// The zero value is FormatUnrecognized, the sentinel returned whenever a
// header value does not match an enabled format.
type Format int

// Supported formats.
const (
	// FormatUnrecognized is the sentinel for an absent, unparsable, or
	// disabled content type.
	FormatUnrecognized Format = iota

	// FormatJSON is the JSON wire format.
	FormatJSON

	// FormatProtobuf is the Protocol Buffers wire format.
	FormatProtobuf

	// FormatXML is the XML wire format.
	FormatXML
)

// formatPriority is the fixed priority order used when no default format
// is configured: JSON, then Protobuf, then XML.
var formatPriority = []Format{FormatJSON, FormatProtobuf, FormatXML}

// String returns the encoding name for the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return config.EncodingJSON
	case FormatProtobuf:
		return config.EncodingProtobuf
	case FormatXML:
		return config.EncodingXML
	default:
		return "unrecognized"
	}
}

// ContentType returns the canonical MIME string for the format, suitable
// for an outbound Content-Type header. It returns an empty string for
// FormatUnrecognized.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return config.ContentTypeJSON
	case FormatProtobuf:
		return config.ContentTypeProtobuf
	case FormatXML:
		return config.ContentTypeXML
	default:
		return ""
	}
}

// FormatFromName converts an encoding name from configuration into a Format.
func FormatFromName(name string) Format {
	switch name {
	case config.EncodingJSON:
		return FormatJSON
	case config.EncodingProtobuf:
		return FormatProtobuf
	case config.EncodingXML:
		return FormatXML
	default:
		return FormatUnrecognized
	}
}

// Registry holds the set of formats enabled at startup and the default
// response format. It is immutable after construction.
type Registry struct {
	logger        observability.Logger
	enabled       map[Format]bool
	defaultFormat Format
}

// RegistryOption is a functional option for configuring the registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger for the registry.
func WithRegistryLogger(logger observability.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry builds a Registry from configuration.
//
// It validates the configuration and fails when the enabled set is empty
// (config.ErrNoFormatsEnabled) or names an unknown format, so that a
// misconfigured process refuses to start instead of failing per request.
func NewRegistry(cfg *config.Config, opts ...RegistryOption) (*Registry, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		logger:  observability.NopLogger(),
		enabled: make(map[Format]bool, len(cfg.EnabledFormats)),
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, name := range cfg.EnabledFormats {
		r.enabled[FormatFromName(name)] = true
	}

	if cfg.DefaultFormat != "" {
		r.defaultFormat = FormatFromName(cfg.DefaultFormat)
	} else {
		for _, f := range formatPriority {
			if r.enabled[f] {
				r.defaultFormat = f
				break
			}
		}
	}

	r.logger.Debug("format registry built",
		observability.Int("enabled", len(r.enabled)),
		observability.String("default", r.defaultFormat.String()))

	return r, nil
}

// Enabled reports whether the format is in the enabled set.
func (r *Registry) Enabled(f Format) bool {
	return r.enabled[f]
}

// Default returns the format used when negotiation matches neither header.
func (r *Registry) Default() Format {
	return r.defaultFormat
}

// Formats returns the enabled formats in priority order.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.enabled))
	for _, f := range formatPriority {
		if r.enabled[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

// SupportedContentTypes returns the canonical MIME strings of the enabled
// formats in priority order.
func (r *Registry) SupportedContentTypes() []string {
	formats := r.Formats()
	types := make([]string, 0, len(formats))
	for _, f := range formats {
		types = append(types, f.ContentType())
	}
	return types
}
