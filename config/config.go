// Package config provides configuration types and loading for the payload adapter.
package config

import (
	"errors"
	"fmt"
)

// Encoding name constants.
const (
	// EncodingJSON represents JSON encoding.
	EncodingJSON = "json"

	// EncodingProtobuf represents Protocol Buffers encoding.
	EncodingProtobuf = "protobuf"

	// EncodingXML represents XML encoding.
	EncodingXML = "xml"
)

// ContentType constants for the supported wire formats.
const (
	// ContentTypeJSON is the JSON content type.
	ContentTypeJSON = "application/json"

	// ContentTypeProtobuf is the Protocol Buffers content type.
	ContentTypeProtobuf = "application/protobuf"

	// ContentTypeXML is the XML content type.
	ContentTypeXML = "application/xml"

	// ContentTypeTextXML is the alternate XML content type accepted on requests.
	ContentTypeTextXML = "text/xml"
)

// Config validation errors.
var (
	// ErrNoFormatsEnabled indicates that the enabled format set is empty.
	ErrNoFormatsEnabled = errors.New("no formats enabled")

	// ErrUnknownFormat indicates an unknown format name in the configuration.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrDefaultNotEnabled indicates that the default format is not in the enabled set.
	ErrDefaultNotEnabled = errors.New("default format not enabled")
)

// Config represents payload adapter configuration.
//
// The enabled format set and the default format are resolved once at
// startup; every resolver and dispatch decision afterwards queries the
// registry built from this configuration.
type Config struct {
	// EnabledFormats lists the wire formats available for negotiation.
	// Valid values: "json", "protobuf", "xml". At least one is required.
	EnabledFormats []string `yaml:"enabledFormats" json:"enabledFormats"`

	// DefaultFormat is used when neither Accept nor Content-Type selects a
	// format. Empty means the first enabled format in priority order
	// (json, protobuf, xml).
	DefaultFormat string `yaml:"defaultFormat,omitempty" json:"defaultFormat,omitempty"`

	// JSON contains JSON-specific encoding options.
	JSON *JSONConfig `yaml:"json,omitempty" json:"json,omitempty"`

	// MaxBodyBytes caps the request body size collected during extraction.
	// Zero disables the cap.
	MaxBodyBytes int64 `yaml:"maxBodyBytes,omitempty" json:"maxBodyBytes,omitempty"`
}

// JSONConfig contains JSON-specific encoding options.
type JSONConfig struct {
	// PrettyPrint when true, formats JSON output with indentation.
	PrettyPrint bool `yaml:"prettyPrint,omitempty" json:"prettyPrint,omitempty"`

	// EmitDefaults when true, includes fields with default values when
	// encoding protobuf messages as JSON.
	EmitDefaults bool `yaml:"emitDefaults,omitempty" json:"emitDefaults,omitempty"`

	// UseProtoNames when true, uses proto field names instead of camelCase
	// when encoding protobuf messages as JSON.
	UseProtoNames bool `yaml:"useProtoNames,omitempty" json:"useProtoNames,omitempty"`
}

// DefaultConfig returns default payload adapter configuration.
func DefaultConfig() *Config {
	return &Config{
		EnabledFormats: []string{
			EncodingJSON,
			EncodingProtobuf,
			EncodingXML,
		},
		JSON: &JSONConfig{},
	}
}

// knownFormats is the set of recognized format names.
var knownFormats = map[string]bool{
	EncodingJSON:     true,
	EncodingProtobuf: true,
	EncodingXML:      true,
}

// Validate checks the configuration for startup-fatal mistakes.
//
// An empty enabled set is rejected here rather than surfaced per request:
// with zero formats no request could ever be decoded and no response could
// ever be encoded, so the process must refuse to start.
func (c *Config) Validate() error {
	if c == nil || len(c.EnabledFormats) == 0 {
		return ErrNoFormatsEnabled
	}

	for _, name := range c.EnabledFormats {
		if !knownFormats[name] {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}
	}

	if c.DefaultFormat != "" {
		if !knownFormats[c.DefaultFormat] {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, c.DefaultFormat)
		}
		enabled := false
		for _, name := range c.EnabledFormats {
			if name == c.DefaultFormat {
				enabled = true
				break
			}
		}
		if !enabled {
			return fmt.Errorf("%w: %q", ErrDefaultNotEnabled, c.DefaultFormat)
		}
	}

	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("maxBodyBytes must not be negative: %d", c.MaxBodyBytes)
	}

	return nil
}

// Enabled reports whether the named format is in the enabled set.
func (c *Config) Enabled(name string) bool {
	if c == nil {
		return false
	}
	for _, f := range c.EnabledFormats {
		if f == name {
			return true
		}
	}
	return false
}
