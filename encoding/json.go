package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vyrodovalexey/multipayload/config"
)

// jsonCodec implements Codec for JSON encoding.
//
// Protobuf message values take the protojson path so that their JSON shape
// follows the proto JSON mapping; everything else goes through
// encoding/json.
type jsonCodec struct {
	cfg *config.JSONConfig
}

// NewJSONCodec creates a new JSON codec.
func NewJSONCodec(cfg *config.JSONConfig) Codec {
	if cfg == nil {
		cfg = &config.JSONConfig{}
	}
	return &jsonCodec{cfg: cfg}
}

// Encode encodes the value to JSON bytes.
func (c *jsonCodec) Encode(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	if msg, ok := v.(proto.Message); ok {
		opts := protojson.MarshalOptions{
			EmitUnpopulated: c.cfg.EmitDefaults,
			UseProtoNames:   c.cfg.UseProtoNames,
		}
		if c.cfg.PrettyPrint {
			opts.Indent = "  "
		}

		data, err := opts.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
		}
		return data, nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)

	if c.cfg.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	// Remove trailing newline added by encoder
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	return result, nil
}

// Decode decodes JSON bytes into the value. Empty input is not valid JSON
// and fails like any other malformed document.
func (c *jsonCodec) Decode(data []byte, v interface{}) error {
	if msg, ok := v.(proto.Message); ok {
		if err := protojson.Unmarshal(data, msg); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
		}
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))

	// Use number type for better precision
	decoder.UseNumber()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}

	return nil
}

// ContentType returns the JSON content type.
func (c *jsonCodec) ContentType() string {
	return config.ContentTypeJSON
}

// Format returns FormatJSON.
func (c *jsonCodec) Format() Format {
	return FormatJSON
}
