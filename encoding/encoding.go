package encoding

import (
	"errors"

	"github.com/vyrodovalexey/multipayload/config"
)

// Common encoding errors.
var (
	// ErrUnsupportedFormat indicates that the format is unrecognized or not
	// in the enabled set of this build.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEncodingFailed indicates that encoding failed.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrDecodingFailed indicates that decoding failed.
	ErrDecodingFailed = errors.New("decoding failed")

	// ErrNilValue indicates that the value to encode is nil.
	ErrNilValue = errors.New("nil value")

	// ErrNotProtoMessage indicates that a value routed to the protobuf
	// codec does not implement proto.Message.
	ErrNotProtoMessage = errors.New("value is not a proto.Message")
)

// Encoder encodes data to bytes.
type Encoder interface {
	// Encode encodes the value to bytes.
	Encode(v interface{}) ([]byte, error)

	// ContentType returns the canonical content type for this encoder.
	ContentType() string
}

// Decoder decodes bytes to data.
type Decoder interface {
	// Decode decodes the data into the value.
	Decode(data []byte, v interface{}) error
}

// Codec combines Encoder and Decoder for one wire format.
type Codec interface {
	Encoder
	Decoder

	// Format returns the format this codec implements.
	Format() Format
}

// NewCodec returns the codec for a format. The JSON configuration is only
// consulted for FormatJSON and may be nil.
func NewCodec(f Format, jsonCfg *config.JSONConfig) (Codec, error) {
	switch f {
	case FormatJSON:
		return NewJSONCodec(jsonCfg), nil
	case FormatProtobuf:
		return NewProtobufCodec(), nil
	case FormatXML:
		return NewXMLCodec(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// BuildCodecs constructs the codec table for every format enabled in the
// registry. The table is built once and reused for the registry's lifetime.
func BuildCodecs(reg *Registry, jsonCfg *config.JSONConfig) map[Format]Codec {
	formats := reg.Formats()
	codecs := make(map[Format]Codec, len(formats))
	for _, f := range formats {
		codec, err := NewCodec(f, jsonCfg)
		if err != nil {
			continue
		}
		codecs[f] = codec
	}
	return codecs
}
