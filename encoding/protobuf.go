package encoding

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/vyrodovalexey/multipayload/config"
)

// protobufCodec implements Codec for Protocol Buffers encoding.
//
// Values routed here must implement proto.Message; the payload type
// carries that capability, not the codec.
type protobufCodec struct{}

// NewProtobufCodec creates a new Protocol Buffers codec.
func NewProtobufCodec() Codec {
	return &protobufCodec{}
}

// Encode encodes the message to protobuf bytes.
func (c *protobufCodec) Encode(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	msg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotProtoMessage, v)
	}

	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	return data, nil
}

// Decode decodes protobuf bytes into the message. An empty buffer is the
// valid wire encoding of the empty message, unlike in the text formats.
func (c *protobufCodec) Decode(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}

	msg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotProtoMessage, v)
	}

	if err := proto.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}

	return nil
}

// ContentType returns the Protocol Buffers content type.
func (c *protobufCodec) ContentType() string {
	return config.ContentTypeProtobuf
}

// Format returns FormatProtobuf.
func (c *protobufCodec) Format() Format {
	return FormatProtobuf
}
