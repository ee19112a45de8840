package encoding

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/vyrodovalexey/multipayload/config"
)

// xmlCodec implements Codec for XML encoding.
type xmlCodec struct{}

// NewXMLCodec creates a new XML codec.
func NewXMLCodec() Codec {
	return &xmlCodec{}
}

// Encode encodes the value to XML bytes.
func (c *xmlCodec) Encode(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	var buf bytes.Buffer
	encoder := xml.NewEncoder(&buf)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	return buf.Bytes(), nil
}

// Decode decodes XML bytes into the value. Empty input has no document
// element and fails like any other malformed document.
func (c *xmlCodec) Decode(data []byte, v interface{}) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}

	return nil
}

// ContentType returns the XML content type.
func (c *xmlCodec) ContentType() string {
	return config.ContentTypeXML
}

// Format returns FormatXML.
func (c *xmlCodec) Format() Format {
	return FormatXML
}
