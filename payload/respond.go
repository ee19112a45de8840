package payload

import (
	"net/http"

	"github.com/vyrodovalexey/multipayload/encoding"
	"github.com/vyrodovalexey/multipayload/observability"
)

// Response is the serialized outbound payload for the host to turn into a
// transport-level response.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// ContentType is the canonical MIME string of the negotiated format.
	ContentType string

	// Body is the serialized payload.
	Body []byte
}

// BuildResponse negotiates the response format from the request headers
// and serializes the payload.
//
// The Accept header wins when it names an enabled format; otherwise the
// request's Content-Type is mirrored; otherwise the registry default
// applies. A serialization failure is returned for the host to map to a
// 500-equivalent via HTTPStatus.
func (b *Binder[T]) BuildResponse(p *Payload[T], headers http.Header) (*Response, error) {
	format := b.registry.SelectResponseFormat(
		headers.Get(encoding.HeaderAccept),
		headers.Get(encoding.HeaderContentType),
	)
	b.metrics.RecordNegotiation(format.String())

	body, err := b.Serialize(p, format)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("response payload built",
		observability.String("format", format.String()),
		observability.Int("bytes", len(body)))

	return &Response{
		Status:      http.StatusOK,
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}
