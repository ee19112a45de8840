package payload

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vyrodovalexey/multipayload/encoding"
	"github.com/vyrodovalexey/multipayload/observability"
)

// Extract classifies and decodes an inbound request body into a payload.
//
// The Content-Type header is resolved first; an absent or unrecognized
// value fails with ErrInvalidContentType before a single body byte is
// read. Only then is the body stream collected into one buffer (the lone
// suspension point of the adapter) and dispatched to the format's codec.
func (b *Binder[T]) Extract(ctx context.Context, headers http.Header, body io.Reader) (*Payload[T], error) {
	format := b.registry.Resolve(headers.Get(encoding.HeaderContentType))
	if format == encoding.FormatUnrecognized {
		b.logger.Debug("request content type rejected",
			observability.String("contentType", headers.Get(encoding.HeaderContentType)))
		return nil, ErrInvalidContentType
	}

	data, err := b.collectBody(ctx, body)
	if err != nil {
		return nil, err
	}

	return b.Deserialize(data, format)
}

// collectBody reads the body stream to end-of-stream, honoring the
// configured size cap and context cancellation.
func (b *Binder[T]) collectBody(ctx context.Context, body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("request canceled: %w", err)
	}

	reader := body
	if b.maxBodyBytes > 0 {
		reader = io.LimitReader(body, b.maxBodyBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if b.maxBodyBytes > 0 && int64(len(data)) > b.maxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	return data, nil
}
