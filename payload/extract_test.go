package payload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vyrodovalexey/multipayload/config"
	"github.com/vyrodovalexey/multipayload/encoding"
)

// countingReader records whether the body stream was ever read.
type countingReader struct {
	reader io.Reader
	reads  int
}

func (r *countingReader) Read(p []byte) (int, error) {
	r.reads++
	return r.reader.Read(p)
}

func headersWith(pairs ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}
	return h
}

func TestBinder_Extract_JSON(t *testing.T) {
	binder := newTestBinder[echoPayload](t, allFormats()...)

	p, err := binder.Extract(context.Background(),
		headersWith("Content-Type", "application/json"),
		strings.NewReader(`{"foo":"x","bar":1}`))

	require.NoError(t, err)
	assert.Equal(t, echoPayload{Foo: "x", Bar: 1}, p.Value())
}

func TestBinder_Extract_CharsetTolerated(t *testing.T) {
	binder := newTestBinder[echoPayload](t, allFormats()...)

	p, err := binder.Extract(context.Background(),
		headersWith("Content-Type", "application/json; charset=UTF-8"),
		strings.NewReader(`{"foo":"x","bar":1}`))

	require.NoError(t, err)
	assert.Equal(t, echoPayload{Foo: "x", Bar: 1}, p.Value())
}

func TestBinder_Extract_InvalidContentType(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		headers http.Header
	}{
		{
			name:    "missing header",
			formats: allFormats(),
			headers: headersWith(),
		},
		{
			name:    "unknown type",
			formats: allFormats(),
			headers: headersWith("Content-Type", "foo/bar"),
		},
		{
			name:    "disabled format",
			formats: []string{config.EncodingJSON},
			headers: headersWith("Content-Type", "application/xml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binder := newTestBinder[echoPayload](t, tt.formats...)

			body := &countingReader{reader: strings.NewReader(`{"foo":"x"}`)}
			_, err := binder.Extract(context.Background(), tt.headers, body)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidContentType)
			// The body stream must not be touched before classification succeeds.
			assert.Zero(t, body.reads)
		})
	}
}

func TestBinder_Extract_MalformedBody(t *testing.T) {
	binder := newTestBinder[echoPayload](t, allFormats()...)

	_, err := binder.Extract(context.Background(),
		headersWith("Content-Type", "application/json"),
		strings.NewReader(`not-json`))

	require.Error(t, err)
	var deserializeErr *DeserializeError
	require.ErrorAs(t, err, &deserializeErr)
	assert.Equal(t, encoding.FormatJSON, deserializeErr.Format)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestBinder_Extract_BodyTooLarge(t *testing.T) {
	reg, err := encoding.NewRegistry(&config.Config{EnabledFormats: allFormats()})
	require.NoError(t, err)
	binder := NewBinder[echoPayload](reg, WithMaxBodyBytes(8))

	_, err = binder.Extract(context.Background(),
		headersWith("Content-Type", "application/json"),
		strings.NewReader(`{"foo":"xxxxxxxxxxxxxxxx"}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestBinder_Extract_BodyWithinCap(t *testing.T) {
	reg, err := encoding.NewRegistry(&config.Config{EnabledFormats: allFormats()})
	require.NoError(t, err)
	binder := NewBinder[echoPayload](reg, WithMaxBodyBytes(1024))

	p, err := binder.Extract(context.Background(),
		headersWith("Content-Type", "application/json"),
		strings.NewReader(`{"foo":"x","bar":1}`))

	require.NoError(t, err)
	assert.Equal(t, echoPayload{Foo: "x", Bar: 1}, p.Value())
}

func TestBinder_Extract_CanceledContext(t *testing.T) {
	binder := newTestBinder[echoPayload](t, allFormats()...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := binder.Extract(ctx,
		headersWith("Content-Type", "application/json"),
		strings.NewReader(`{"foo":"x"}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBinder_Extract_EmptyBody(t *testing.T) {
	// An empty body is not a valid document in the text formats; it must
	// surface as a format-tagged deserialize error, not a zero-value payload.
	binder := newTestBinder[echoPayload](t, allFormats()...)

	tests := []struct {
		name string
		body io.Reader
	}{
		{
			name: "empty reader",
			body: strings.NewReader(""),
		},
		{
			name: "nil body",
			body: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := binder.Extract(context.Background(),
				headersWith("Content-Type", "application/json"), tt.body)

			require.Error(t, err)
			var deserializeErr *DeserializeError
			require.ErrorAs(t, err, &deserializeErr)
			assert.Equal(t, encoding.FormatJSON, deserializeErr.Format)
			assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
		})
	}
}

func TestBinder_Extract_EmptyProtobufBody(t *testing.T) {
	// The empty buffer is the valid wire encoding of the empty message.
	binder := newTestBinder[structpb.Struct](t, allFormats()...)

	p, err := binder.Extract(context.Background(),
		headersWith("Content-Type", "application/protobuf"),
		strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, p.Ref().GetFields())
}

func TestBinder_Extract_BodyReadError(t *testing.T) {
	binder := newTestBinder[echoPayload](t, allFormats()...)

	readErr := errors.New("connection reset")
	_, err := binder.Extract(context.Background(),
		headersWith("Content-Type", "application/json"),
		&failingReader{err: readErr})

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

// failingReader always fails, modeling a broken body stream.
type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
