package payload

import (
	"github.com/vyrodovalexey/multipayload/config"
	"github.com/vyrodovalexey/multipayload/encoding"
	"github.com/vyrodovalexey/multipayload/observability"
)

// Binder routes payloads of one application type through the codec for a
// resolved format. The codec table is built once from the registry and
// reused; a Binder is immutable after construction and safe for concurrent
// use.
//
// Payload types that should support the protobuf format must be generated
// message types (T is the message struct, methods on *T). JSON and XML work
// for any type the respective stdlib codec can handle.
type Binder[T any] struct {
	registry     *encoding.Registry
	codecs       map[encoding.Format]encoding.Codec
	logger       observability.Logger
	metrics      *encoding.Metrics
	maxBodyBytes int64
}

// binderOptions collects option values shared by all Binder instantiations.
type binderOptions struct {
	logger       observability.Logger
	jsonCfg      *config.JSONConfig
	maxBodyBytes int64
}

// BinderOption is a functional option for configuring a Binder.
type BinderOption func(*binderOptions)

// WithLogger sets the logger for the binder.
func WithLogger(logger observability.Logger) BinderOption {
	return func(o *binderOptions) {
		o.logger = logger
	}
}

// WithJSONOptions sets JSON-specific encoding options.
func WithJSONOptions(cfg *config.JSONConfig) BinderOption {
	return func(o *binderOptions) {
		o.jsonCfg = cfg
	}
}

// WithMaxBodyBytes caps the request body size collected during extraction.
// Zero disables the cap.
func WithMaxBodyBytes(n int64) BinderOption {
	return func(o *binderOptions) {
		o.maxBodyBytes = n
	}
}

// NewBinder creates a Binder for the payload type T over the registry's
// enabled formats.
func NewBinder[T any](registry *encoding.Registry, opts ...BinderOption) *Binder[T] {
	options := &binderOptions{
		logger: observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Binder[T]{
		registry:     registry,
		codecs:       encoding.BuildCodecs(registry, options.jsonCfg),
		logger:       options.logger,
		metrics:      encoding.GetMetrics(),
		maxBodyBytes: options.maxBodyBytes,
	}
}

// NewBinderFromConfig builds the registry and the Binder in one step.
func NewBinderFromConfig[T any](cfg *config.Config, logger observability.Logger) (*Binder[T], error) {
	if logger == nil {
		logger = observability.NopLogger()
	}

	registry, err := encoding.NewRegistry(cfg, encoding.WithRegistryLogger(logger))
	if err != nil {
		return nil, err
	}

	opts := []BinderOption{WithLogger(logger)}
	if cfg != nil {
		if cfg.JSON != nil {
			opts = append(opts, WithJSONOptions(cfg.JSON))
		}
		if cfg.MaxBodyBytes > 0 {
			opts = append(opts, WithMaxBodyBytes(cfg.MaxBodyBytes))
		}
	}

	return NewBinder[T](registry, opts...), nil
}

// Registry returns the format registry the binder was built from.
func (b *Binder[T]) Registry() *encoding.Registry {
	return b.registry
}

// Deserialize decodes bytes in the given format into a new payload.
//
// An unrecognized format, or a format outside the enabled set, fails with
// a DeserializeError wrapping encoding.ErrUnsupportedFormat without
// touching any codec.
func (b *Binder[T]) Deserialize(data []byte, f encoding.Format) (*Payload[T], error) {
	codec, ok := b.codecs[f]
	if !ok {
		b.metrics.RecordError(f.String(), "decode")
		return nil, &DeserializeError{Format: f, Err: encoding.ErrUnsupportedFormat}
	}

	var value T
	if err := codec.Decode(data, &value); err != nil {
		b.metrics.RecordDecode(f.String(), "error")
		b.metrics.RecordError(f.String(), "decode")
		b.logger.Debug("payload decode failed",
			observability.String("format", f.String()),
			observability.Error(err))
		return nil, &DeserializeError{Format: f, Err: err}
	}

	b.metrics.RecordDecode(f.String(), "success")
	return New(value), nil
}

// Serialize encodes the payload in the given format. On success the caller
// uses f.ContentType() as the outbound Content-Type value.
//
// FormatUnrecognized fails with a SerializeError wrapping
// encoding.ErrUnsupportedFormat. Negotiation over a validated registry
// never produces it, so this branch guards only against callers bypassing
// negotiation.
func (b *Binder[T]) Serialize(p *Payload[T], f encoding.Format) ([]byte, error) {
	codec, ok := b.codecs[f]
	if !ok {
		b.metrics.RecordError(f.String(), "encode")
		return nil, &SerializeError{Format: f, Err: encoding.ErrUnsupportedFormat}
	}

	data, err := codec.Encode(p.Ref())
	if err != nil {
		b.metrics.RecordEncode(f.String(), "error")
		b.metrics.RecordError(f.String(), "encode")
		b.logger.Debug("payload encode failed",
			observability.String("format", f.String()),
			observability.Error(err))
		return nil, &SerializeError{Format: f, Err: err}
	}

	b.metrics.RecordEncode(f.String(), "success")
	return data, nil
}
