// Package encoding provides wire format resolution, content negotiation,
// and codecs for the payload adapter.
//
// The package implements codecs for the supported content types:
//
//   - JSON (application/json)
//   - Protocol Buffers (application/protobuf)
//   - XML (application/xml, text/xml)
//
// Which formats are available is decided once at startup by building a
// Registry from configuration; resolution and negotiation then classify
// header values against that registry.
//
// # Example Usage
//
//	reg, err := encoding.NewRegistry(config.DefaultConfig())
//	if err != nil {
//		// zero enabled formats is a startup fault
//	}
//
//	// Classify a request body format
//	format := reg.Resolve(r.Header.Get("Content-Type"))
//
//	// Pick a response format
//	format = reg.SelectResponseFormat(r.Header.Get("Accept"), r.Header.Get("Content-Type"))
//
//	// Encode data
//	codec, err := encoding.NewCodec(format, nil)
//	data, err := codec.Encode(myStruct)
//
// # Thread Safety
//
// A Registry is immutable after construction; all codecs and registry
// methods are safe for concurrent use.
package encoding
