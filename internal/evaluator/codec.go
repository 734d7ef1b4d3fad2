package evaluator

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName is registered with grpc's pluggable codec system so the
// evaluator's messages travel as JSON instead of protobuf wire format.
// The pack's toolchain to regenerate protobuf bindings from a .proto
// isn't available here; JSON-over-gRPC keeps the real grpc transport,
// dialing, and method dispatch while sidestepping code generation.
const codecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}
