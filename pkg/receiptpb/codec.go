package receiptpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is registered with grpc's encoding package and selected via
// grpc.CallContentSubtype / grpc.ForceServerCodec on both ends of the
// connection. Using a JSON codec in place of protoc-generated protobuf
// marshaling is a deliberate, documented substitution — see DESIGN.md.
const CodecName = "json"

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
	return CodecName
}
