package pool_ifaceconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec replaces the protobuf json codec, the contract types are plain structs.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

func withJSONCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append(opts, WithJSONCodec())
}
