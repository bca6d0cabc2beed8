// Package api defines the StudyFlow RPC surface: procedure names, message
// types, the JSON codec they travel with, and a typed client.
//
// Services are served with Connect (connectrpc.com/connect) over plain Go
// structs. Every handler and client must be built with WithJSON so both ends
// agree on the codec.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// JSONCodec is a connect.Codec for plain JSON-tagged Go structs.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

// Name implements connect.Codec. It replaces the protojson codec registered
// under the same name.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}

// WithJSON is the option that installs JSONCodec on a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(JSONCodec{})
}
