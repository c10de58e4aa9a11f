package matrix

//go:generate mockgen -source=transport.go -destination=mock/mock_transport.go

import "context"

// Transport invokes a remote method with the given parameters and returns the
// decoded JSON response: map[string]any, []any, string, json.Number, bool or nil.
type Transport interface {
	Call(ctx context.Context, method string, params *Params) (any, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, method string, params *Params) (any, error)

// Call calls f.
func (f TransportFunc) Call(ctx context.Context, method string, params *Params) (any, error) {
	return f(ctx, method, params)
}
