// Package hostfuncs implements the client side of the mod boundary: the
// registry of named functions a mod may call, the middleware that wraps
// them, and the game-service bundle that backs them.
package hostfuncs

import (
	"context"
	"encoding/json"
	"fmt"
)

// HostFunc is a typed host function: context plus request in, response out.
// Failures are carried inside the response type, never returned, so a mod
// call can never trap the client.
type HostFunc[Req any, Resp any] func(context.Context, Req) Resp

// ByteHandler is the raw form a WASM runtime invokes: JSON bytes in, JSON
// bytes out.
type ByteHandler func(context.Context, []byte) ([]byte, error)

// NewJSONHandler wraps a typed HostFunc into a ByteHandler, handling the
// JSON decode of the request and encode of the response.
func NewJSONHandler[Req any, Resp any](fn HostFunc[Req, Resp]) ByteHandler {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req Req
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("failed to unmarshal request: %w", err)
			}
		}

		resp := fn(ctx, req)

		respBytes, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return respBytes, nil
	}
}
