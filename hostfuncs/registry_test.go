package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Empty(t, reg.Names())
}

func TestNewRegistry_WithByteHandler(t *testing.T) {
	echoHandler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return payload, nil
	}

	reg, err := NewRegistry(
		WithByteHandler("echo", echoHandler),
	)
	require.NoError(t, err)

	assert.True(t, reg.Has("echo"))
	assert.False(t, reg.Has("nonexistent"))
	assert.Equal(t, []string{"echo"}, reg.Names())
}

func TestNewRegistry_DuplicateHandler(t *testing.T) {
	handler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return nil, nil
	}

	_, err := NewRegistry(
		WithByteHandler("test", handler),
		WithByteHandler("test", handler),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate handler name")
}

func TestNewRegistry_EmptyName(t *testing.T) {
	handler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return nil, nil
	}

	_, err := NewRegistry(
		WithByteHandler("", handler),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestHandlerRegistry_Invoke(t *testing.T) {
	echoHandler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return append([]byte("echo:"), payload...), nil
	}

	reg, err := NewRegistry(
		WithByteHandler("echo", echoHandler),
	)
	require.NoError(t, err)

	t.Run("found handler", func(t *testing.T) {
		resp, err := reg.Invoke(context.Background(), "echo", []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, "echo:hello", string(resp))
	})

	t.Run("not found handler yields structured error", func(t *testing.T) {
		resp, err := reg.Invoke(context.Background(), "unknown", []byte("test"))
		require.NoError(t, err)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(resp, &errResp))
		assert.Equal(t, "NOT_FOUND", errResp.Error)
		assert.Equal(t, 404, errResp.Code)
	})
}

func TestHandlerRegistry_MiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next ByteHandler) ByteHandler {
			return func(ctx context.Context, payload []byte) ([]byte, error) {
				order = append(order, tag)
				return next(ctx, payload)
			}
		}
	}

	reg, err := NewRegistry(
		WithMiddleware(mw("outer"), mw("inner")),
		WithByteHandler("noop", func(ctx context.Context, payload []byte) ([]byte, error) {
			order = append(order, "handler")
			return nil, nil
		}),
	)
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), "noop", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestHandlerRegistry_FunctionNameInContext(t *testing.T) {
	reg, err := NewRegistry(
		WithByteHandler("named", func(ctx context.Context, payload []byte) ([]byte, error) {
			hc, ok := ctx.(HostContext)
			require.True(t, ok)
			return []byte(hc.FunctionName()), nil
		}),
	)
	require.NoError(t, err)

	resp, err := reg.Invoke(context.Background(), "named", nil)
	require.NoError(t, err)
	assert.Equal(t, "named", string(resp))
}
