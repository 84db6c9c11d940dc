package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	reg, err := NewRegistry(
		WithMiddleware(PanicRecoveryMiddleware()),
		WithByteHandler("boom", func(ctx context.Context, payload []byte) ([]byte, error) {
			panic("draw buffer overrun")
		}),
	)
	require.NoError(t, err)

	resp, err := reg.Invoke(context.Background(), "boom", nil)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "INTERNAL_ERROR", errResp.Error)
	assert.Contains(t, errResp.Message, "draw buffer overrun")
	assert.Equal(t, 500, errResp.Code)
}

func TestPanicRecoveryMiddleware_ErrorValue(t *testing.T) {
	reg, err := NewRegistry(
		WithMiddleware(PanicRecoveryMiddleware()),
		WithByteHandler("boom", func(ctx context.Context, payload []byte) ([]byte, error) {
			panic(assert.AnError)
		}),
	)
	require.NoError(t, err)

	resp, err := reg.Invoke(context.Background(), "boom", nil)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Contains(t, errResp.Message, assert.AnError.Error())
}
