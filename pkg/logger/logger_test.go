package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	require.NotNil(t, l)

	l, err = New("not-a-level", "json")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(0), "unknown level falls back to info")
	assert.False(t, l.Core().Enabled(-1))
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Len(t, contextFields(ctx), 1)
	assert.Empty(t, contextFields(context.Background()))
}
