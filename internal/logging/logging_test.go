package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf}).With(String("component", "test"))

	ctx := ContextWithRequestID(context.Background(), "req-1")
	log.Debug(ctx, "hidden")
	log.Warn(ctx, "event table unavailable", Int("rows", 8), Err(errors.New("timeout")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "event table unavailable", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, 8.0, entry["rows"])
	assert.Equal(t, "timeout", entry["error"])
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromContext(context.Background()))
	a, b := NewRequestID(), NewRequestID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestNoop(t *testing.T) {
	t.Parallel()
	log := Noop().With(String("k", "v"))
	assert.NotPanics(t, func() { log.Error(context.Background(), "dropped") })
}
