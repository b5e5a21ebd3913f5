package correlation

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	ids := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Len(t, id, 8)
		ids[id] = struct{}{}
	}
	assert.Len(t, ids, 100)
}

func TestFromHeader(t *testing.T) {
	assert.Equal(t, "req-42_A", FromHeader("req-42_A"))

	for _, bad := range []string{"", "has space", "semi;colon", "<script>", strings.Repeat("a", 65)} {
		got := FromHeader(bad)
		assert.NotEqual(t, bad, got, "value %q", bad)
		assert.Len(t, got, 8)
	}
}

func TestWithID_Roundtrip(t *testing.T) {
	id, ok := ID(WithID(context.Background(), "abc12345"))
	assert.True(t, ok)
	assert.Equal(t, "abc12345", id)

	_, ok = ID(context.Background())
	assert.False(t, ok)

	_, ok = ID(WithID(context.Background(), ""))
	assert.False(t, ok)
}

func TestHandler_InjectsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(slog.NewTextHandler(&buf, nil)))

	logger.InfoContext(WithID(context.Background(), "deadbeef"), "table rendered")
	assert.Contains(t, buf.String(), "correlation_id=deadbeef")

	buf.Reset()
	logger.InfoContext(context.Background(), "no id")
	assert.NotContains(t, buf.String(), "correlation_id")
}

func TestHandler_WithAttrsKeepsInjection(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(slog.NewJSONHandler(&buf, nil))).With("component", "loader")

	logger.InfoContext(WithID(context.Background(), "cafe0001"), "loaded")
	out := buf.String()
	assert.Contains(t, out, `"component":"loader"`)
	assert.Contains(t, out, `"correlation_id":"cafe0001"`)
}
