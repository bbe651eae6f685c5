package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapJSON_WritesStructuredLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l, err := NewZapJSON("debug", path)
	require.NoError(t, err)

	ctx := context.Background()
	l.With("entity", "plan").Info(ctx, "list loaded", "count", 3)
	l.Debug(ctx, "request", "method", "GET")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "list loaded", first["message"])
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "plan", first["entity"])
	assert.EqualValues(t, 3, first["count"])
}

func TestZapJSON_UnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l, err := NewZapJSON("chatty", path)
	require.NoError(t, err)

	l.Debug(context.Background(), "dropped")
	l.Warn(context.Background(), "kept")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestZapJSON_MasksCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l, err := NewZapJSON("info", path)
	require.NoError(t, err)

	l.Info(context.Background(), "signup submitted", "email", "a@x.com", "confirm_password", "hunter22")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var line map[string]any
	require.NoError(t, json.Unmarshal(data, &line))
	assert.Equal(t, "a@x.com", line["email"])
	assert.Equal(t, Redacted, line["confirm_password"])
}
