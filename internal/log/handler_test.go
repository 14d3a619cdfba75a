package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/daygrid/scheduler/internal/middleware"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsCorrelationIDAndUser(t *testing.T) {
	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))

	ctx := middleware.NewContextWithCorrelationID(context.Background(), "some-id")
	ctx = model.NewContextWithUser(ctx, model.User{ID: 7, Username: "hana"})

	logger.InfoContext(ctx, "info")

	got := make(map[string]any)
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))

	assert.Equal(t, "some-id", got[middleware.RequestLoggerKeyCorrelationID])
	user, ok := got[middleware.RequestLoggerKeyUser].(map[string]any)
	require.True(t, ok, "want log line to have a user attribute")
	assert.Equal(t, "hana", user["username"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password must never be logged")
}

func TestContextHandlerToleratesBareContext(t *testing.T) {
	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))

	logger.InfoContext(context.Background(), "info")

	got := make(map[string]any)
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))

	_, ok := got[middleware.RequestLoggerKeyCorrelationID]
	assert.False(t, ok)
	_, ok = got[middleware.RequestLoggerKeyUser]
	assert.False(t, ok)
}
