package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &Logger{zap: zap.New(core)}

	log.WithRequest(RequestFields{
		RequestID: "req-1",
		SessionID: "sid-1",
		Username:  "alice",
		Method:    "POST",
		Route:     "/api/v1/spins",
		Status:    200,
		Latency:   3 * time.Millisecond,
		Bytes:     42,
	}).Info("HTTP request processed")

	log.WithRequest(RequestFields{Method: "GET", Route: "/health", Status: 200}).Info("HTTP request processed")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "sid-1", fields["session_id"])
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, "/api/v1/spins", fields["route"])
	assert.Equal(t, int64(200), fields["status"])
	assert.Equal(t, 3*time.Millisecond, fields["latency"])

	anonymous := entries[1].ContextMap()
	assert.NotContains(t, anonymous, "session_id")
	assert.NotContains(t, anonymous, "username")
}

func TestNewLoggerLevel(t *testing.T) {
	log := NewLogger("production", "warn")
	assert.False(t, log.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Zap().Core().Enabled(zapcore.WarnLevel))

	dev := NewLogger("development", "not-a-level")
	assert.True(t, dev.Zap().Core().Enabled(zapcore.DebugLevel))
}
