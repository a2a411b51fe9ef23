package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorAttachesCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Error("render failed", errors.New("boom"), zap.String("template", "modern"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "modern", fields["template"])
}

func TestErrorWithoutCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	New(zap.New(core)).Error("nothing wrapped", nil)

	require.Len(t, logs.All(), 1)
	assert.NotContains(t, logs.All()[0].ContextMap(), "error")
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core)).With(zap.String("request_id", "abc"))

	l.Info("one")
	l.Warn("two")

	for _, e := range logs.All() {
		assert.Equal(t, "abc", e.ContextMap()["request_id"])
	}
	assert.Equal(t, 2, logs.Len())
}

func TestNewZapLoggerEnvironments(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l := NewZapLogger(env)
		assert.NotNil(t, l)
		l.Debug("hello")
	}
	assert.NotPanics(t, func() { NewNop().Info("quiet") })
}
