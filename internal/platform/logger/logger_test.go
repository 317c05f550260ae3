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

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("console"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestZapLogger_WithAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(map[string]any{"session_id": "s-1", "": "skip"})

	l.Warn("cache append failed", map[string]any{"err": errors.New("boom"), "order_id": int64(7)})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "cache append failed", e.Message)
	assert.Equal(t, zapcore.WarnLevel, e.Level)

	ctx := e.ContextMap()
	assert.Equal(t, "s-1", ctx["session_id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.EqualValues(t, 7, ctx["order_id"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Info("hello", nil)
	assert.Same(t, l, l.With(nil))
	assert.NoError(t, l.Sync())
}
