package logger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := NewZapSink(zap.New(core))
	run := uuid.New()
	sink.Emit(Event{Kind: DuplicateRoot, Box: 4, Tag: "html", Message: "root box already set", Run: run})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "root box already set", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "duplicate-root", fields["kind"])
	assert.Equal(t, int64(4), fields["box"])
	assert.Equal(t, run.String(), fields["run"])
}

func TestCollectorAndTee(t *testing.T) {
	var c1, c2 Collector
	sink := Tee{&c1, &c2}
	sink.Emit(Event{Kind: ClippedOut})
	sink.Emit(Event{Kind: DuplicateRoot})
	assert.Equal(t, 1, c1.Count(ClippedOut))
	assert.Len(t, c2.Events, 2)
}

func TestInit(t *testing.T) {
	assert.Error(t, Init("verbose", "console"))
	assert.Error(t, Init("info", "xml"))
	assert.NoError(t, Init("info", "json"))
	ProgressLogger = zap.NewNop().Sugar()
	WarningLogger = zap.NewNop().Sugar()
}
