package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "add-entry", Success: true, Duration: 3 * time.Millisecond,
		Fields: map[string]any{"timecard_id": "tc-1"}})
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "use_case=add-entry")
	assert.Contains(t, buf.String(), "timecard_id=tc-1")

	buf.Reset()
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "add-entry", Err: domain.ErrTimecardLocked})
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "add-entry", Err: errors.New("database is locked")})
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
