package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "submit",
		Duration: 15 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"dropped_lines": 2},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=submit")
	assert.Contains(t, out, "duration_ms=15")
	assert.Contains(t, out, "dropped_lines=2")
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "reset",
		Err:  errors.New("disk full"),
	})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="disk full"`)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}

func TestUseCaseObserverOrNoop_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "export"})

	assert.Equal(t, "export", a.last().Name)
	assert.Equal(t, "export", b.last().Name)
}

func TestLogUseCaseObserver_SortedFields(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "submit",
		Success: true,
		Fields:  map[string]any{"workouts": 3, "classes": 2, "games": 1},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=stuath_use_case")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("classes=")), bytes.Index(buf.Bytes(), []byte("games=")))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("games=")), bytes.Index(buf.Bytes(), []byte("workouts=")))
}
