package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-plan",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"total_days": 30, "subject_count": 2},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=generate-plan")
	assert.Contains(t, out, "success=true")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("subject_count=2")), bytes.Index(buf.Bytes(), []byte("total_days=30")))
}

func TestLogUseCaseObserver_Failure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "generate-plan",
		Err:  errors.New("boom"),
	})

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
