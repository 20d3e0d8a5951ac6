package guestimport

import (
	"sync"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	ImportCompletedFunc func(events int, skipped map[string]int)

	calls struct {
		ImportCompleted []struct {
			Events  int
			Skipped map[string]int
		}
	}
	lockImportCompleted sync.RWMutex
}

func (mock *metricsRecorderMock) ImportCompleted(events int, skipped map[string]int) {
	if mock.ImportCompletedFunc == nil {
		panic("metricsRecorderMock.ImportCompletedFunc: method is nil but metricsRecorder.ImportCompleted was just called")
	}
	callInfo := struct {
		Events  int
		Skipped map[string]int
	}{
		Events:  events,
		Skipped: skipped,
	}
	mock.lockImportCompleted.Lock()
	mock.calls.ImportCompleted = append(mock.calls.ImportCompleted, callInfo)
	mock.lockImportCompleted.Unlock()
	mock.ImportCompletedFunc(events, skipped)
}

func (mock *metricsRecorderMock) ImportCompletedCalls() []struct {
	Events  int
	Skipped map[string]int
} {
	mock.lockImportCompleted.RLock()
	calls := mock.calls.ImportCompleted
	mock.lockImportCompleted.RUnlock()
	return calls
}
