package event

import (
	"sync"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	AnalysisCompletedFunc  func(flagged int)
	ConnectionCreatedFunc  func(ct domain.ConnectionType)
	ConnectionRejectedFunc func()
	EventCreatedFunc       func()

	calls struct {
		AnalysisCompleted []struct {
			Flagged int
		}
		ConnectionCreated []struct {
			Ct domain.ConnectionType
		}
		ConnectionRejected []struct{}
		EventCreated []struct{}
	}
	lockAnalysisCompleted  sync.RWMutex
	lockConnectionCreated  sync.RWMutex
	lockConnectionRejected sync.RWMutex
	lockEventCreated       sync.RWMutex
}

func (mock *metricsRecorderMock) AnalysisCompleted(flagged int) {
	if mock.AnalysisCompletedFunc == nil {
		panic("metricsRecorderMock.AnalysisCompletedFunc: method is nil but metricsRecorder.AnalysisCompleted was just called")
	}
	callInfo := struct {
		Flagged int
	}{
		Flagged: flagged,
	}
	mock.lockAnalysisCompleted.Lock()
	mock.calls.AnalysisCompleted = append(mock.calls.AnalysisCompleted, callInfo)
	mock.lockAnalysisCompleted.Unlock()
	mock.AnalysisCompletedFunc(flagged)
}

func (mock *metricsRecorderMock) AnalysisCompletedCalls() []struct {
	Flagged int
} {
	mock.lockAnalysisCompleted.RLock()
	calls := mock.calls.AnalysisCompleted
	mock.lockAnalysisCompleted.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) ConnectionCreated(ct domain.ConnectionType) {
	if mock.ConnectionCreatedFunc == nil {
		panic("metricsRecorderMock.ConnectionCreatedFunc: method is nil but metricsRecorder.ConnectionCreated was just called")
	}
	callInfo := struct {
		Ct domain.ConnectionType
	}{
		Ct: ct,
	}
	mock.lockConnectionCreated.Lock()
	mock.calls.ConnectionCreated = append(mock.calls.ConnectionCreated, callInfo)
	mock.lockConnectionCreated.Unlock()
	mock.ConnectionCreatedFunc(ct)
}

func (mock *metricsRecorderMock) ConnectionCreatedCalls() []struct {
	Ct domain.ConnectionType
} {
	mock.lockConnectionCreated.RLock()
	calls := mock.calls.ConnectionCreated
	mock.lockConnectionCreated.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) ConnectionRejected() {
	if mock.ConnectionRejectedFunc == nil {
		panic("metricsRecorderMock.ConnectionRejectedFunc: method is nil but metricsRecorder.ConnectionRejected was just called")
	}
	mock.lockConnectionRejected.Lock()
	mock.calls.ConnectionRejected = append(mock.calls.ConnectionRejected, struct{}{})
	mock.lockConnectionRejected.Unlock()
	mock.ConnectionRejectedFunc()
}

func (mock *metricsRecorderMock) ConnectionRejectedCalls() []struct{} {
	mock.lockConnectionRejected.RLock()
	calls := mock.calls.ConnectionRejected
	mock.lockConnectionRejected.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) EventCreated() {
	if mock.EventCreatedFunc == nil {
		panic("metricsRecorderMock.EventCreatedFunc: method is nil but metricsRecorder.EventCreated was just called")
	}
	mock.lockEventCreated.Lock()
	mock.calls.EventCreated = append(mock.calls.EventCreated, struct{}{})
	mock.lockEventCreated.Unlock()
	mock.EventCreatedFunc()
}

func (mock *metricsRecorderMock) EventCreatedCalls() []struct{} {
	mock.lockEventCreated.RLock()
	calls := mock.calls.EventCreated
	mock.lockEventCreated.RUnlock()
	return calls
}
