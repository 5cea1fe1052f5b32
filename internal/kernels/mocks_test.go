package kernels

import (
	"context"
	"sync"
)

// --- MockHandle ---

// MockHandle implements Handle for testing.
type MockHandle struct {
	Alive    bool
	ProbeErr error

	mu     sync.Mutex
	probes int
}

func (h *MockHandle) IsAlive() (bool, error) {
	h.mu.Lock()
	h.probes++
	h.mu.Unlock()
	if h.ProbeErr != nil {
		return false, h.ProbeErr
	}
	return h.Alive, nil
}

func (h *MockHandle) Probes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.probes
}

// --- MockManager ---

// MockManager implements Manager for testing. Behavior is overridable per
// method via Func fields; the zero value has an empty registry and starts
// succeed with a fixed generated identity.
type MockManager struct {
	Handles map[string]*MockHandle

	StartFunc        func(req StartRequest) (string, error)
	StartContextFunc func(ctx context.Context, req StartRequest) (string, error)

	mu        sync.Mutex
	startReqs []StartRequest
}

func (m *MockManager) StartKernel(req StartRequest) (string, error) {
	m.record(req)
	if m.StartFunc != nil {
		return m.StartFunc(req)
	}
	return m.defaultStart(req)
}

func (m *MockManager) StartKernelContext(ctx context.Context, req StartRequest) (string, error) {
	m.record(req)
	if m.StartContextFunc != nil {
		return m.StartContextFunc(ctx, req)
	}
	if m.StartFunc != nil {
		return m.StartFunc(req)
	}
	return m.defaultStart(req)
}

func (m *MockManager) defaultStart(req StartRequest) (string, error) {
	if req.KernelID != "" {
		return req.KernelID, nil
	}
	return "generated-id", nil
}

func (m *MockManager) HasKernel(id string) bool {
	_, ok := m.Handles[id]
	return ok
}

func (m *MockManager) Kernel(id string) (Handle, bool) {
	h, ok := m.Handles[id]
	return h, ok
}

func (m *MockManager) record(req StartRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startReqs = append(m.startReqs, req)
}

// StartRequests returns every request the manager was asked to start.
func (m *MockManager) StartRequests() []StartRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StartRequest(nil), m.startReqs...)
}
