package kernels

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryManager is an in-process Manager used by the test suite and the demo
// command. It is also the reference implementation of the idempotency
// contract the Coordinator depends on: a start under an identity that is
// already live returns that identity instead of spawning a second kernel.
// Nothing is persisted.
type MemoryManager struct {
	mu      sync.Mutex
	kernels map[string]*MemoryKernel
	started int
}

// MemoryKernel is a fake running kernel whose liveness the caller controls.
type MemoryKernel struct {
	mu       sync.Mutex
	id       string
	name     string
	path     string
	alive    bool
	probeErr error
}

// IsAlive implements Handle. It returns the configured probe error when one
// was injected via FailProbe.
func (k *MemoryKernel) IsAlive() (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.probeErr != nil {
		return false, k.probeErr
	}
	return k.alive, nil
}

// Kill marks the kernel dead without removing it from the registry,
// mimicking a crashed process whose bookkeeping entry survives.
func (k *MemoryKernel) Kill() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.alive = false
}

// FailProbe makes subsequent IsAlive calls return err instead of a verdict.
func (k *MemoryKernel) FailProbe(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.probeErr = err
}

// ID returns the kernel's assigned identity.
func (k *MemoryKernel) ID() string { return k.id }

// Name returns the kernel type the kernel was started with.
func (k *MemoryKernel) Name() string { return k.name }

// Path returns the notebook path the kernel was started for.
func (k *MemoryKernel) Path() string { return k.path }

// NewMemoryManager returns an empty in-process manager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{kernels: make(map[string]*MemoryKernel)}
}

// StartKernel implements Manager.
func (m *MemoryManager) StartKernel(req StartRequest) (string, error) {
	return m.StartKernelContext(context.Background(), req)
}

// StartKernelContext implements Manager. Starting an identity that is already
// live coalesces onto the existing kernel; a dead entry under the identity is
// replaced in place.
func (m *MemoryManager) StartKernelContext(ctx context.Context, req StartRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := req.KernelID
	if id == "" {
		id = uuid.NewString()
	}
	name := req.KernelName
	if name == "" {
		name = DefaultKernelName
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if k, ok := m.kernels[id]; ok {
		if alive, err := k.IsAlive(); err == nil && alive {
			return id, nil
		}
	}
	m.kernels[id] = &MemoryKernel{id: id, name: name, path: req.Path, alive: true}
	m.started++
	return id, nil
}

// HasKernel implements Manager.
func (m *MemoryManager) HasKernel(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.kernels[id]
	return ok
}

// Kernel implements Manager.
func (m *MemoryManager) Kernel(id string) (Handle, bool) {
	k, ok := m.Lookup(id)
	return k, ok
}

// Lookup returns the concrete kernel under id, for callers that need to
// drive its liveness.
func (m *MemoryManager) Lookup(id string) (*MemoryKernel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.kernels[id]
	return k, ok
}

// Shutdown removes the kernel under id from the registry.
func (m *MemoryManager) Shutdown(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if k, ok := m.kernels[id]; ok {
		k.Kill()
		delete(m.kernels, id)
	}
}

// Len reports how many kernels are registered.
func (m *MemoryManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.kernels)
}

// Started reports how many kernel processes were actually spawned, counting
// replacements but not coalesced starts.
func (m *MemoryManager) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}
