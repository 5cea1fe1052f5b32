// Package kernels coordinates kernel starts so that every client opening the
// same notebook file converges on one running kernel. The package owns only
// the reuse decision; spawning, supervision, and the live-kernel registry
// belong to the Manager it delegates to.
package kernels

import "context"

// DefaultKernelName is assigned when a start request names no kernel type.
const DefaultKernelName = "python3"

// StartRequest carries the parameters of one kernel-start request. Fields the
// coordinator does not interpret travel through Extra untouched.
type StartRequest struct {
	// KernelID is an explicit identity chosen by the caller. When set, reuse
	// logic is bypassed entirely and the manager must honor it.
	KernelID string

	// KernelName tags the kernel type (e.g. "python3", "ir"). Defaults to
	// DefaultKernelName when empty.
	KernelName string

	// Path locates the notebook file. May be relative or empty; the
	// coordinator rewrites it to canonical absolute form before delegating.
	Path string

	// Env holds per-request environment values. Consulted for session hints
	// when Path is empty, otherwise passed through.
	Env map[string]string

	// Extra is an opaque pass-through to the underlying manager.
	Extra map[string]any
}

// Handle exposes liveness of one running kernel.
type Handle interface {
	// IsAlive reports whether the kernel process is still running and
	// responsive. An error means the probe itself failed, not that the
	// kernel is dead.
	IsAlive() (bool, error)
}

// Manager is the underlying kernel-management backend the coordinator
// delegates to. It owns the live-kernel registry and all process lifecycle.
//
// The coordinator's registry membership check is a point-in-time snapshot;
// two concurrent requests for the same notebook can both observe "not
// present" and both delegate a start under the same identity. Implementations
// must coalesce or reject the second start under an identity that is already
// live or in flight.
type Manager interface {
	// StartKernel starts a kernel and returns its identity, blocking until
	// startup completes. When req.KernelID is set the manager assigns that
	// identity; otherwise it generates one.
	StartKernel(req StartRequest) (string, error)

	// StartKernelContext is the context-aware counterpart of StartKernel.
	StartKernelContext(ctx context.Context, req StartRequest) (string, error)

	// HasKernel reports whether a kernel is registered under id.
	HasKernel(id string) bool

	// Kernel returns the handle registered under id.
	Kernel(id string) (Handle, bool)
}
