package kernels

import (
	"context"

	"go.uber.org/zap"

	"github.com/choiseungje/darkpyonix-lite/internal/identity"
	"github.com/choiseungje/darkpyonix-lite/internal/notebook"
)

// Coordinator intercepts kernel-start requests and returns an existing
// kernel's identity when one already serves the same notebook file. It keeps
// no kernel state of its own; the registry is read through the Manager and
// written only by delegating starts to it.
type Coordinator struct {
	manager    Manager
	log        *zap.Logger
	rootDir    func() string
	namespace  identity.NamespaceSource
	kernelName string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger installs the host's logger. Decision logging goes through a
// "darkpyonix"-named child of it. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

// WithRootDir installs the provider for the server root directory that
// relative notebook paths resolve against. The provider is consulted on every
// request. Defaults to the process working directory.
func WithRootDir(provider func() string) Option {
	return func(c *Coordinator) {
		c.rootDir = provider
	}
}

// WithNamespaceSource installs the identity-namespace source, consulted on
// every request so namespace changes take effect immediately. Defaults to
// identity.EnvNamespace.
func WithNamespaceSource(src identity.NamespaceSource) Option {
	return func(c *Coordinator) {
		c.namespace = src
	}
}

// WithDefaultKernelName overrides the kernel type assigned to requests that
// name none. Defaults to DefaultKernelName.
func WithDefaultKernelName(name string) Option {
	return func(c *Coordinator) {
		c.kernelName = name
	}
}

// NewCoordinator wraps a Manager with path-based kernel reuse.
func NewCoordinator(m Manager, opts ...Option) *Coordinator {
	c := &Coordinator{
		manager:    m,
		log:        zap.NewNop(),
		rootDir:    func() string { return "" },
		namespace:  identity.EnvNamespace,
		kernelName: DefaultKernelName,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("darkpyonix")
	return c
}

// decision is the outcome of the reuse algorithm for one request. The
// blocking and context-aware entry points differ only in how they act on it.
type decision struct {
	// reuse reports that id names a live kernel and nothing must start.
	reuse bool

	// id is the identity returned to the caller when reuse is set.
	id string

	// req is the outgoing request: canonical path written back into Path,
	// the identity to assign (possibly empty) in KernelID.
	req StartRequest
}

// decide runs the full reuse algorithm: path extraction and normalization,
// identity resolution, registry membership, liveness. It never blocks and
// never errors; probe failures are absorbed by the fail-safe reuse policy.
func (c *Coordinator) decide(req StartRequest) decision {
	if req.KernelName == "" {
		req.KernelName = c.kernelName
	}

	raw := notebook.PathFromRequest(req.Path, req.Env)
	abs := notebook.Normalize(c.rootDir(), raw)
	c.log.Debug("start request",
		zap.String("raw_path", raw),
		zap.String("abs_path", abs),
		zap.String("kernel_name", req.KernelName),
		zap.String("kernel_id", req.KernelID))

	if abs != "" {
		// Downstream session records should hold the canonical form.
		req.Path = abs
	}

	if req.KernelID != "" {
		c.log.Info("explicit kernel id, reuse bypassed",
			zap.String("kernel_id", req.KernelID))
		return decision{req: req}
	}
	if abs == "" {
		c.log.Info("no notebook path, starting without reuse",
			zap.String("kernel_name", req.KernelName))
		return decision{req: req}
	}

	proposed := identity.Resolve(abs, req.KernelName, c.namespace()).String()
	if c.manager.HasKernel(proposed) {
		if handle, ok := c.manager.Kernel(proposed); ok {
			alive, err := handle.IsAlive()
			if err != nil {
				// Fail safe toward reuse: a transient probe error must not
				// spawn a duplicate kernel.
				c.log.Warn("liveness probe failed, treating kernel as alive",
					zap.String("kernel_id", proposed),
					zap.Error(err))
				alive = true
			}
			if alive {
				c.log.Info("reusing shared kernel",
					zap.String("kernel_id", proposed),
					zap.String("abs_path", abs))
				return decision{reuse: true, id: proposed, req: req}
			}
			c.log.Info("registered kernel is dead, replacing under same identity",
				zap.String("kernel_id", proposed))
		}
	}

	req.KernelID = proposed
	c.log.Info("starting kernel",
		zap.String("kernel_id", proposed),
		zap.String("kernel_name", req.KernelName),
		zap.String("abs_path", abs))
	return decision{req: req}
}

// Start runs the reuse decision and blocks until any delegated start
// completes. It returns the reused kernel's identity, or whatever identity
// the manager reports for the newly started one. Errors from the delegated
// start propagate unchanged; the coordinator introduces no error kinds of its
// own.
func (c *Coordinator) Start(req StartRequest) (string, error) {
	d := c.decide(req)
	if d.reuse {
		return d.id, nil
	}
	return c.manager.StartKernel(d.req)
}

// StartContext applies the same decision logic as Start and delegates to the
// manager's context-aware start. Only the delegated start observes ctx; path
// normalization and identity resolution never block.
func (c *Coordinator) StartContext(ctx context.Context, req StartRequest) (string, error) {
	d := c.decide(req)
	if d.reuse {
		return d.id, nil
	}
	return c.manager.StartKernelContext(ctx, d.req)
}
