package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/choiseungje/darkpyonix-lite/internal/kernels"
)

// demoCmd walks the reuse decision against the bundled in-memory manager:
// fresh start, duplicate start under a different spelling, dead-kernel
// replacement, and an explicit-identity bypass.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk the reuse decision against an in-memory kernel manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := kernels.NewMemoryManager()
		coord := kernels.NewCoordinator(mgr,
			kernels.WithLogger(logger),
			kernels.WithRootDir(func() string { return cfg.RootDir }),
			kernels.WithNamespaceSource(cfg.NamespaceUUID),
			kernels.WithDefaultKernelName(cfg.KernelName),
		)

		first, err := coord.Start(kernels.StartRequest{Path: "notebooks/a.ipynb"})
		if err != nil {
			return err
		}
		fmt.Printf("start  notebooks/a.ipynb    -> %s (spawned)\n", first)

		second, err := coord.Start(kernels.StartRequest{Path: "./notebooks/a.ipynb"})
		if err != nil {
			return err
		}
		fmt.Printf("start  ./notebooks/a.ipynb  -> %s (reused: %v)\n", second, second == first)

		if k, ok := mgr.Lookup(first); ok {
			k.Kill()
		}
		third, err := coord.Start(kernels.StartRequest{Path: "notebooks/a.ipynb"})
		if err != nil {
			return err
		}
		fmt.Printf("kill + start same path      -> %s (same identity: %v)\n", third, third == first)

		explicit, err := coord.Start(kernels.StartRequest{
			KernelID: "operator-pinned",
			Path:     "notebooks/a.ipynb",
		})
		if err != nil {
			return err
		}
		fmt.Printf("start --kernel-id pinned    -> %s (bypassed reuse)\n", explicit)

		fmt.Printf("kernels spawned: %d, registered: %d\n", mgr.Started(), mgr.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
