package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/choiseungje/darkpyonix-lite/internal/identity"
	"github.com/choiseungje/darkpyonix-lite/internal/notebook"
)

// resolveCmd prints the canonical path and deterministic kernel identity a
// start request for the given notebook would resolve to. Useful when
// debugging why two clients did (or did not) land on the same kernel.
var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Print the canonical path and kernel identity for a notebook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs := notebook.Normalize(cfg.RootDir, args[0])
		if abs == "" {
			return fmt.Errorf("path is empty after normalization")
		}

		ns := cfg.NamespaceUUID()
		id := identity.Resolve(abs, cfg.KernelName, ns)

		fmt.Printf("path:      %s\n", abs)
		fmt.Printf("kernel:    %s\n", cfg.KernelName)
		fmt.Printf("namespace: %s\n", ns)
		fmt.Printf("identity:  %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
