package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/choiseungje/darkpyonix-lite/internal/config"
	"github.com/choiseungje/darkpyonix-lite/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	rootDir    string
	kernelName string

	// Shared state built in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "darkpyonix",
	Short: "darkpyonix-lite - shared-kernel coordination for notebook servers",
	Long: `darkpyonix-lite makes clients that open the same notebook file converge on
one running compute kernel instead of each spawning their own.

Kernel identities are derived deterministically from the canonical notebook
path and kernel type under a configurable namespace
(DARKPYONIX_NAMESPACE), so any kernel-management backend wrapped by the
coordinator hands the same file back the same kernel.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if rootDir != "" {
			cfg.RootDir = rootDir
		}
		if kernelName != "" {
			cfg.KernelName = kernelName
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.Development)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root-dir", "", "server root for relative notebook paths")
	rootCmd.PersistentFlags().StringVar(&kernelName, "kernel", "", "default kernel name")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
