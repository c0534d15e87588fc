// Package cli implements the CLI adapter for localcontainers.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/localcontainers/internal/app"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type rootOptions struct {
	configPath string
}

// NewRootCmd creates the root command for the localcontainers CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "localcontainers",
		Short: "Run throwaway containers as test dependencies",
		Long: `localcontainers starts containers on the local Docker daemon, waits until
they are ready, and tears them down again.

It talks to the Engine API directly over the daemon's Unix socket, so the
docker CLI does not need to be installed.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newPullCmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newStopCmd(opts))
	rootCmd.AddCommand(newRmCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newLogsCmd(opts))
	rootCmd.AddCommand(newWaitCmd(opts))
	rootCmd.AddCommand(newUpCmd(opts))
	rootCmd.AddCommand(newLocalStackCmd(opts))
	rootCmd.AddCommand(newDoctorCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("localcontainers %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// withKernel builds the kernel for one command invocation and closes it after.
func withKernel(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, k *app.Kernel) error) error {
	kernel, err := app.NewKernel(opts.configPath)
	if err != nil {
		return err
	}
	defer kernel.Close()

	return fn(kernel.Context(cmd.Context()), kernel)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}
