package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/localcontainers/internal/adapters/out/docker"
	"github.com/bnema/localcontainers/internal/app"
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the engine is reachable and speaks a compatible API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				out := cmd.OutOrStdout()
				transport := k.Client().Transport()

				if err := cliWriteLine(out, cliRenderMeta("Socket:", transport.SocketPath())); err != nil {
					return err
				}

				version, err := k.Client().Version(ctx)
				if err != nil {
					_ = cliWriteLine(out, cliRenderError("Engine unreachable"))
					return err
				}

				lines := []string{
					cliRenderMeta("Engine:", fmt.Sprintf("%s (%s/%s)", version.Version, version.OS, version.Arch)),
					cliRenderMeta("Engine API:", fmt.Sprintf("%s - %s", version.MinAPIVersion, version.APIVersion)),
					cliRenderMeta("Client API:", transport.APIVersion()),
				}
				for _, line := range lines {
					if err := cliWriteLine(out, line); err != nil {
						return err
					}
				}

				if err := docker.CheckCompatibility(version, transport.APIVersion()); err != nil {
					_ = cliWriteLine(out, cliRenderError("Incompatible engine"))
					return err
				}
				return cliWriteLine(out, cliRenderSuccess("Engine is compatible"))
			})
		},
	}
}
