package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/localcontainers/internal/app"
	"github.com/bnema/localcontainers/internal/domain"
	"github.com/bnema/localcontainers/internal/presets/localstack"
)

func newLocalStackCmd(opts *rootOptions) *cobra.Command {
	var (
		preset localstack.Container
		env    []string
	)

	cmd := &cobra.Command{
		Use:   "localstack",
		Short: "Start LocalStack and print its AWS endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars, err := domain.ParseEnvAssignments(env...)
			if err != nil {
				return err
			}
			preset.Environment = vars

			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				spec := preset.Spec("localstack")
				c, err := withSpinner(ctx, cmd.OutOrStdout(), "Starting "+spec.Configuration.Image, func(ctx context.Context) (domain.RunningContainer, error) {
					return k.Lifecycle().Launch(ctx, spec)
				})
				if err != nil {
					return err
				}

				endpoint, err := localstack.NewEndpoint(c, preset.GatewayPort).AWS()
				if err != nil {
					return err
				}

				if err := writeContainer(cmd.OutOrStdout(), c); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), cliRenderMeta("AWS endpoint:", endpoint))
			})
		},
	}

	cmd.Flags().StringVar(&preset.Image, "image", localstack.DefaultImage, "LocalStack image")
	cmd.Flags().StringSliceVar(&preset.Services, "services", nil, "Services to enable (e.g. s3,sqs)")
	cmd.Flags().Uint16Var(&preset.GatewayPort, "port", localstack.DefaultGatewayPort, "Gateway port inside the container")
	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Extra environment variable (KEY=VALUE)")

	return cmd
}
