package cli

import (
	"context"
	"maps"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/localcontainers/internal/adapters/out/specfile"
	"github.com/bnema/localcontainers/internal/app"
	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

type runOptions struct {
	ports    []string
	env      []string
	envFiles []string
	volumes  []string
	name     string
	noPull   bool
	wait     waitOptions
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	run := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] IMAGE [COMMAND...]",
		Short: "Start a container and wait until it is ready",
		Long: `Pull IMAGE, start a container from it, and block until the readiness
strategy succeeds. The container keeps running afterwards; remove it with
"localcontainers rm".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				spec, err := run.spec(ctx, k.Env(), k.Config().Wait.Timeout, args[0], args[1:])
				if err != nil {
					return err
				}

				lifecycle := k.WithSkipPull(run.noPull || k.Config().Docker.SkipPull)
				c, err := withSpinner(ctx, cmd.OutOrStdout(), "Starting "+spec.Configuration.Image, func(ctx context.Context) (domain.RunningContainer, error) {
					return lifecycle.Launch(ctx, spec)
				})
				if err != nil {
					return err
				}
				return writeContainer(cmd.OutOrStdout(), c)
			})
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringArrayVarP(&run.ports, "publish", "p", nil, "Publish a container port (e.g. 80, 8080:80, 53/udp)")
	cmd.Flags().StringArrayVarP(&run.env, "env", "e", nil, "Set an environment variable (KEY=VALUE)")
	cmd.Flags().StringArrayVar(&run.envFiles, "env-file", nil, "Read environment variables from a dotenv file")
	cmd.Flags().StringArrayVarP(&run.volumes, "volume", "v", nil, "Bind mount a volume (host:container[:ro])")
	cmd.Flags().StringVar(&run.name, "name", "", "Assign a name to the container")
	cmd.Flags().BoolVar(&run.noPull, "no-pull", false, "Use the local image without pulling")
	run.wait.register(cmd)

	return cmd
}

// spec turns the flags into a container spec. Variables from --env override
// those read from --env-file.
func (o *runOptions) spec(ctx context.Context, envLoader out.EnvLoader, defaultTimeout time.Duration, image string, command []string) (domain.ContainerSpec, error) {
	ports, err := specfile.ParsePorts(o.ports...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return domain.ContainerSpec{}, err
	}
	volumes, err := specfile.ParseVolumes(cwd, o.volumes...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}

	env, err := envLoader.Load(ctx, o.envFiles...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}
	flagEnv, err := domain.ParseEnvAssignments(o.env...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}
	maps.Copy(env, flagEnv)

	waitOpts, err := o.wait.options(defaultTimeout)
	if err != nil {
		return domain.ContainerSpec{}, err
	}

	cfgOpts := append([]domain.ConfigOption{
		domain.WithName(o.name),
		domain.WithPorts(ports...),
		domain.WithEnv(env),
		domain.WithVolumes(volumes...),
		domain.WithCommand(command...),
	}, waitOpts...)

	key := o.name
	if key == "" {
		key = image
	}

	return domain.ContainerSpec{
		Key:           key,
		Configuration: domain.NewConfiguration(image, cfgOpts...),
	}, nil
}
