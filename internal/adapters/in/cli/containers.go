package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/localcontainers/internal/adapters/in/cli/ui/components"
	"github.com/bnema/localcontainers/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/localcontainers/internal/adapters/out/specfile"
	"github.com/bnema/localcontainers/internal/app"
	"github.com/bnema/localcontainers/internal/domain"
)

func newPullCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull IMAGE",
		Short: "Pull an image into the local engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				if err := k.Runtime().PullImage(ctx, args[0]); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess("Pulled "+args[0]))
			})
		},
	}
}

func newStopCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stop CONTAINER...",
		Short: "Stop one or more containers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return forEachContainer(cmd.OutOrStdout(), args, "Stopped", func(id string) error {
					return k.Runtime().StopContainer(ctx, domain.RunningContainer{ID: id})
				})
			})
		},
	}
}

func newRmCmd(opts *rootOptions) *cobra.Command {
	var stop bool

	cmd := &cobra.Command{
		Use:   "rm CONTAINER...",
		Short: "Remove one or more containers and their anonymous volumes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				return forEachContainer(cmd.OutOrStdout(), args, "Removed", func(id string) error {
					c := domain.RunningContainer{ID: id}
					if stop {
						if err := k.Runtime().StopContainer(ctx, c); err != nil {
							return err
						}
					}
					return k.Runtime().RemoveContainer(ctx, c)
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&stop, "stop", "s", false, "Stop gracefully before removing")

	return cmd
}

// forEachContainer applies fn to every id, reporting each outcome, and
// returns the joined failures.
func forEachContainer(w io.Writer, ids []string, verb string, fn func(id string) error) error {
	var errs []error
	for _, id := range ids {
		if err := fn(id); err != nil {
			errs = append(errs, err)
			if werr := cliWriteLine(w, cliRenderError(err.Error())); werr != nil {
				return werr
			}
			continue
		}
		if err := cliWriteLine(w, cliRenderSuccess(verb+" "+id)); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect CONTAINER",
		Short: "Show state, health and published ports of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				c, err := k.Lookup(ctx, args[0])
				if err != nil {
					return err
				}
				inspection, err := k.Runtime().InspectContainer(ctx, c)
				if err != nil {
					return err
				}
				return writeInspection(cmd.OutOrStdout(), c, inspection)
			})
		},
	}
}

func writeInspection(w io.Writer, c domain.RunningContainer, inspection domain.ContainerInspection) error {
	state := "stopped"
	if inspection.IsRunning {
		state = "running"
	}

	lines := []string{
		cliRenderTitle(styles.IconContainer + " " + c.Name),
		cliRenderMeta("ID:", c.ID),
		cliRenderMeta("Image:", c.Image),
		cliRenderMeta("State:", styles.RenderBadge(state)),
		cliRenderMeta("Health:", styles.RenderBadge(string(inspection.HealthStatus))),
	}
	if len(c.Ports) > 0 {
		lines = append(lines, components.PortTable(portRows(c)))
	} else {
		lines = append(lines, cliRenderMuted("No published ports"))
	}

	for _, line := range lines {
		if err := cliWriteLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newLogsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logs CONTAINER",
		Short: "Print the stdout and stderr of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				logs, err := k.Runtime().ContainerLogs(ctx, domain.RunningContainer{ID: args[0]})
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), logs)
				return err
			})
		},
	}
}

type waitOptions struct {
	strategy string
	message  string
	delay    time.Duration
	timeout  time.Duration
}

func (o *waitOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.strategy, "wait", "port", "Readiness strategy: port, health, log or delay")
	cmd.Flags().StringVar(&o.message, "message", "", "Log line to wait for with --wait log")
	cmd.Flags().DurationVar(&o.delay, "delay", time.Second, "Fixed delay for --wait delay")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "Readiness timeout (defaults to wait.timeout from config)")
}

// options returns configuration options for the wait flags. defaultTimeout
// applies when --timeout is not set.
func (o waitOptions) options(defaultTimeout time.Duration) ([]domain.ConfigOption, error) {
	strategy, err := specfile.ParseWaitStrategy(o.strategy, o.message, o.delay)
	if err != nil {
		return nil, err
	}

	timeout := o.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return []domain.ConfigOption{
		domain.WithWaitStrategy(strategy),
		domain.WithWaitTimeout(timeout),
	}, nil
}

func newWaitCmd(opts *rootOptions) *cobra.Command {
	wait := &waitOptions{}

	cmd := &cobra.Command{
		Use:   "wait CONTAINER",
		Short: "Block until an existing container is ready",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				waitOpts, err := wait.options(k.Config().Wait.Timeout)
				if err != nil {
					return err
				}

				c, err := k.Lookup(ctx, args[0])
				if err != nil {
					return err
				}
				cfg := domain.NewConfiguration(c.Image, waitOpts...)

				if err := cliWriteLine(cmd.OutOrStdout(), cliRenderInfo(fmt.Sprintf("%s Waiting for %s (%s, %s)",
					styles.IconPending, args[0], cfg.EffectiveWaitStrategy().Name(), cfg.EffectiveWaitTimeout()))); err != nil {
					return err
				}

				if err := k.Readiness().WaitUntilReady(ctx, c, cfg, k.Runtime()); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(args[0]+" is ready"))
			})
		},
	}

	wait.register(cmd)

	return cmd
}
