package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/localcontainers/internal/adapters/in/cli/ui/components"
	"github.com/bnema/localcontainers/internal/app"
	"github.com/bnema/localcontainers/internal/usecase/lifecycle"
)

// shutdownTimeout bounds teardown after an interrupt.
const shutdownTimeout = 2 * time.Minute

func newUpCmd(opts *rootOptions) *cobra.Command {
	var detach bool

	cmd := &cobra.Command{
		Use:   "up FILE",
		Short: "Start every container of a spec file",
		Long: `Start every container declared in a YAML spec file, in order, and wait
for each to be ready. Containers are stopped and removed on Ctrl-C unless
--detach is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKernel(cmd, opts, func(ctx context.Context, k *app.Kernel) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				return runUp(ctx, k, args[0], detach, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().BoolVarP(&detach, "detach", "d", false, "Leave containers running and exit")

	return cmd
}

func runUp(ctx context.Context, k *app.Kernel, path string, detach bool, w io.Writer) error {
	specs, err := k.Specs().Load(ctx, path)
	if err != nil {
		return err
	}

	shared := k.Shared()
	message := fmt.Sprintf("Starting %d container(s) from %s", len(specs), path)
	tc, err := withSpinner(ctx, w, message, func(ctx context.Context) (*lifecycle.TestContext, error) {
		return shared.Context(ctx, specs...)
	})
	if err != nil {
		return errors.Join(err, shutdown(ctx, shared))
	}

	rows := make([][]string, 0, len(specs))
	for _, spec := range specs {
		c, err := tc.Container(spec.Key)
		if err != nil {
			return err
		}
		rows = append(rows, []string{spec.Key, c.ShortID(), c.Image, portSummary(c)})
	}

	if err := cliWriteLine(w, cliRenderTitle("Containers")); err != nil {
		return err
	}
	if err := cliWriteLine(w, components.ContainerTable(rows)); err != nil {
		return err
	}

	if detach {
		return cliWriteLine(w, cliRenderInfo("Containers left running; remove them with localcontainers rm"))
	}

	if err := cliWriteLine(w, cliRenderMuted("Press Ctrl-C to stop and remove them")); err != nil {
		return err
	}
	<-ctx.Done()

	if err := cliWriteLine(w, cliRenderWarning("Shutting down")); err != nil {
		return err
	}
	if err := shutdown(ctx, shared); err != nil {
		return err
	}
	return cliWriteLine(w, cliRenderSuccess("All containers removed"))
}

// shutdown removes every shared container, including launches still in
// flight, on a context detached from the interrupted one.
func shutdown(ctx context.Context, shared *lifecycle.SharedManager) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return shared.ShutdownAll(ctx)
}
