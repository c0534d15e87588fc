package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/localcontainers/internal/adapters/in/cli/ui/components"
)

type workDoneMsg struct{}

// spinnerModel animates a spinner until done is closed.
type spinnerModel struct {
	spinner  components.SpinnerModel
	done     <-chan struct{}
	finished bool
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), waitForDone(m.done))
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case workDoneMsg:
		m.finished = true
		return m, tea.Quit
	default:
		updated, cmd := m.spinner.Update(msg)
		if s, ok := updated.(components.SpinnerModel); ok {
			m.spinner = s
		}
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.finished {
		return ""
	}
	return m.spinner.View()
}

func waitForDone(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return workDoneMsg{}
	}
}

// withSpinner runs fn while a spinner shows message on an interactive
// terminal. Anything else (pipes, files, CI logs) gets the message as one
// plain line instead.
func withSpinner[T any](ctx context.Context, w io.Writer, message string, fn func(context.Context) (T, error)) (T, error) {
	f, ok := interactiveTerminal(w)
	if !ok {
		if err := cliWriteLine(w, cliRenderMuted(message)); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}

	var (
		value T
		err   error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		value, err = fn(ctx)
	}()

	model := spinnerModel{
		spinner: components.NewSpinner(components.WithMessage(message)),
		done:    done,
	}
	// a failed spinner leaves fn's result unchanged
	_, _ = tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(f), tea.WithInput(nil)).Run()
	_, _ = fmt.Fprint(f, "\r\033[K")

	<-done
	return value, err
}

// interactiveTerminal reports whether w is a character device on a terminal
// that can redraw a line.
func interactiveTerminal(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return nil, false
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return nil, false
	}
	info, err := f.Stat()
	if err != nil {
		return nil, false
	}
	return f, info.Mode()&os.ModeCharDevice != 0
}
