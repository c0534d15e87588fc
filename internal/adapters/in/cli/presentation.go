package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/localcontainers/internal/adapters/in/cli/ui/components"
	"github.com/bnema/localcontainers/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/localcontainers/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + styles.Theme.Muted.Render(value)
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

func cliRenderInfo(msg string) string {
	return styles.RenderInfo(msg)
}

func cliRenderError(msg string) string {
	return styles.RenderError(msg)
}

// portRows lists one table row per resolved port.
func portRows(c domain.RunningContainer) [][]string {
	rows := make([][]string, 0, len(c.Ports))
	for _, p := range c.Ports {
		address, err := c.Address(p.ContainerPort)
		if err != nil {
			continue
		}
		rows = append(rows, []string{strconv.Itoa(int(p.ContainerPort)), address, string(p.Protocol)})
	}
	return rows
}

// portSummary renders ports compactly, e.g. "80->32768, 53/udp->32769".
func portSummary(c domain.RunningContainer) string {
	parts := make([]string, 0, len(c.Ports))
	for _, p := range c.Ports {
		port := strconv.Itoa(int(p.ContainerPort))
		if p.Protocol == domain.ProtocolUDP {
			port += "/udp"
		}
		parts = append(parts, port+"->"+strconv.Itoa(int(p.HostPort)))
	}
	return strings.Join(parts, ", ")
}

// writeContainer prints a started container with its port table.
func writeContainer(w io.Writer, c domain.RunningContainer) error {
	name := c.Name
	if name == "" {
		name = c.ShortID()
	}
	lines := []string{
		cliRenderSuccess(styles.IconContainer + " " + name + " is ready"),
		cliRenderMeta("ID:", c.ID),
		cliRenderMeta("Image:", styles.IconImage+" "+c.Image),
	}
	if len(c.Ports) > 0 {
		lines = append(lines, components.PortTable(portRows(c)))
	}

	for _, line := range lines {
		if err := cliWriteLine(w, line); err != nil {
			return err
		}
	}
	return nil
}
