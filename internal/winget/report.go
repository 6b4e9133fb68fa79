package winget

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Report prints the outcome of an attempt. Captured output is only shown for
// auto-accept attempts; manual attempts already wrote to the console.
func Report(w io.Writer, table ErrorTable, req Request, res Result) {
	if req.AutoAccept && strings.TrimSpace(res.Stdout) != "" {
		fmt.Fprintln(w, res.Stdout)
	}

	if !res.Failed() {
		fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("Successfully installed %s.", req.ID)))
		return
	}

	fmt.Fprintf(w, "winget exited %d %s\n", Signed(res.ExitCode), dimStyle.Render(fmt.Sprintf("(0x%08X)", Status(res.ExitCode))))

	if msg, ok := table.Lookup(Status(res.ExitCode)); ok {
		fmt.Fprintf(w, "%s %s\n", errStyle.Render("Error:"), msg)
	} else if req.AutoAccept && strings.TrimSpace(res.Stderr) != "" {
		fmt.Fprintln(w, res.Stderr)
	}
}
