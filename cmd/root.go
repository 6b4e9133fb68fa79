// Package cmd implements the msstore-get CLI.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"msstore-get %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "msstore-get [store-url-or-id]",
	Short: "Install Microsoft Store apps with winget",
	Long: `msstore-get installs Microsoft Store apps through winget's msstore source.
Pass a Store URL or product ID, or run without arguments to be prompted.

Agreements are auto-accepted by default; if that fails the install is
retried once in manual mode so you can confirm in winget.

Examples:
  msstore-get                                          interactive
  msstore-get 9NBLGGH4NNS1                             install by ID
  msstore-get https://apps.microsoft.com/detail/9NBLGGH4NNS1
  msstore-get 9NBLGGH4NNS1 --auto --once               single shot, for scripts`,
	RunE:          runInstall,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
}

// ExitError carries a process exit code out of a command. Err, when set, is
// printed before exiting.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
