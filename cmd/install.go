package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/kb-labs/msstore-get/internal/config"
	"github.com/kb-labs/msstore-get/internal/logger"
	"github.com/kb-labs/msstore-get/internal/prompt"
	"github.com/kb-labs/msstore-get/internal/session"
	"github.com/kb-labs/msstore-get/internal/winget"
)

var (
	flagWinget  string
	flagSource  string
	flagAuto    bool
	flagManual  bool
	flagOnce    bool
	flagVerbose bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagWinget, "winget", winget.DefaultExecutable, "winget executable name or path")
	f.StringVar(&flagSource, "source", winget.DefaultSource, "winget source to install from")
	f.BoolVar(&flagAuto, "auto", false, "always auto-accept agreements (skip the mode prompt)")
	f.BoolVar(&flagManual, "manual", false, "always confirm agreements in winget (skip the mode prompt)")
	f.BoolVar(&flagOnce, "once", false, "install a single app and exit with winget's exit code")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log debug details to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("auto", "manual")
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	log := logger.New(logger.Options{Verbose: cfg.Verbose})
	if path, ok := winget.Available(cfg.Executable); ok {
		log.Debug("using winget", "path", path, "source", cfg.Source, "mode", cfg.Mode)
	} else {
		log.Warn("winget not found; is App Installer installed?", "executable", cfg.Executable)
	}

	runner := winget.NewRunner(cfg.Executable, cfg.Source, winget.NewErrorTable(), log)

	clearScreen := func() {}
	if logger.IsTerminal(os.Stdout) {
		out := termenv.NewOutput(os.Stdout)
		if restore, err := termenv.EnableVirtualTerminalProcessing(out); err == nil {
			defer restore() //nolint:errcheck
		}
		clearScreen = out.ClearScreen
		attachSpinner(runner)
	}

	sess := &session.Session{
		Installer: runner,
		Prompter:  prompt.New(os.Stdin, os.Stdout),
		Out:       os.Stdout,
		Log:       log,
		Clear:     clearScreen,
		Mode:      cfg.Mode,
		Once:      cfg.Once,
	}

	return exitFor(sess.Run(cmd.Context(), args))
}

// exitFor maps a session outcome to the command's error. An interrupted
// prompt keeps its exit code but prints nothing.
func exitFor(code int, err error) error {
	if errors.Is(err, prompt.ErrInterrupted) {
		err = nil
	}
	if err != nil || code != 0 {
		return &ExitError{Code: code, Err: err}
	}
	return nil
}

func configFromFlags() (*config.Config, error) {
	cfg := config.Default()
	cfg.Executable = flagWinget
	cfg.Source = flagSource
	cfg.Once = flagOnce
	cfg.Verbose = flagVerbose

	mode, err := config.ModeFromFlags(flagAuto, flagManual)
	if err != nil {
		return nil, err
	}
	cfg.Mode = mode

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// attachSpinner shows a spinner while an auto-accept attempt runs. Manual
// attempts own the console, so they get none.
func attachSpinner(r *winget.Runner) {
	var sp *spinner
	r.OnStart = func(req winget.Request) {
		if !req.AutoAccept {
			return
		}
		sp = newSpinner()
		sp.setLabel(fmt.Sprintf("winget install %s", req.ID))
		sp.start()
	}
	r.OnLine = func(line string) {
		if sp != nil {
			sp.setDetail(line)
		}
	}
	r.OnExit = func(res winget.Result) {
		if sp != nil {
			sp.stop(res.Failed())
			sp = nil
		}
	}
}

// ── spinner ───────────────────────────────────────────────────────────────────

// spinner renders a rotating indicator with a label and a detail line
// that updates in-place while winget is running.
type spinner struct {
	mu     sync.Mutex
	label  string
	detail string
	done   chan struct{}
	exited chan struct{}
}

func newSpinner() *spinner {
	return &spinner{done: make(chan struct{}), exited: make(chan struct{})}
}

func (s *spinner) setLabel(l string) {
	s.mu.Lock()
	s.label = l
	s.mu.Unlock()
}

func (s *spinner) setDetail(d string) {
	s.mu.Lock()
	// Truncate long winget lines so they fit on one terminal line.
	if r := []rune(d); len(r) > 72 {
		d = string(r[:69]) + "..."
	}
	s.detail = d
	s.mu.Unlock()
}

// start launches the render loop in a goroutine.
func (s *spinner) start() {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	go func() {
		defer close(s.exited)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.mu.Lock()
				label := s.label
				detail := s.detail
				s.mu.Unlock()

				frame := frames[i%len(frames)]
				i++

				// \r returns to column 0; \033[K clears to end of line.
				fmt.Printf("\r\033[K  %s %s\n\r\033[K    %s", frame, label, dim.Render(detail))
				// Move cursor up one line so next tick overwrites both lines.
				fmt.Print("\033[1A")
			}
		}
	}()
}

// stop halts the spinner and prints a final status line.
func (s *spinner) stop(failed bool) {
	close(s.done)
	<-s.exited

	s.mu.Lock()
	label := s.label
	s.mu.Unlock()

	// Clear both lines used by the spinner.
	fmt.Print("\r\033[K\033[1B\r\033[K\033[1A")

	if failed {
		bad := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		fmt.Printf("  %s %s\n\n", bad.Render("✗"), label)
		return
	}
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fmt.Printf("  %s %s\n\n", ok.Render("✓"), label)
}
