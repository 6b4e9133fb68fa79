// Package session drives the interactive install loop: read a Store URL or
// ID, pick an install mode, run winget (retrying once in manual mode when
// auto-accept fails) and offer to install another product.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kb-labs/msstore-get/internal/config"
	"github.com/kb-labs/msstore-get/internal/prompt"
	"github.com/kb-labs/msstore-get/internal/storeid"
	"github.com/kb-labs/msstore-get/internal/winget"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitNoInput = 1
)

const (
	inputLabel  = "Paste the Microsoft Store URL or just the Store ID:\n→ "
	modeLabel   = "Select install mode:\n  0) Auto-accept agreements\n  1) Manual (you'll confirm in winget)\nChoice [0]: "
	repeatLabel = "Install another? [y/N]: "
)

var (
	targetStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Session wires the collaborators of one program run.
type Session struct {
	Installer winget.Installer
	Prompter  prompt.Prompter
	Out       io.Writer
	Log       *slog.Logger
	// Clear wipes the console between iterations. Optional.
	Clear func()
	Mode  config.Mode
	Once  bool
}

// Run executes the loop and returns the process exit code. args holds the
// positional arguments; args[0], when present, replaces the first input
// prompt and is ignored on later iterations. The returned error is non-nil
// only when reading console input failed.
func (s *Session) Run(ctx context.Context, args []string) (int, error) {
	hasConsumedInitialArg := false

	for {
		var raw string
		if len(args) > 0 && !hasConsumedInitialArg {
			raw = args[0]
		} else {
			answer, err := s.Prompter.Ask(inputLabel)
			if err != nil {
				return ExitNoInput, err
			}
			raw = answer
		}

		id, err := storeid.Resolve(raw)
		switch {
		case errors.Is(err, storeid.ErrEmptyInput):
			fmt.Fprintln(s.Out, errorStyle.Render("No input provided. Exiting."))
			return ExitNoInput, nil
		case err != nil:
			fmt.Fprintln(s.Out, errorStyle.Render("Couldn't parse a valid Store ID. Exiting."))
			return ExitNoInput, nil
		}
		s.logger().Debug("resolved store id", "input", raw, "id", id)

		fmt.Fprintf(s.Out, "\nTarget app ID: %s\n\n", targetStyle.Render(id))

		auto, err := s.chooseMode()
		if err != nil {
			return ExitNoInput, err
		}

		res := s.installWithFallback(ctx, id, auto)

		if s.Once {
			return res.ExitCode, nil
		}

		again, err := s.Prompter.Ask("\n" + repeatLabel)
		if err != nil {
			return ExitOK, err
		}
		if !strings.EqualFold(again, "y") {
			return ExitOK, nil
		}

		if s.Clear != nil {
			s.Clear()
		}
		hasConsumedInitialArg = true
	}
}

// chooseMode returns true for auto-accept. Only the literal answer "1"
// selects manual mode.
func (s *Session) chooseMode() (bool, error) {
	switch s.Mode {
	case config.ModeAuto:
		return true, nil
	case config.ModeManual:
		return false, nil
	}
	answer, err := s.Prompter.Ask(modeLabel)
	if err != nil {
		return false, err
	}
	return ParseMode(answer), nil
}

// ParseMode reports whether answer selects auto-accept mode.
func ParseMode(answer string) bool {
	return strings.TrimSpace(answer) != "1"
}

// installWithFallback runs one attempt and, if an auto-accept attempt fails,
// exactly one manual attempt. Manual results are never retried.
func (s *Session) installWithFallback(ctx context.Context, id string, auto bool) winget.Result {
	res := s.Installer.Install(ctx, winget.Request{ID: id, AutoAccept: auto})
	if !auto || !res.Failed() {
		return res
	}

	s.logger().Info("auto-accept install failed", "id", id, "code", res.ExitCode)
	fmt.Fprintln(s.Out, "\n"+warnStyle.Render("Auto-accept failed, falling back to manual mode…")+"\n")
	return s.Installer.Install(ctx, winget.Request{ID: id, AutoAccept: false})
}

func (s *Session) logger() *slog.Logger {
	if s.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Log
}
