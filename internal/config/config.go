// Package config holds the runtime options of a msstore-get invocation.
// Nothing is read from files or the environment; every value comes from
// command-line flags layered over Default.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kb-labs/msstore-get/internal/winget"
)

// Mode selects how the install mode is chosen.
type Mode int

const (
	// ModeAsk prompts for the mode on every attempt.
	ModeAsk Mode = iota
	// ModeAuto always auto-accepts agreements.
	ModeAuto
	// ModeManual always leaves agreements to winget's own prompts.
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeManual:
		return "manual"
	default:
		return "ask"
	}
}

// ErrConflictingModes is returned when both --auto and --manual are set.
var ErrConflictingModes = errors.New("--auto and --manual are mutually exclusive")

// Config is the resolved set of options for a run.
type Config struct {
	// Executable is the winget binary, either a name looked up on PATH or a path.
	Executable string
	// Source is the winget source passed with -s.
	Source string
	// Mode preselects the install mode.
	Mode Mode
	// Once disables the "Install another?" loop and propagates winget's exit code.
	Once bool
	// Verbose enables debug logging.
	Verbose bool
}

// Default returns the options used when no flags are given.
func Default() *Config {
	return &Config{
		Executable: winget.DefaultExecutable,
		Source:     winget.DefaultSource,
		Mode:       ModeAsk,
	}
}

// ModeFromFlags maps the --auto / --manual pair to a Mode.
func ModeFromFlags(auto, manual bool) (Mode, error) {
	switch {
	case auto && manual:
		return ModeAsk, ErrConflictingModes
	case auto:
		return ModeAuto, nil
	case manual:
		return ModeManual, nil
	}
	return ModeAsk, nil
}

// Validate checks that the options can be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Executable) == "" {
		return fmt.Errorf("winget executable is required")
	}
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("winget source is required")
	}
	if c.Mode < ModeAsk || c.Mode > ModeManual {
		return fmt.Errorf("unknown install mode %d", c.Mode)
	}
	return nil
}
