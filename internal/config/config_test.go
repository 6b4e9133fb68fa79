package config

import (
	"errors"
	"testing"
)

// TestDefault verifies that Default populates the winget defaults.
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Executable != "winget" {
		t.Errorf("Executable = %q, want %q", cfg.Executable, "winget")
	}
	if cfg.Source != "msstore" {
		t.Errorf("Source = %q, want %q", cfg.Source, "msstore")
	}
	if cfg.Mode != ModeAsk {
		t.Errorf("Mode = %v, want %v", cfg.Mode, ModeAsk)
	}
	if cfg.Once {
		t.Error("Once = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

// TestModeFromFlags covers every --auto / --manual combination.
func TestModeFromFlags(t *testing.T) {
	tests := []struct {
		auto, manual bool
		want         Mode
		wantErr      error
	}{
		{false, false, ModeAsk, nil},
		{true, false, ModeAuto, nil},
		{false, true, ModeManual, nil},
		{true, true, ModeAsk, ErrConflictingModes},
	}
	for _, tt := range tests {
		got, err := ModeFromFlags(tt.auto, tt.manual)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ModeFromFlags(%v, %v) error = %v, want %v", tt.auto, tt.manual, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ModeFromFlags(%v, %v) = %v, want %v", tt.auto, tt.manual, got, tt.want)
		}
	}
}

// TestValidateRejectsBlankValues verifies that empty executable or source fail.
func TestValidateRejectsBlankValues(t *testing.T) {
	cfg := Default()
	cfg.Executable = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with blank executable should fail")
	}

	cfg = Default()
	cfg.Source = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with blank source should fail")
	}

	cfg = Default()
	cfg.Mode = Mode(42)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with unknown mode should fail")
	}
}

// TestModeString verifies the names used in log output.
func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{ModeAsk: "ask", ModeAuto: "auto", ModeManual: "manual"} {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}
