package winget

import (
	"bytes"
	"strings"
	"testing"
)

// TestStatusReinterpretsSign verifies that both the signed and the unsigned
// spelling of an HRESULT map to the same status.
func TestStatusReinterpretsSign(t *testing.T) {
	var unsigned int64 = 2147942405

	if got := Status(-2147024891); got != StatusAccessDenied {
		t.Errorf("Status(-2147024891) = 0x%08X, want 0x%08X", got, StatusAccessDenied)
	}
	if got := Status(int(unsigned)); got != StatusAccessDenied {
		t.Errorf("Status(2147942405) = 0x%08X, want 0x%08X", got, StatusAccessDenied)
	}
	if got := Signed(int(unsigned)); got != -2147024891 {
		t.Errorf("Signed(2147942405) = %d, want -2147024891", got)
	}
	if got := Status(1); got != 1 {
		t.Errorf("Status(1) = %d, want 1", got)
	}
}

// TestErrorTableEntries verifies the table holds the five known codes.
func TestErrorTableEntries(t *testing.T) {
	table := NewErrorTable()
	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
	for _, code := range []uint32{StatusAccessDenied, StatusCancelled, StatusNotFound, StatusInstallInFlight, StatusInvalidArgument} {
		if msg, ok := table.Lookup(code); !ok || msg == "" {
			t.Errorf("Lookup(0x%08X) = %q, %v, want message", code, msg, ok)
		}
	}
	if _, ok := table.Lookup(0x1234); ok {
		t.Error("Lookup(0x1234) found an entry")
	}
}

// TestReportAccessDenied verifies the friendly message for 0x80070005.
func TestReportAccessDenied(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, NewErrorTable(), Request{ID: "9ABC", AutoAccept: true}, Result{ExitCode: -2147024891, Stderr: "raw"})

	out := buf.String()
	for _, want := range []string{"winget exited -2147024891", "0x80070005", "Access denied. Try running as Administrator."} {
		if !strings.Contains(out, want) {
			t.Errorf("Report() output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, "raw") {
		t.Errorf("Report() printed raw stderr for a known code: %q", out)
	}
}

// TestReportUnknownManual verifies that manual attempts never print stderr.
func TestReportUnknownManual(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, NewErrorTable(), Request{ID: "9ABC"}, Result{ExitCode: 7, Stderr: "raw"})

	out := buf.String()
	if !strings.Contains(out, "0x00000007") {
		t.Errorf("Report() output %q missing hex code", out)
	}
	if strings.Contains(out, "raw") {
		t.Errorf("Report() printed stderr for a manual attempt: %q", out)
	}
}

// TestReportSuccess verifies the success line and captured output.
func TestReportSuccess(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, NewErrorTable(), Request{ID: "9ABC", AutoAccept: true}, Result{Stdout: "Found app [9ABC]"})

	out := buf.String()
	if !strings.Contains(out, "Found app [9ABC]") || !strings.Contains(out, "Successfully installed 9ABC.") {
		t.Errorf("Report() output = %q", out)
	}
}
