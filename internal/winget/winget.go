// Package winget runs `winget install` against the Microsoft Store source
// and interprets the exit status it returns.
package winget

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

const (
	// DefaultExecutable is looked up on PATH when no explicit path is configured.
	DefaultExecutable = "winget"
	// DefaultSource is the winget source that serves Store products.
	DefaultSource = "msstore"
)

// Request describes a single install attempt.
type Request struct {
	ID         string
	AutoAccept bool
}

// Result is what one install attempt produced. Stdout and Stderr are only
// populated for auto-accept attempts, whose output is captured.
type Result struct {
	LaunchErr error // non-nil when the executable could not be started
	Stdout    string
	Stderr    string
	ExitCode  int
}

// Failed reports whether the attempt ended with a non-zero exit code.
func (r Result) Failed() bool { return r.ExitCode != 0 }

// Installer performs install attempts. All methods block until the child
// process has exited.
type Installer interface {
	Install(ctx context.Context, req Request) Result
}

// Runner implements Installer by executing winget as a child process.
type Runner struct {
	Log    *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer // console; manual attempts inherit it
	Stderr io.Writer

	// OnStart and OnExit bracket the child process. OnLine receives each
	// captured output line of an auto-accept attempt.
	OnStart func(req Request)
	OnExit  func(res Result)
	OnLine  func(line string)

	Executable string
	Source     string
	Table      ErrorTable
}

// NewRunner returns a Runner attached to the process console.
func NewRunner(executable, source string, table ErrorTable, log *slog.Logger) *Runner {
	return &Runner{
		Log:        log,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Executable: executable,
		Source:     source,
		Table:      table,
	}
}

// Args builds the winget argument list for req.
func Args(source string, req Request) []string {
	args := []string{"install", req.ID, "-s", source}
	if req.AutoAccept {
		args = append(args, "--accept-source-agreements", "--accept-package-agreements")
	}
	return args
}

// Available reports whether executable can be resolved to a program.
func Available(executable string) (string, bool) {
	path, err := exec.LookPath(executable)
	return path, err == nil
}

// Install runs one attempt and prints its outcome. A launch failure is
// reported and returned as exit code 1; it is never returned as an error.
func (r *Runner) Install(ctx context.Context, req Request) Result {
	if req.AutoAccept {
		fmt.Fprintf(r.Stdout, "[Auto-accept] Installing %s…\n\n", req.ID)
	} else {
		fmt.Fprintf(r.Stdout, "[Manual] Installing %s…\n\n", req.ID)
	}

	res := r.run(ctx, req)
	if res.LaunchErr != nil {
		fmt.Fprintf(r.Stdout, "Error launching winget: %v\n", res.LaunchErr)
		return res
	}

	Report(r.Stdout, r.Table, req, res)
	return res
}

func (r *Runner) run(ctx context.Context, req Request) Result {
	args := Args(r.source(), req)
	r.logger().Debug("starting winget", "executable", r.executable(), "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.executable(), args...)
	cmd.Stdin = r.Stdin

	var stdout, stderr bytes.Buffer
	var lines *lineWriter
	if req.AutoAccept {
		lines = &lineWriter{fn: r.OnLine}
		cmd.Stdout = io.MultiWriter(&stdout, lines)
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	if r.OnStart != nil {
		r.OnStart(req)
	}

	res := Result{}
	err := cmd.Run()
	if lines != nil {
		lines.flush()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res = Result{ExitCode: 1, Stderr: err.Error(), LaunchErr: err}
	}
	if res.LaunchErr == nil {
		res.Stdout = stdout.String()
		res.Stderr = stderr.String()
	}

	if r.OnExit != nil {
		r.OnExit(res)
	}
	r.logger().Debug("winget exited", "id", req.ID, "auto", req.AutoAccept, "code", res.ExitCode)
	return res
}

func (r *Runner) executable() string {
	if r.Executable == "" {
		return DefaultExecutable
	}
	return r.Executable
}

func (r *Runner) source() string {
	if r.Source == "" {
		return DefaultSource
	}
	return r.Source
}

func (r *Runner) logger() *slog.Logger {
	if r.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Log
}

// lineWriter splits captured output into lines. winget redraws progress
// bars with '\r', so both '\r' and '\n' end a line.
type lineWriter struct {
	fn  func(string)
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	if w.fn == nil {
		return len(p), nil
	}
	for _, b := range p {
		if b == '\n' || b == '\r' {
			w.emit()
			continue
		}
		w.buf = append(w.buf, b)
	}
	return len(p), nil
}

func (w *lineWriter) flush() {
	if w.fn != nil {
		w.emit()
	}
}

func (w *lineWriter) emit() {
	line := strings.TrimSpace(string(w.buf))
	w.buf = w.buf[:0]
	if line != "" {
		w.fn(line)
	}
}
