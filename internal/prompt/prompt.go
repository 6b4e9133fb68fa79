// Package prompt asks the user single-line questions on the console.
// On a terminal the question is rendered with Bubble Tea; otherwise (pipes,
// redirected stdin, tests) input is read line by line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kb-labs/msstore-get/internal/logger"
)

// ErrInterrupted is returned when the user aborts a question with Ctrl+C or Esc.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks one question and returns the trimmed answer. End of input
// is an empty answer, not an error.
type Prompter interface {
	Ask(label string) (string, error)
}

// New returns a TUI prompter when in is a terminal and a line prompter otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if logger.IsTerminal(in) {
		return &TeaPrompter{In: in, Out: out}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads answers one line at a time.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter returns a LinePrompter reading from r and echoing labels to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// Ask prints label and reads the next line.
func (p *LinePrompter) Ask(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the console tidy when input ends without a newline.
		fmt.Fprintln(p.w)
	}
	return strings.TrimSpace(line), nil
}
