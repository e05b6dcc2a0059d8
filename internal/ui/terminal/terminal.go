// Package terminal implements line-oriented prompts and colored status output.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// Terminal reads answers line by line and prints colored status messages.
type Terminal struct {
	input  io.Reader
	reader *bufio.Reader
	output io.Writer

	prompt  *color.Color
	success *color.Color
	warning *color.Color
	info    *color.Color
	failure *color.Color
	header  *color.Color

	mu sync.Mutex
}

type Option func(*Terminal)

func WithInput(r io.Reader) Option {
	return func(t *Terminal) { t.input = r }
}

func WithOutput(w io.Writer) Option {
	return func(t *Terminal) { t.output = w }
}

// WithNoColor disables colors on this terminal only.
func WithNoColor(noColor bool) Option {
	return func(t *Terminal) {
		if !noColor {
			return
		}
		for _, c := range t.colors() {
			c.DisableColor()
		}
	}
}

func New(opts ...Option) *Terminal {
	t := &Terminal{
		input:   os.Stdin,
		output:  os.Stdout,
		prompt:  color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgBlue),
		failure: color.New(color.FgRed, color.Bold),
		header:  color.New(color.Bold, color.Underline),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reader = bufio.NewReader(t.input)
	return t
}

func (t *Terminal) colors() []*color.Color {
	return []*color.Color{t.prompt, t.success, t.warning, t.info, t.failure, t.header}
}

var _ ports.AnswerSource = (*Terminal)(nil)

// ReadAnswer shows the question prompt and returns the raw line typed.
func (t *Terminal) ReadAnswer(q domain.Question) (string, error) {
	return t.ReadLine(q.Prompt)
}

// ReadLine prints prompt and reads one line without its line terminator.
// A final line without newline is returned as-is; EOF before any input is an error.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.output, "%s ", t.prompt.Sprint(strings.TrimSpace(prompt)+":"))

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question. Only "y" or "yes" count as yes.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	answer, err := t.ReadLine(prompt + " (y/n)")
	if err != nil {
		return false, err
	}
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes", nil
}

func (t *Terminal) Success(format string, args ...any) {
	t.line(t.success, "✔", format, args...)
}

func (t *Terminal) Warning(format string, args ...any) {
	t.line(t.warning, "!", format, args...)
}

func (t *Terminal) Info(format string, args ...any) {
	t.line(t.info, "•", format, args...)
}

func (t *Terminal) Error(format string, args ...any) {
	t.line(t.failure, "✖", format, args...)
}

// Header prints a bold underlined title line.
func (t *Terminal) Header(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.output, t.header.Sprint(title))
}

// Println writes plain text.
func (t *Terminal) Println(a ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.output, a...)
}

// Writer exposes the output for table printers.
func (t *Terminal) Writer() io.Writer { return t.output }

func (t *Terminal) line(c *color.Color, icon, format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.output, "%s %s\n", c.Sprint(icon), c.Sprintf(format, args...))
}
