// Package readline provides a bee.LineReader backed by
// github.com/chzyer/readline, with line editing and command history.
package readline

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/fwojciec/bee"
)

// DefaultPrompt is shown before each command.
const DefaultPrompt = "bee >> "

// Ensure Prompt implements bee.LineReader at compile time.
var _ bee.LineReader = (*Prompt)(nil)

// Prompt reads commands interactively. History is kept in memory for the
// session and, when a history file is configured, appended to that file.
type Prompt struct {
	rl *readline.Instance
}

// Config configures a Prompt.
type Config struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewPrompt creates a Prompt. Zero-valued streams default to the process's
// standard streams.
func NewPrompt(c Config) (*Prompt, error) {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            c.Prompt,
		HistoryFile:       c.HistoryFile,
		HistorySearchFold: true,
		Stdin:             c.Stdin,
		Stdout:            c.Stdout,
		Stderr:            c.Stderr,
	})
	if err != nil {
		return nil, err
	}
	return &Prompt{rl: rl}, nil
}

// ReadLine returns the next command line.
// Returns bee.ErrInterrupt on Ctrl-C and io.EOF on Ctrl-D or end of input.
func (p *Prompt) ReadLine() (string, error) {
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", bee.ErrInterrupt
	}
	return line, err
}

// Close restores the terminal and flushes history.
func (p *Prompt) Close() error {
	return p.rl.Close()
}
