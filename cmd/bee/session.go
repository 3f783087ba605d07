package main

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/bee"
)

// ErrExit is returned by ExitCmd to end the session.
var ErrExit = errors.New("exit")

// Command is a parsed session command.
type Command interface {
	Run(deps *Dependencies) error
}

// RunSession reads commands from input and runs them one at a time until
// exit or end of input. Command failures are logged and never end the session.
func RunSession(deps *Dependencies, input bee.LineReader) error {
	for {
		line, err := input.ReadLine()
		if errors.Is(err, bee.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		cmd := ParseCommand(line)
		if cmd == nil {
			continue
		}
		if err := cmd.Run(deps); errors.Is(err, ErrExit) {
			return nil
		} else if err != nil {
			deps.Logger.Error("command failed", "command", strings.TrimSpace(line), "err", bee.ErrorMessage(err))
		}
	}
}

// ParseCommand maps a line of input to a command. Keywords are
// case-sensitive. Returns nil for a blank line.
func ParseCommand(line string) Command {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}

	switch text {
	case "exit":
		return &ExitCmd{}
	case "help":
		return &HelpCmd{}
	case "print_keys":
		return &PrintKeysCmd{}
	}

	word, rest, _ := strings.Cut(text, " ")
	switch word {
	case "load":
		return &LoadCmd{Names: strings.Fields(rest)}
	case "download":
		return &DownloadCmd{Query: strings.TrimSpace(rest)}
	case "print":
		return parsePrint(strings.Fields(rest))
	}
	return &UnknownCmd{Text: text}
}

func parsePrint(args []string) Command {
	switch {
	case len(args) == 1 && args[0] == "all":
		return &PrintAllCmd{}
	case len(args) == 1 && args[0] == "keys":
		return &PrintKeysCmd{}
	case len(args) == 1:
		return &PrintKeyCmd{Key: args[0]}
	case len(args) == 3 && args[1] == "-o":
		return &PrintKeyCmd{Key: args[0], Output: args[2]}
	}
	return &UsageCmd{Usage: "print all | print keys | print <key> [-o <file>]"}
}

// ExitCmd ends the session.
type ExitCmd struct{}

// Run returns ErrExit.
func (c *ExitCmd) Run(deps *Dependencies) error {
	return ErrExit
}

// UnknownCmd echoes unrecognized input.
type UnknownCmd struct {
	Text string
}

// Run prints the unknown command.
func (c *UnknownCmd) Run(deps *Dependencies) error {
	_, err := io.WriteString(deps.Stdout, "Unknown command: "+c.Text+"\n")
	return err
}

// UsageCmd reports a malformed command.
type UsageCmd struct {
	Usage string
}

// Run prints the usage line to stderr.
func (c *UsageCmd) Run(deps *Dependencies) error {
	_, err := io.WriteString(deps.Stderr, "usage: "+c.Usage+"\n")
	return err
}
