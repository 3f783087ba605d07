package main

import "io"

const helpText = `Available commands:
  load <file>...          Load one or more JSON, CSV or XML files.
  download <query>        Download search results from Shodan.
  print all               Print all data.
  print <key>             Print the value of a key from every source.
  print <key> -o <file>   Append the value of a key to a file.
  print keys              Print the top-level keys of every source.
  help                    Print this help message.
  exit                    Exit the program.
`

// HelpCmd prints the command reference.
type HelpCmd struct{}

// Run executes the help command.
func (c *HelpCmd) Run(deps *Dependencies) error {
	_, err := io.WriteString(deps.Stdout, helpText)
	return err
}
