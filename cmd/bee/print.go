package main

// PrintAllCmd prints every record.
type PrintAllCmd struct{}

// Run executes the print all command.
func (c *PrintAllCmd) Run(deps *Dependencies) error {
	return deps.Renderer.RenderAll()
}

// PrintKeysCmd prints the key index of every record.
type PrintKeysCmd struct{}

// Run executes the print keys command.
func (c *PrintKeysCmd) Run(deps *Dependencies) error {
	return deps.Renderer.RenderKeys()
}

// PrintKeyCmd prints one key from every record, to the screen or appended
// to Output.
type PrintKeyCmd struct {
	Key    string
	Output string
}

// Run executes the print <key> command.
func (c *PrintKeyCmd) Run(deps *Dependencies) error {
	if c.Output != "" {
		return deps.Renderer.RenderKeyToFile(c.Key, c.Output)
	}
	return deps.Renderer.RenderKey(c.Key)
}
