package main

import "github.com/fwojciec/bee"

// LoadCmd loads source files into the store.
type LoadCmd struct {
	Names []string
}

// Run loads each file in order. A file that fails to load is logged and
// skipped; the remaining files are still loaded.
func (c *LoadCmd) Run(deps *Dependencies) error {
	if len(c.Names) == 0 {
		return (&UsageCmd{Usage: "load <file>..."}).Run(deps)
	}

	for _, name := range c.Names {
		v, err := deps.Loader.LoadSource(deps.Ctx, name)
		if err != nil {
			deps.Logger.Error("load failed",
				"source", name,
				"code", bee.ErrorCode(err),
				"err", bee.ErrorMessage(err),
			)
			continue
		}
		deps.Store.Put(name, v)
		deps.Logger.Debug("loaded source", "source", name, "keys", len(deps.Store.Keys(name)))
	}
	return nil
}
