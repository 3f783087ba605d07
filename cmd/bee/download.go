package main

import "github.com/fwojciec/bee"

// DownloadCmd stores a search API result under its query text.
type DownloadCmd struct {
	Query string
}

// Run searches for the query and stores the result. Without a configured
// API key nothing is stored.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	if c.Query == "" {
		return (&UsageCmd{Usage: "download <query>"}).Run(deps)
	}
	if deps.Searcher == nil {
		deps.Logger.Error("no search API key set", "query", c.Query)
		return nil
	}

	m, err := deps.Searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		deps.Logger.Error("download failed",
			"source", c.Query,
			"code", bee.ErrorCode(err),
			"err", bee.ErrorMessage(err),
		)
		return nil
	}

	deps.Store.Put(c.Query, m)
	deps.Logger.Debug("downloaded query", "source", c.Query, "keys", m.Len())
	return nil
}
