package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bee"
	main "github.com/fwojciec/bee/cmd/bee"
	"github.com/fwojciec/bee/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores result under query text", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps()
		var gotQuery string
		deps.Searcher = &mock.Searcher{
			SearchFn: func(_ context.Context, query string) (*bee.Mapping, error) {
				gotQuery = query
				m := bee.NewMapping()
				m.Set("matches", bee.Sequence{})
				m.Set("total", bee.Number("0"))
				return m, nil
			},
		}

		err := (&main.DownloadCmd{Query: "apache country:DE"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "apache country:DE", gotQuery)
		assert.Equal(t, []string{"matches", "total"}, deps.Store.Keys("apache country:DE"))
	})

	t.Run("logs error and stores nothing without API key", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()

		err := (&main.DownloadCmd{Query: "test"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, deps.Store.Len())
		assert.Contains(t, stderr.String(), "no search API key set")
	})

	t.Run("logs API failure and stores nothing", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		deps.Searcher = &mock.Searcher{
			SearchFn: func(_ context.Context, query string) (*bee.Mapping, error) {
				return nil, bee.SourceErrorf(bee.EAPI, query, "HTTP 401: Invalid API key")
			},
		}

		err := (&main.DownloadCmd{Query: "test"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 0, deps.Store.Len())
		assert.Contains(t, stderr.String(), "download failed")
		assert.Contains(t, stderr.String(), "code=api")
	})

	t.Run("prints usage without query", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()

		err := (&main.DownloadCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "usage: download <query>")
	})
}
