package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bee"
	"github.com/fwojciec/bee/fs"
	"github.com/fwojciec/bee/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNormalizer returns a normalizer that records its input and
// returns an empty mapping.
func recordingNormalizer(gotSource *string, gotRaw *[]byte) *mock.Normalizer {
	return &mock.Normalizer{
		NormalizeFn: func(source string, raw []byte) (bee.Value, error) {
			*gotSource = source
			*gotRaw = raw
			return bee.NewMapping(), nil
		},
	}
}

func TestLoader_LoadSource(t *testing.T) {
	t.Parallel()

	t.Run("dispatches to normalizer by extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0644))

		var gotSource string
		var gotRaw []byte
		failing := &mock.Normalizer{
			NormalizeFn: func(string, []byte) (bee.Value, error) {
				t.Fatal("wrong normalizer called")
				return nil, nil
			},
		}
		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{
			bee.KindJSON: recordingNormalizer(&gotSource, &gotRaw),
			bee.KindCSV:  failing,
		})

		v, err := loader.LoadSource(context.Background(), path)

		require.NoError(t, err)
		assert.NotNil(t, v)
		assert.Equal(t, path, gotSource)
		assert.Equal(t, `{"a": 1}`, string(gotRaw))
	})

	t.Run("extension match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "DATA.XML")
		require.NoError(t, os.WriteFile(path, []byte(`<a/>`), 0644))

		var gotSource string
		var gotRaw []byte
		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{
			bee.KindXML: recordingNormalizer(&gotSource, &gotRaw),
		})

		_, err := loader.LoadSource(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, gotSource)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		var gotSource string
		var gotRaw []byte
		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{
			bee.KindJSON: recordingNormalizer(&gotSource, &gotRaw),
		})
		path := filepath.Join(t.TempDir(), "missing.json")

		_, err := loader.LoadSource(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, bee.ENOTFOUND, bee.ErrorCode(err))
		assert.Equal(t, path, bee.ErrorSource(err))
	})

	t.Run("returns EPERMISSION for unreadable file", func(t *testing.T) {
		t.Parallel()

		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}

		path := filepath.Join(t.TempDir(), "secret.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0000))

		var gotSource string
		var gotRaw []byte
		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{
			bee.KindJSON: recordingNormalizer(&gotSource, &gotRaw),
		})

		_, err := loader.LoadSource(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, bee.EPERMISSION, bee.ErrorCode(err))
	})

	t.Run("returns EUNSUPPORTED before opening the file", func(t *testing.T) {
		t.Parallel()

		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{})

		_, err := loader.LoadSource(context.Background(), "does-not-exist.yaml")

		require.Error(t, err)
		assert.Equal(t, bee.EUNSUPPORTED, bee.ErrorCode(err))
	})

	t.Run("returns EUNSUPPORTED when kind has no normalizer", func(t *testing.T) {
		t.Parallel()

		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{})

		_, err := loader.LoadSource(context.Background(), "data.csv")

		require.Error(t, err)
		assert.Equal(t, bee.EUNSUPPORTED, bee.ErrorCode(err))
	})

	t.Run("passes normalizer errors through", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`nope`), 0644))

		loader := fs.NewLoader(map[bee.SourceKind]bee.Normalizer{
			bee.KindJSON: &mock.Normalizer{
				NormalizeFn: func(source string, _ []byte) (bee.Value, error) {
					return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid JSON")
				},
			},
		})

		_, err := loader.LoadSource(context.Background(), path)

		assert.Equal(t, bee.EFORMAT, bee.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewLoader(nil).LoadSource(ctx, "data.json")

		require.ErrorIs(t, err, context.Canceled)
	})
}
