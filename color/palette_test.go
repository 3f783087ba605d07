package color_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bee/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPalette(t *testing.T) {
	t.Parallel()

	p := color.NewPalette()

	header := p.Header("Data from data.json:")
	key := p.Key("name")

	assert.Contains(t, header, "Data from data.json:")
	assert.Contains(t, header, "\x1b[")
	assert.Contains(t, key, "name")
	assert.Contains(t, key, "\x1b[36m")
}

func TestPaletteFor(t *testing.T) {
	t.Parallel()

	t.Run("plain when output is a regular file", func(t *testing.T) {
		t.Parallel()

		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer f.Close()

		p := color.PaletteFor(f, false)

		assert.Equal(t, "name", p.Key("name"))
		assert.Equal(t, "Keys from x:", p.Header("Keys from x:"))
	})

	t.Run("plain when disabled", func(t *testing.T) {
		t.Parallel()

		p := color.PaletteFor(os.Stdout, true)

		assert.Equal(t, "name", p.Key("name"))
	})

	t.Run("plain when output is nil", func(t *testing.T) {
		t.Parallel()

		p := color.PaletteFor(nil, false)

		assert.Equal(t, "name", p.Key("name"))
	})
}
