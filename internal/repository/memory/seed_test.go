package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOfferings(t *testing.T) {
	t.Run("empty path uses the embedded seed", func(t *testing.T) {
		got, err := LoadOfferings("")
		require.NoError(t, err)
		assert.Len(t, got, 8)
	})

	t.Run("reads a seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		data := `[{"id": 42, "name": "Test Trek", "location": "Nowhere", "category": "Test", "price": 100, "rating": 4.0}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		got, err := LoadOfferings(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(42), got[0].ID)
		assert.Equal(t, "Test Trek", got[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOfferings(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadOfferings(path)
		assert.Error(t, err)
	})
}
