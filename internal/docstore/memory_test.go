package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cora/internal/docstore"
	"cora/pkg/testutil"
)

func TestMemoryStore(t *testing.T) {
	t.Run("load of a missing key reports absence without error", func(t *testing.T) {
		var store *docstore.Memory
		testutil.Given(t, "an empty store", func(t *testing.T) { store = docstore.NewMemory() })

		doc, ok, err := store.Load(context.Background(), "cora_assets_registry_v1")

		testutil.Then(t, "the key is absent", func(t *testing.T) {
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, doc)
		})
	})

	t.Run("save then load round-trips the document", func(t *testing.T) {
		var store *docstore.Memory
		testutil.Given(t, "an empty store", func(t *testing.T) { store = docstore.NewMemory() })

		testutil.When(t, "a document is saved", func(t *testing.T) {
			require.NoError(t, store.Save(context.Background(), "k", []byte(`[{"id":"a"}]`)))
		})

		doc, ok, err := store.Load(context.Background(), "k")
		testutil.Then(t, "the same bytes come back", func(t *testing.T) {
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`[{"id":"a"}]`), doc)
		})
	})

	t.Run("loaded documents are copies", func(t *testing.T) {
		store := docstore.NewMemory()
		require.NoError(t, store.Save(context.Background(), "k", []byte(`[1]`)))

		doc, _, err := store.Load(context.Background(), "k")
		require.NoError(t, err)
		doc[0] = 'X'

		again, _, err := store.Load(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1]`), again, "mutating a loaded copy must not corrupt the store")
	})

	t.Run("delete removes the key and tolerates repeats", func(t *testing.T) {
		store := docstore.NewMemory()
		require.NoError(t, store.Save(context.Background(), "k", []byte(`[]`)))

		require.NoError(t, store.Delete(context.Background(), "k"))
		require.NoError(t, store.Delete(context.Background(), "k"))

		_, ok, err := store.Load(context.Background(), "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
