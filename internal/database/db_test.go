package database

import (
	"context"
	"io"
	"testing"

	"campconnect/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate())
	return store
}

func TestSeedAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	seed, err := catalog.Seed()
	require.NoError(t, err)

	written, err := store.Seed(ctx, seed)
	require.NoError(t, err)
	assert.True(t, written)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(seed, loaded); diff != "" {
		t.Errorf("loaded dataset differs from seed (-want +got):\n%s", diff)
	}
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	seed, err := catalog.Seed()
	require.NoError(t, err)

	_, err = store.Seed(ctx, seed)
	require.NoError(t, err)

	written, err := store.Seed(ctx, seed)
	require.NoError(t, err)
	assert.False(t, written)

	var count int
	require.NoError(t, store.DB().Model(&InventoryRecord{}).Count(&count).Error)
	assert.Equal(t, len(seed.Inventory), count)
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := openTestStore(t)

	ds, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ds.Inventory)
	assert.Empty(t, ds.Vendors)
}

func TestStoreAsCatalogSource(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	seed, err := catalog.Seed()
	require.NoError(t, err)
	_, err = store.Seed(ctx, seed)
	require.NoError(t, err)

	c, err := catalog.New(ctx, store, quietLogger())
	require.NoError(t, err)

	v, err := c.Vendor("3")
	require.NoError(t, err)
	require.NotEmpty(t, v.Products)
	assert.Equal(t, seed.Vendors[2].Products[0].Name, v.Products[0].Name)
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
