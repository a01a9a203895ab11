package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smarthome-http-service/config"
)

func newSQLiteStore(t *testing.T, mode string) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store, err := NewGormStore(db, mode)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newMiniRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, "test:")
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func storeBackends(t *testing.T) map[string]InterfaceStoreService {
	redisStore, _ := newMiniRedisStore(t)
	return map[string]InterfaceStoreService{
		"memory": NewMemoryStore(),
		"gorm":   newSQLiteStore(t, "auto"),
		"redis":  redisStore,
	}
}

func TestStoreBackendsContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, store.Set(ctx, "users", []byte(`[{"id":"1"}]`)))
			require.NoError(t, store.Set(ctx, "awayModeActive", []byte(`true`)))

			got, err := store.Get(ctx, "users")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1"}]`, string(got))

			require.NoError(t, store.Set(ctx, "users", []byte(`[]`)))
			got, err = store.Get(ctx, "users")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(got))

			keys, err := store.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"awayModeActive", "users"}, keys)

			require.NoError(t, store.Delete(ctx, "users"))
			_, err = store.Get(ctx, "users")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestRedisStoreUsesPrefix(t *testing.T) {
	store, mr := newMiniRedisStore(t)
	require.NoError(t, store.Set(context.Background(), KeyAwayModeActive, []byte("false")))

	assert.True(t, mr.Exists("test:awayModeActive"))
}

func TestGormStoreAlterModeKeepsData(t *testing.T) {
	dir := t.TempDir()
	open := func() *gorm.DB {
		db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "store.db")), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		return db
	}

	first, err := NewGormStore(open(), "auto")
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "k", []byte(`1`)))
	require.NoError(t, first.Close())

	second, err := NewGormStore(open(), "alter")
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
}

func TestLoadJSONFallsBackOnCorruptValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyAwayModeOptions, []byte("{not json")))

	var dest map[string]interface{}
	assert.False(t, LoadJSON(ctx, store, KeyAwayModeOptions, &dest))
	assert.False(t, LoadJSON(ctx, store, "missing", &dest))

	require.NoError(t, SaveJSON(ctx, store, KeyAwayModeOptions, map[string]bool{"lockDoors": true}))
	assert.True(t, LoadJSON(ctx, store, KeyAwayModeOptions, &dest))
	assert.Equal(t, true, dest["lockDoors"])
}

func TestNewStoreServiceSelectsBackend(t *testing.T) {
	store, err := NewStoreService(&config.Config{StoreDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = NewStoreService(&config.Config{StoreDriver: "etcd"})
	assert.Error(t, err)
}
