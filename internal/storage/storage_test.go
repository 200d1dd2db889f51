package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spalhad/kvstore/internal/actorsys"
	"github.com/spalhad/kvstore/internal/key"
)

func TestMemoryStoragePutThenGet(t *testing.T) {
	tm := actorsys.NewTaskManager()
	defer tm.Cancel()

	h := OpenMemory(Options{TaskManager: tm})
	ctx := context.Background()

	k, err := key.Hash("memory-key")
	require.NoError(t, err)
	value := json.RawMessage(`"hello"`)

	isNew, err := Put(ctx, h, k, value)
	require.NoError(t, err)
	assert.True(t, isNew)

	got, found, err := Get(ctx, h, k)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, string(value), string(got))
}

func TestMemoryStorageOverwriteReportsNotNew(t *testing.T) {
	tm := actorsys.NewTaskManager()
	defer tm.Cancel()

	h := OpenMemory(Options{TaskManager: tm})
	ctx := context.Background()
	k, err := key.Hash("overwrite-key")
	require.NoError(t, err)

	isNew, err := Put(ctx, h, k, json.RawMessage(`1`))
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = Put(ctx, h, k, json.RawMessage(`2`))
	require.NoError(t, err)
	assert.False(t, isNew)
}

func TestMemoryStorageGetMissingKey(t *testing.T) {
	tm := actorsys.NewTaskManager()
	defer tm.Cancel()

	h := OpenMemory(Options{TaskManager: tm})
	k, err := key.Hash("missing-key")
	require.NoError(t, err)

	_, found, err := Get(context.Background(), h, k)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDirStoragePutThenGet(t *testing.T) {
	tm := actorsys.NewTaskManager()
	defer tm.Cancel()

	h, err := OpenDir(Options{TaskManager: tm}, t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	k, err := key.Hash("dir-key")
	require.NoError(t, err)
	value := json.RawMessage(`{"n":1}`)

	isNew, err := Put(ctx, h, k, value)
	require.NoError(t, err)
	assert.True(t, isNew)

	got, found, err := Get(ctx, h, k)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, string(value), string(got))
}

func TestDirStorageOverwriteReportsNotNew(t *testing.T) {
	tm := actorsys.NewTaskManager()
	defer tm.Cancel()

	h, err := OpenDir(Options{TaskManager: tm}, t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	k, err := key.Hash("dir-overwrite-key")
	require.NoError(t, err)

	isNew, err := Put(ctx, h, k, json.RawMessage(`1`))
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = Put(ctx, h, k, json.RawMessage(`2`))
	require.NoError(t, err)
	assert.False(t, isNew)

	got, found, err := Get(ctx, h, k)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `2`, string(got))
}
