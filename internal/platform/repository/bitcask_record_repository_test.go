package repository

import (
	"os"
	"testing"

	"BitKV/internal/domain"
	"BitKV/internal/platform/repository/bitcask"

	"github.com/stretchr/testify/assert"
)

func createTempRepository(t *testing.T) *BitcaskRepository {
	tmpDir, err := os.MkdirTemp("", "repotest")
	if err != nil {
		t.Fatalf("error creating temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	engine, err := bitcask.Open(tmpDir, 1024)
	if err != nil {
		t.Fatalf("error opening engine: %v", err)
	}
	t.Cleanup(func() {
		engine.Close()
	})
	return NewBitcaskRepository(engine)
}

func TestBitcaskRepository_SaveAndGet(t *testing.T) {
	repo := createTempRepository(t)

	saved, err := repo.Save(domain.NewRecord("key1", "value1"))
	assert.NoError(t, err)
	assert.Equal(t, "key1", saved.Key())

	got, found, err := repo.Get("key1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value1", got.Value())
	assert.False(t, got.Tombstone())
}

func TestBitcaskRepository_GetNotFound(t *testing.T) {
	repo := createTempRepository(t)

	_, found, err := repo.Get("missing")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBitcaskRepository_Delete(t *testing.T) {
	repo := createTempRepository(t)

	repo.Save(domain.NewRecord("key1", "value1"))

	record, found, err := repo.Delete("key1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, record.Tombstone())

	_, found, err = repo.Get("key1")
	assert.NoError(t, err)
	assert.False(t, found)

	// deleting again is a no-op
	record, found, err = repo.Delete("key1")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, record)
}

func TestBitcaskRepository_KeysAndMerge(t *testing.T) {
	repo := createTempRepository(t)

	repo.Save(domain.NewRecord("b", "2"))
	repo.Save(domain.NewRecord("a", "1"))
	repo.Delete("b")

	keys, err := repo.Keys()
	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)

	report, err := repo.Merge()
	assert.NoError(t, err)
	assert.Equal(t, 1, report.LiveRecords)
	assert.NotEmpty(t, report.Id)
}
