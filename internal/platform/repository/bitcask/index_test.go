package bitcask

import (
	"testing"

	"BitKV/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestIndex_SetAndGet(t *testing.T) {
	idx := NewIndex()

	idx.Set("key1", domain.RecordLocation{SegmentID: 1, Offset: 0})

	location, found := idx.Get("key1")
	assert.True(t, found, "Expected to find key1")
	assert.Equal(t, 1, location.SegmentID)

	// later locations override earlier ones
	idx.Set("key1", domain.RecordLocation{SegmentID: 2, Offset: 64})
	location, _ = idx.Get("key1")
	assert.Equal(t, domain.RecordLocation{SegmentID: 2, Offset: 64}, location)
}

func TestIndex_GetNotFound(t *testing.T) {
	idx := NewIndex()
	_, found := idx.Get("missing")
	if found {
		t.Errorf("Expected to not find missing key")
	}
}

func TestIndex_Remove(t *testing.T) {
	idx := NewIndex()
	idx.Set("k", domain.RecordLocation{SegmentID: 1, Offset: 0})
	idx.Remove("k")

	_, found := idx.Get("k")
	assert.False(t, found)
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_KeysAreSorted(t *testing.T) {
	idx := NewIndex()
	idx.Set("charlie", domain.RecordLocation{SegmentID: 1, Offset: 0})
	idx.Set("alpha", domain.RecordLocation{SegmentID: 1, Offset: 10})
	idx.Set("bravo", domain.RecordLocation{SegmentID: 1, Offset: 20})

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, idx.Keys())
}

func TestIndex_ApplyFoldsTombstones(t *testing.T) {
	idx := NewIndex()

	put := domain.NewRecord("k", "v")
	idx.apply(put, 1, 0)
	_, found := idx.Get("k")
	assert.True(t, found)

	tombstone := domain.NewTombstone("k")
	idx.apply(tombstone, 1, 16)
	_, found = idx.Get("k")
	assert.False(t, found, "tombstone must remove the key")

	// a tombstone for an unknown key is harmless
	idx.apply(domain.NewTombstone("never-seen"), 2, 0)
	assert.Equal(t, 0, idx.Len())
}
