package bitcask

import (
	"BitKV/internal/domain"

	"github.com/emirpasic/gods/trees/btree"
)

// Index is the in-memory keydir: key -> location of the latest live record.
// It is purely derived state, rebuilt on Open by replaying every segment in
// ascending id order. Not safe for concurrent use on its own; the engine's
// lock covers it.
type Index struct {
	tree *btree.Tree
}

func NewIndex() *Index {
	return &Index{
		tree: btree.NewWithStringComparator(32),
	}
}

func (i *Index) Set(key string, location domain.RecordLocation) {
	i.tree.Put(key, location)
}

func (i *Index) Get(key string) (domain.RecordLocation, bool) {
	v, found := i.tree.Get(key)
	if !found {
		return domain.RecordLocation{}, false
	}
	return v.(domain.RecordLocation), true
}

func (i *Index) Remove(key string) {
	i.tree.Remove(key)
}

func (i *Index) Len() int {
	return i.tree.Size()
}

// Keys returns every indexed key in ascending order.
func (i *Index) Keys() []string {
	keys := make([]string, 0, i.tree.Size())
	for _, k := range i.tree.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

func (i *Index) Clear() {
	i.tree.Clear()
}

// apply folds one replayed record into the keydir: a live record overrides
// any earlier location for its key, a tombstone removes the key.
func (i *Index) apply(record domain.Record, segmentID int, off int64) {
	if record.Tombstone() {
		i.tree.Remove(record.Key())
		return
	}
	i.tree.Put(record.Key(), domain.RecordLocation{SegmentID: segmentID, Offset: off})
}
