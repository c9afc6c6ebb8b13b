package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccessors(t *testing.T) {
	record := NewRecord("key1", "value1")
	assert.Equal(t, "key1", record.Key())
	assert.Equal(t, "value1", record.Value())
	assert.False(t, record.Tombstone())
}

func TestNewTombstone(t *testing.T) {
	tombstone := NewTombstone("key1")
	assert.True(t, tombstone.Tombstone())
	assert.Empty(t, tombstone.Value())
}

func TestRecordDelete(t *testing.T) {
	record := NewRecord("key1", "value1")
	record.Delete()
	assert.True(t, record.Tombstone())
	assert.Empty(t, record.Value(), "deleting clears the value")
}

func TestRecordCopy(t *testing.T) {
	record := NewRecord("key1", "value1")
	copied := record.Copy()
	copied.Delete()

	assert.False(t, record.Tombstone(), "mutating the copy must not touch the original")
	assert.True(t, copied.Tombstone())
}

func TestNewMergeReport(t *testing.T) {
	report := NewMergeReport()
	assert.NotEmpty(t, report.Id)
	assert.NotZero(t, report.Timestamp)

	other := NewMergeReport()
	assert.NotEqual(t, report.Id, other.Id, "every merge run gets its own id")
}

func TestChangeEventConstructors(t *testing.T) {
	saved := ChangeEventFromSave(NewRecord("k", "v"))
	assert.Equal(t, EntrySaved, saved.Kind)
	assert.Equal(t, "v", saved.Value)

	deleted := ChangeEventFromDelete("k")
	assert.Equal(t, EntryDeleted, deleted.Kind)
	assert.Empty(t, deleted.Value)

	merged := ChangeEventFromMerge(NewMergeReport())
	assert.Equal(t, SegmentsMerged, merged.Kind)
}
