package domain

import "time"

const (
	EntrySaved     = "entry_saved"
	EntryDeleted   = "entry_deleted"
	SegmentsMerged = "segments_merged"
)

// ChangeEvent is one mutation of the store, as seen by feed subscribers.
type ChangeEvent struct {
	Kind      string
	Key       string
	Value     string
	Timestamp int64
}

func ChangeEventFromSave(record Record) ChangeEvent {
	return ChangeEvent{
		Kind:      EntrySaved,
		Key:       record.Key(),
		Value:     record.Value(),
		Timestamp: time.Now().UnixNano(),
	}
}

func ChangeEventFromDelete(key string) ChangeEvent {
	return ChangeEvent{
		Kind:      EntryDeleted,
		Key:       key,
		Timestamp: time.Now().UnixNano(),
	}
}

func ChangeEventFromMerge(report MergeReport) ChangeEvent {
	return ChangeEvent{
		Kind:      SegmentsMerged,
		Key:       report.Id,
		Timestamp: time.Now().UnixNano(),
	}
}

type ChangeBroadcaster interface {
	BroadcastChange(event ChangeEvent) error
}
