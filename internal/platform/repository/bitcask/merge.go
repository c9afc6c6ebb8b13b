package bitcask

import (
	"fmt"
	"log"
	"time"

	"BitKV/internal/domain"

	"github.com/emirpasic/gods/trees/btree"
)

// Merge rewrites every live key/value pair into one fresh segment and
// deletes all pre-merge segment files. Superseded records and tombstoned
// keys are physically dropped; the keydir is rebuilt to point into the new
// segment, which becomes the active one.
//
// Merge holds the write lock for its whole duration, so it never runs
// concurrently with itself or with writes.
func (e *Engine) Merge() (domain.MergeReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domain.MergeReport{}, ErrStoreClosed
	}

	report := domain.NewMergeReport()
	start := time.Now()

	ids, err := segmentIDs(e.dir)
	if err != nil {
		return domain.MergeReport{}, fmt.Errorf("Merge: %w", err)
	}

	// Replay every segment in ascending id order into the transient live
	// set. Later records override earlier ones, tombstones remove the key.
	live := btree.NewWithStringComparator(32)
	replayed := 0
	var bytesBefore int64

	for _, id := range ids {
		seg, err := openSealed(e.dir, id)
		if err != nil {
			return domain.MergeReport{}, fmt.Errorf("Merge: %w", err)
		}
		bytesBefore += seg.Size()

		err = seg.Scan(func(record domain.Record, off int64) error {
			replayed++
			if record.Tombstone() {
				live.Remove(record.Key())
				return nil
			}
			live.Put(record.Key(), record)
			return nil
		})
		if err != nil {
			return domain.MergeReport{}, fmt.Errorf("Merge: failed to replay segment %d: %w", id, err)
		}
	}

	if err := e.active.Close(); err != nil {
		return domain.MergeReport{}, fmt.Errorf("Merge: failed to seal active segment: %w", err)
	}

	merged, err := OpenSegment(e.dir, e.activeID+1)
	if err != nil {
		return domain.MergeReport{}, fmt.Errorf("Merge: failed to open merged segment: %w", err)
	}

	// Write the live set in ascending key order and rebuild the keydir from
	// the returned offsets. The merged segment is fully self-describing.
	e.index.Clear()
	for _, k := range live.Keys() {
		v, _ := live.Get(k)
		record := v.(domain.Record)

		off, err := merged.Append(record)
		if err != nil {
			merged.Close()
			return domain.MergeReport{}, fmt.Errorf("Merge: failed to write merged segment: %w", err)
		}
		e.index.Set(record.Key(), domain.RecordLocation{SegmentID: merged.ID(), Offset: off})
	}

	for _, id := range ids {
		old, err := openSealed(e.dir, id)
		if err != nil {
			return domain.MergeReport{}, fmt.Errorf("Merge: %w", err)
		}
		if err := old.Remove(); err != nil {
			return domain.MergeReport{}, fmt.Errorf("Merge: failed to remove segment %d: %w", id, err)
		}
	}

	e.activeID = merged.ID()
	e.active = merged

	report.SegmentsMerged = len(ids)
	report.LiveRecords = live.Size()
	report.RecordsDropped = replayed - live.Size()
	report.BytesBefore = bytesBefore
	report.BytesAfter = merged.Size()
	report.Duration = time.Since(start)

	log.Printf("Merge %v: %d segment(s) -> segment %d, kept %d record(s), dropped %d, %d -> %d bytes",
		report.Id, report.SegmentsMerged, e.activeID, report.LiveRecords,
		report.RecordsDropped, report.BytesBefore, report.BytesAfter)
	return report, nil
}
