package bitcask

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"BitKV/internal/domain"
)

// segmentFilePattern matches the on-disk segment naming convention,
// segment-000001.db; zero padding keeps lexical and numeric order equal.
var segmentFilePattern = regexp.MustCompile(`^segment-(\d{6})\.db$`)

// Engine is a Bitcask-style storage engine: values are appended to the
// active segment, the keydir maps every live key to its latest record and
// superseded data is reclaimed by Merge.
//
// Concurrency follows a single-writer discipline: Get runs under a read
// lock (it only touches sealed bytes and the index), while Put, Delete,
// Merge and Close serialize on the write lock.
type Engine struct {
	mu sync.RWMutex

	dir       string
	sizeLimit int64

	activeID int
	active   *Segment
	index    *Index

	closed bool
}

// Open creates the directory if missing, opens a fresh active segment with
// id max(existing)+1 and rebuilds the keydir by replaying every existing
// segment in ascending id order.
func Open(dir string, segmentSizeLimit int64) (*Engine, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("Open: failed to create data directory: %w", err)
	}

	ids, err := segmentIDs(dir)
	if err != nil {
		return nil, fmt.Errorf("Open: failed to list segments: %w", err)
	}

	nextID := 1
	if len(ids) > 0 {
		nextID = ids[len(ids)-1] + 1
	}

	active, err := OpenSegment(dir, nextID)
	if err != nil {
		return nil, fmt.Errorf("Open: failed to open active segment: %w", err)
	}

	e := &Engine{
		dir:       dir,
		sizeLimit: segmentSizeLimit,
		activeID:  nextID,
		active:    active,
		index:     NewIndex(),
	}

	for _, id := range ids {
		if err := e.replaySegment(id); err != nil {
			active.Close()
			return nil, fmt.Errorf("Open: failed to rebuild index from segment %d: %w", id, err)
		}
	}

	log.Printf("Opened store at %v: %d segment(s), %d live key(s), active id %d",
		dir, len(ids)+1, e.index.Len(), nextID)
	return e, nil
}

func (e *Engine) replaySegment(id int) error {
	seg, err := openSealed(e.dir, id)
	if err != nil {
		return err
	}
	return seg.Scan(func(record domain.Record, off int64) error {
		e.index.apply(record, id, off)
		return nil
	})
}

// Put appends a record for key to the active segment and points the keydir
// at it. The rotation threshold is checked before the write, so one record
// may push a segment slightly over the limit.
func (e *Engine) Put(key, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrStoreClosed
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}

	if e.active.Size() > e.sizeLimit {
		if err := e.rotate(); err != nil {
			return fmt.Errorf("Put: %w", err)
		}
	}

	off, err := e.active.Append(domain.NewRecord(key, value))
	if err != nil {
		return fmt.Errorf("Put: %w", err)
	}
	e.index.Set(key, domain.RecordLocation{SegmentID: e.activeID, Offset: off})
	return nil
}

// Get returns the latest value for key, or found=false if the key was never
// written or its last record is a tombstone. The addressed segment is read
// through a fresh scoped handle, independent of the append handle.
func (e *Engine) Get(key string) (string, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return "", false, ErrStoreClosed
	}

	location, found := e.index.Get(key)
	if !found {
		return "", false, nil
	}

	seg := e.active
	if location.SegmentID != e.activeID {
		sealed, err := openSealed(e.dir, location.SegmentID)
		if err != nil {
			return "", false, fmt.Errorf("Get: %w", err)
		}
		seg = sealed
	}

	record, err := seg.ReadAt(location.Offset)
	if err != nil {
		return "", false, fmt.Errorf("Get: %w", err)
	}
	// The keydir never points at a tombstone (deletes remove the key), so
	// decoding one here means index and segments have diverged.
	if record.Tombstone() || record.Key() != key {
		return "", false, fmt.Errorf("Get: key %v at segment %d offset %d: %w",
			key, location.SegmentID, location.Offset, ErrIndexCorrupted)
	}
	return record.Value(), true, nil
}

// Delete appends a tombstone for key to the active segment and drops the key
// from the keydir. Deleting an absent key is a no-op, not an error.
func (e *Engine) Delete(key string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, ErrStoreClosed
	}

	if _, found := e.index.Get(key); !found {
		return false, nil
	}

	if _, err := e.active.Append(domain.NewTombstone(key)); err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	e.index.Remove(key)
	return true, nil
}

// Keys returns every live key in ascending order.
func (e *Engine) Keys() ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return nil, ErrStoreClosed
	}
	return e.index.Keys(), nil
}

// rotate seals the active segment and opens the next id as the new active.
func (e *Engine) rotate() error {
	if err := e.active.Close(); err != nil {
		return err
	}
	next, err := OpenSegment(e.dir, e.activeID+1)
	if err != nil {
		return err
	}
	e.activeID++
	e.active = next
	return nil
}

// Close seals the active segment. The keydir is discardable state and is
// rebuilt on the next Open. Safe to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	return e.active.Close()
}

// Stats is a point-in-time snapshot of the engine, for the admin surface.
type Stats struct {
	Directory         string
	ActiveSegmentID   int
	ActiveSegmentSize int64
	SegmentSizeLimit  int64
	SegmentsOnDisk    int
	LiveKeys          int
}

func (e *Engine) Stats() (Stats, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return Stats{}, ErrStoreClosed
	}

	ids, err := segmentIDs(e.dir)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Directory:         e.dir,
		ActiveSegmentID:   e.activeID,
		ActiveSegmentSize: e.active.Size(),
		SegmentSizeLimit:  e.sizeLimit,
		SegmentsOnDisk:    len(ids),
		LiveKeys:          e.index.Len(),
	}, nil
}

// segmentIDs lists the ids of every segment file in dir, ascending.
func segmentIDs(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var ids []int
	for _, entry := range entries {
		m := segmentFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
