package bitcask

import (
	"fmt"
	"os"
	"path"

	"BitKV/internal/domain"
	"BitKV/internal/platform/utils"
)

// Segment is one append-only log file. The write handle is owned exclusively
// by the engine; reads open a scoped handle per call so no file cursor is
// ever shared between logical operations.
type Segment struct {
	id   int
	path string
	fd   *os.File
	size int64
}

func SegmentFileName(id int) string {
	return fmt.Sprintf("segment-%06d.db", id)
}

// OpenSegment opens (creating if absent) the segment file for id with an
// append-only write handle positioned at end-of-file.
func OpenSegment(dir string, id int) (*Segment, error) {
	name := path.Join(dir, SegmentFileName(id))

	fd, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0755)
	if err != nil {
		return nil, err
	}
	info, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}
	return &Segment{
		id:   id,
		path: name,
		fd:   fd,
		size: info.Size(),
	}, nil
}

// openSealed opens an existing segment for reads only; Append on it fails.
func openSealed(dir string, id int) (*Segment, error) {
	name := path.Join(dir, SegmentFileName(id))
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return &Segment{
		id:   id,
		path: name,
		size: info.Size(),
	}, nil
}

func (s *Segment) ID() int {
	return s.id
}

func (s *Segment) Size() int64 {
	return s.size
}

// Append frames the record at end-of-file, flushes it to stable storage and
// returns the byte offset where its header begins.
func (s *Segment) Append(record domain.Record) (int64, error) {
	if s.fd == nil {
		return 0, fmt.Errorf("append to segment %d: %w", s.id, ErrSegmentSealed)
	}

	off := s.size
	n, err := utils.AppendRecord(s.fd, record)
	if err != nil {
		return 0, err
	}
	if err := s.fd.Sync(); err != nil {
		return 0, err
	}
	s.size += n
	return off, nil
}

// ReadAt decodes the record whose header starts at off, through a read
// handle that is released on every path.
func (s *Segment) ReadAt(off int64) (domain.Record, error) {
	if off >= s.size {
		return domain.Record{}, fmt.Errorf("segment %d, offset %d: %w", s.id, off, ErrOffsetOutOfRange)
	}

	fd, err := os.Open(s.path)
	if err != nil {
		return domain.Record{}, err
	}
	defer fd.Close()

	record, _, err := utils.ReadRecordAt(fd, off)
	return record, err
}

// Scan replays the segment from offset 0, calling fn for every record with
// the offset its header starts at. End-of-file must land exactly on a frame
// boundary; a short tail surfaces utils.ErrTruncatedRecord.
func (s *Segment) Scan(fn func(record domain.Record, off int64) error) error {
	fd, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return err
	}

	var off int64
	for off < info.Size() {
		record, n, err := utils.ReadRecordAt(fd, off)
		if err != nil {
			return err
		}
		if err := fn(record, off); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// Close releases the write handle. Safe to call more than once.
func (s *Segment) Close() error {
	// s.fd is nil for sealed segments and after the first Close
	if s.fd != nil {
		if err := s.fd.Close(); err != nil {
			return err
		}
		s.fd = nil
	}
	return nil
}

// Remove deletes the segment file. The segment must be closed first.
func (s *Segment) Remove() error {
	if err := s.Close(); err != nil {
		return err
	}
	return os.Remove(s.path)
}
