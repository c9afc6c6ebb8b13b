package utils

import (
	. "BitKV/internal/domain"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderSize: key_len y value_len como uint32 big-endian.
	HeaderSize = 8

	// tombstoneLen is a reserved value_len marking a deletion record.
	// Tombstones carry no value bytes after the key.
	tombstoneLen = math.MaxUint32

	MaxKeySize   = math.MaxUint32
	MaxValueSize = math.MaxUint32 - 1
)

var (
	ErrRecordTooLarge  = errors.New("record key or value exceeds header range")
	ErrTruncatedRecord = errors.New("truncated record")
)

// AppendRecord escribe un registro enmarcado en w y devuelve su longitud total.
// Frame: header de 8 bytes + key + value.
func AppendRecord(w io.Writer, record Record) (int64, error) {
	keyBytes := []byte(record.Key())
	valueBytes := []byte(record.Value())

	if len(keyBytes) > MaxKeySize {
		return 0, fmt.Errorf("%w: key is %d bytes", ErrRecordTooLarge, len(keyBytes))
	}
	if len(valueBytes) > MaxValueSize {
		return 0, fmt.Errorf("%w: value is %d bytes", ErrRecordTooLarge, len(valueBytes))
	}

	valueLen := uint32(len(valueBytes))
	if record.Tombstone() {
		valueLen = tombstoneLen
		valueBytes = nil
	}

	var header [HeaderSize]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(keyBytes)))
	binary.BigEndian.PutUint32(header[4:8], valueLen)

	if _, err := w.Write(header[:]); err != nil {
		return 0, err
	}
	if _, err := w.Write(keyBytes); err != nil {
		return 0, err
	}
	if _, err := w.Write(valueBytes); err != nil {
		return 0, err
	}

	return FrameSize(record), nil
}

// ReadRecordAt decodes one record whose header starts at off. It returns the
// record and its framed length, so sequential replay can advance by it.
// A declared length that runs past the available bytes surfaces
// ErrTruncatedRecord: that is a partial write at the tail, never skipped here.
func ReadRecordAt(r io.ReaderAt, off int64) (Record, int64, error) {
	var header [HeaderSize]byte
	if _, err := r.ReadAt(header[:], off); err != nil {
		return Record{}, 0, fmt.Errorf("%w: header at offset %d", ErrTruncatedRecord, off)
	}

	keyLen := binary.BigEndian.Uint32(header[0:4])
	valueLen := binary.BigEndian.Uint32(header[4:8])

	keyBytes := make([]byte, keyLen)
	if _, err := r.ReadAt(keyBytes, off+HeaderSize); err != nil {
		return Record{}, 0, fmt.Errorf("%w: key at offset %d", ErrTruncatedRecord, off)
	}

	if valueLen == tombstoneLen {
		record := NewTombstone(string(keyBytes))
		return record, FrameSize(record), nil
	}

	valueBytes := make([]byte, valueLen)
	if _, err := r.ReadAt(valueBytes, off+HeaderSize+int64(keyLen)); err != nil {
		return Record{}, 0, fmt.Errorf("%w: value at offset %d", ErrTruncatedRecord, off)
	}

	record := NewRecord(string(keyBytes), string(valueBytes))
	return record, FrameSize(record), nil
}

// FrameSize es la longitud en disco del registro enmarcado.
func FrameSize(record Record) int64 {
	size := int64(HeaderSize) + int64(len(record.Key()))
	if !record.Tombstone() {
		size += int64(len(record.Value()))
	}
	return size
}
