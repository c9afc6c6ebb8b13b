package bitcask

import "errors"

var (
	ErrKeyNotFound      = errors.New("key not found in index")
	ErrOffsetOutOfRange = errors.New("offset beyond end of segment")
	ErrIndexCorrupted   = errors.New("index points at a stale or invalid record")
	ErrStoreClosed      = errors.New("store is closed")
	ErrSegmentSealed    = errors.New("segment is sealed")
	ErrEmptyKey         = errors.New("key should not be empty")
)
