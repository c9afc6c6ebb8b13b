package domain

// RecordLocation addresses the latest live record for a key: the segment
// that holds it and the byte offset of its header inside that segment.
type RecordLocation struct {
	SegmentID int
	Offset    int64
}
