package domain

import (
	"time"

	"github.com/google/uuid"
)

// MergeReport describes one compaction run.
type MergeReport struct {
	Id             string
	Timestamp      int64
	SegmentsMerged int
	LiveRecords    int
	RecordsDropped int
	BytesBefore    int64
	BytesAfter     int64
	Duration       time.Duration
}

func NewMergeReport() MergeReport {
	return MergeReport{
		Id:        uuid.NewString(),
		Timestamp: time.Now().UnixNano(),
	}
}

// MergeReportSink receives the report of a finished compaction run.
type MergeReportSink interface {
	PushMergeReport(report MergeReport) error
}
