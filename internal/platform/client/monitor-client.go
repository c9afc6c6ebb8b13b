package client

import (
	"BitKV/internal/domain"

	"github.com/go-resty/resty/v2"
)

const (
	merge_reports_endpoint = "/api/v1/merge-reports"
)

// MonitorClient pushes compaction reports to an external monitoring
// endpoint, when one is configured.
type MonitorClient struct {
	client     *resty.Client
	monitorUrl string
}

func NewMonitorClient(monitorUrl string) *MonitorClient {
	return &MonitorClient{
		client:     resty.New(),
		monitorUrl: monitorUrl,
	}
}

type MergeReportRequest struct {
	Id             string `json:"id"`
	Timestamp      int64  `json:"timestamp"`
	SegmentsMerged int    `json:"segments_merged"`
	LiveRecords    int    `json:"live_records"`
	RecordsDropped int    `json:"records_dropped"`
	BytesBefore    int64  `json:"bytes_before"`
	BytesAfter     int64  `json:"bytes_after"`
	DurationMillis int64  `json:"duration_millis"`
}

func (c *MonitorClient) PushMergeReport(report domain.MergeReport) error {
	// no monitor configured, reports stay local
	if c.monitorUrl == "" {
		return nil
	}
	uri := c.monitorUrl + merge_reports_endpoint
	body := MergeReportRequest{
		Id:             report.Id,
		Timestamp:      report.Timestamp,
		SegmentsMerged: report.SegmentsMerged,
		LiveRecords:    report.LiveRecords,
		RecordsDropped: report.RecordsDropped,
		BytesBefore:    report.BytesBefore,
		BytesAfter:     report.BytesAfter,
		DurationMillis: report.Duration.Milliseconds(),
	}
	_, err := c.client.R().SetBody(&body).Post(uri)
	return err
}
