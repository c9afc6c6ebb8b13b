package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"BitKV/internal/application/service"
	"BitKV/internal/platform/repository/bitcask"

	"github.com/davecgh/go-spew/spew"
)

type AdminHandler struct {
	mergeService *service.MergeSegmentsService
	engine       *bitcask.Engine
}

func NewAdminHandler(mergeService *service.MergeSegmentsService, engine *bitcask.Engine) *AdminHandler {
	return &AdminHandler{
		mergeService: mergeService,
		engine:       engine,
	}
}

type MergeResponse struct {
	Id             string `json:"id"`
	SegmentsMerged int    `json:"segments_merged"`
	LiveRecords    int    `json:"live_records"`
	RecordsDropped int    `json:"records_dropped"`
	BytesBefore    int64  `json:"bytes_before"`
	BytesAfter     int64  `json:"bytes_after"`
}

func (h *AdminHandler) MergeSegments(w http.ResponseWriter, r *http.Request) {
	result := h.mergeService.Execute(service.MergeSegmentsCommand{})
	if result.Err != nil {
		http.Error(w, result.Err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	output, _ := json.Marshal(MergeResponse{
		Id:             result.Report.Id,
		SegmentsMerged: result.Report.SegmentsMerged,
		LiveRecords:    result.Report.LiveRecords,
		RecordsDropped: result.Report.RecordsDropped,
		BytesBefore:    result.Report.BytesBefore,
		BytesAfter:     result.Report.BytesAfter,
	})
	w.Write(output)
}

func (h *AdminHandler) EngineStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.engine.Stats()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, spew.Sdump(stats))
}
