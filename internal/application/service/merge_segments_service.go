package service

import (
	"log"

	"BitKV/internal/domain"
)

type MergeSegmentsService struct {
	repository  domain.RecordRepository
	broadcaster domain.ChangeBroadcaster
	sink        domain.MergeReportSink
}

func NewMergeSegmentsService(
	repository domain.RecordRepository,
	broadcaster domain.ChangeBroadcaster,
	sink domain.MergeReportSink) *MergeSegmentsService {
	return &MergeSegmentsService{
		repository:  repository,
		broadcaster: broadcaster,
		sink:        sink,
	}
}

type MergeSegmentsCommand struct{}

type MergeSegmentsResult struct {
	Report domain.MergeReport
	Err    error
}

func (s *MergeSegmentsService) Execute(command MergeSegmentsCommand) MergeSegmentsResult {
	report, err := s.repository.Merge()
	if err != nil {
		return MergeSegmentsResult{Err: err}
	}
	if err := s.sink.PushMergeReport(report); err != nil {
		log.Println("Failed to push merge report:", err)
	}
	if err := s.broadcaster.BroadcastChange(domain.ChangeEventFromMerge(report)); err != nil {
		log.Println("Failed to broadcast merge event:", err)
	}
	return MergeSegmentsResult{Report: report}
}
