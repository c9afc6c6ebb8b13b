package service

import (
	"log"

	"BitKV/internal/domain"
)

type SaveEntryService struct {
	repository  domain.RecordRepository
	broadcaster domain.ChangeBroadcaster
}

func NewSaveEntryService(
	repository domain.RecordRepository,
	broadcaster domain.ChangeBroadcaster) *SaveEntryService {
	return &SaveEntryService{
		repository:  repository,
		broadcaster: broadcaster,
	}
}

type SaveEntryCommand struct {
	Key   string
	Value string
}

type SaveEntryResult struct {
	Record domain.Record
	Err    error
}

func (s *SaveEntryService) Execute(command SaveEntryCommand) SaveEntryResult {
	record := domain.NewRecord(command.Key, command.Value)
	saved, err := s.repository.Save(record)
	if err != nil {
		return SaveEntryResult{Err: err}
	}
	if err := s.broadcaster.BroadcastChange(domain.ChangeEventFromSave(saved)); err != nil {
		log.Println("Failed to broadcast save event:", err)
	}
	return SaveEntryResult{Record: saved}
}
