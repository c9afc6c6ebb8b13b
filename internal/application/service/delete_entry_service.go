package service

import (
	"log"

	"BitKV/internal/domain"
)

type DeleteEntryService struct {
	repository  domain.RecordRepository
	broadcaster domain.ChangeBroadcaster
}

func NewDeleteEntryService(
	repository domain.RecordRepository,
	broadcaster domain.ChangeBroadcaster) *DeleteEntryService {
	return &DeleteEntryService{
		repository:  repository,
		broadcaster: broadcaster,
	}
}

type DeleteEntryCommand struct {
	Key string
}

type DeleteEntryResult struct {
	Record *domain.Record
	Found  bool
	Err    error
}

// Execute deletes the entry for the given key. Deleting a key that does not
// exist is not an error, the result just reports Found=false.
func (s *DeleteEntryService) Execute(command DeleteEntryCommand) DeleteEntryResult {
	record, found, err := s.repository.Delete(command.Key)
	if err != nil {
		return DeleteEntryResult{Err: err}
	}
	if !found {
		return DeleteEntryResult{Found: false}
	}
	if err := s.broadcaster.BroadcastChange(domain.ChangeEventFromDelete(command.Key)); err != nil {
		log.Println("Failed to broadcast delete event:", err)
	}
	return DeleteEntryResult{
		Record: record,
		Found:  true,
	}
}
