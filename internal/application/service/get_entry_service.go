package service

import (
	"BitKV/internal/domain"
)

type GetEntryService struct {
	repository domain.RecordRepository
}

func NewGetEntryService(repository domain.RecordRepository) *GetEntryService {
	return &GetEntryService{
		repository: repository,
	}
}

type GetEntryQuery struct {
	Key string
}

type GetEntryResult struct {
	Record domain.Record
	Found  bool
	Err    error
}

func (s *GetEntryService) Execute(query GetEntryQuery) GetEntryResult {
	record, found, err := s.repository.Get(query.Key)
	if err != nil {
		return GetEntryResult{Err: err}
	}
	if !found {
		return GetEntryResult{Found: false}
	}
	return GetEntryResult{
		Record: record,
		Found:  true,
	}
}
