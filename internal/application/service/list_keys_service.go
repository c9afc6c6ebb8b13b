package service

import (
	"BitKV/internal/domain"
)

type ListKeysService struct {
	repository domain.RecordRepository
}

func NewListKeysService(repository domain.RecordRepository) *ListKeysService {
	return &ListKeysService{
		repository: repository,
	}
}

type ListKeysQuery struct{}

type ListKeysResult struct {
	Keys []string
	Err  error
}

func (s *ListKeysService) Execute(query ListKeysQuery) ListKeysResult {
	keys, err := s.repository.Keys()
	if err != nil {
		return ListKeysResult{Err: err}
	}
	return ListKeysResult{Keys: keys}
}
