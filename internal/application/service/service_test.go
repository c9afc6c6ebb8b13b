package service

import (
	"errors"
	"testing"

	"BitKV/internal/domain"

	"github.com/stretchr/testify/assert"
)

type mockRepository struct {
	records     map[string]domain.Record
	mergeReport domain.MergeReport
	saveErr     error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		records: map[string]domain.Record{},
	}
}

func (m *mockRepository) Save(record domain.Record) (domain.Record, error) {
	if m.saveErr != nil {
		return domain.Record{}, m.saveErr
	}
	m.records[record.Key()] = record
	return record, nil
}

func (m *mockRepository) Get(key string) (domain.Record, bool, error) {
	record, found := m.records[key]
	return record, found, nil
}

func (m *mockRepository) Delete(key string) (*domain.Record, bool, error) {
	if _, found := m.records[key]; !found {
		return nil, false, nil
	}
	delete(m.records, key)
	tombstone := domain.NewTombstone(key)
	return &tombstone, true, nil
}

func (m *mockRepository) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *mockRepository) Merge() (domain.MergeReport, error) {
	return m.mergeReport, nil
}

type mockBroadcaster struct {
	events []domain.ChangeEvent
}

func (m *mockBroadcaster) BroadcastChange(event domain.ChangeEvent) error {
	m.events = append(m.events, event)
	return nil
}

type mockSink struct {
	reports []domain.MergeReport
}

func (m *mockSink) PushMergeReport(report domain.MergeReport) error {
	m.reports = append(m.reports, report)
	return nil
}

func TestSaveEntryService_Execute(t *testing.T) {
	repo := newMockRepository()
	broadcaster := &mockBroadcaster{}
	s := NewSaveEntryService(repo, broadcaster)

	result := s.Execute(SaveEntryCommand{Key: "k", Value: "v"})

	assert.NoError(t, result.Err)
	assert.Equal(t, "v", result.Record.Value())
	assert.Len(t, broadcaster.events, 1)
	assert.Equal(t, domain.EntrySaved, broadcaster.events[0].Kind)
	assert.Equal(t, "k", broadcaster.events[0].Key)
}

func TestSaveEntryService_RepositoryFailure(t *testing.T) {
	repo := newMockRepository()
	repo.saveErr = errors.New("disk full")
	broadcaster := &mockBroadcaster{}
	s := NewSaveEntryService(repo, broadcaster)

	result := s.Execute(SaveEntryCommand{Key: "k", Value: "v"})

	assert.Error(t, result.Err)
	assert.Empty(t, broadcaster.events, "failed saves must not be broadcast")
}

func TestGetEntryService_Execute(t *testing.T) {
	repo := newMockRepository()
	repo.records["k"] = domain.NewRecord("k", "v")
	s := NewGetEntryService(repo)

	result := s.Execute(GetEntryQuery{Key: "k"})
	assert.True(t, result.Found)
	assert.Equal(t, "v", result.Record.Value())

	result = s.Execute(GetEntryQuery{Key: "missing"})
	assert.False(t, result.Found)
	assert.NoError(t, result.Err)
}

func TestDeleteEntryService_Execute(t *testing.T) {
	repo := newMockRepository()
	repo.records["k"] = domain.NewRecord("k", "v")
	broadcaster := &mockBroadcaster{}
	s := NewDeleteEntryService(repo, broadcaster)

	result := s.Execute(DeleteEntryCommand{Key: "k"})
	assert.NoError(t, result.Err)
	assert.True(t, result.Found)
	assert.True(t, result.Record.Tombstone())
	assert.Len(t, broadcaster.events, 1)
	assert.Equal(t, domain.EntryDeleted, broadcaster.events[0].Kind)
}

func TestDeleteEntryService_AbsentKey(t *testing.T) {
	repo := newMockRepository()
	broadcaster := &mockBroadcaster{}
	s := NewDeleteEntryService(repo, broadcaster)

	result := s.Execute(DeleteEntryCommand{Key: "missing"})
	assert.NoError(t, result.Err, "deleting an absent key is not an error")
	assert.False(t, result.Found)
	assert.Empty(t, broadcaster.events)
}

func TestMergeSegmentsService_Execute(t *testing.T) {
	repo := newMockRepository()
	repo.mergeReport = domain.NewMergeReport()
	repo.mergeReport.LiveRecords = 3
	broadcaster := &mockBroadcaster{}
	sink := &mockSink{}
	s := NewMergeSegmentsService(repo, broadcaster, sink)

	result := s.Execute(MergeSegmentsCommand{})

	assert.NoError(t, result.Err)
	assert.Equal(t, 3, result.Report.LiveRecords)
	assert.Len(t, sink.reports, 1)
	assert.Len(t, broadcaster.events, 1)
	assert.Equal(t, domain.SegmentsMerged, broadcaster.events[0].Kind)
}

func TestListKeysService_Execute(t *testing.T) {
	repo := newMockRepository()
	repo.records["a"] = domain.NewRecord("a", "1")
	s := NewListKeysService(repo)

	result := s.Execute(ListKeysQuery{})
	assert.NoError(t, result.Err)
	assert.Equal(t, []string{"a"}, result.Keys)
}
