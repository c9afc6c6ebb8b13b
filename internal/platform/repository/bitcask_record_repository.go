package repository

import (
	"BitKV/internal/domain"
	"BitKV/internal/platform/repository/bitcask"
)

type BitcaskRepository struct {
	engine *bitcask.Engine
}

func NewBitcaskRepository(engine *bitcask.Engine) *BitcaskRepository {
	return &BitcaskRepository{
		engine: engine,
	}
}

func (r *BitcaskRepository) Save(record domain.Record) (domain.Record, error) {
	if err := r.engine.Put(record.Key(), record.Value()); err != nil {
		return domain.Record{}, err
	}
	return record, nil
}

func (r *BitcaskRepository) Get(key string) (domain.Record, bool, error) {
	value, found, err := r.engine.Get(key)
	if err != nil || !found {
		return domain.Record{}, false, err
	}
	return domain.NewRecord(key, value), true, nil
}

func (r *BitcaskRepository) Delete(key string) (*domain.Record, bool, error) {
	deleted, err := r.engine.Delete(key)
	if err != nil || !deleted {
		return nil, false, err
	}
	tombstone := domain.NewTombstone(key)
	return &tombstone, true, nil
}

func (r *BitcaskRepository) Keys() ([]string, error) {
	return r.engine.Keys()
}

func (r *BitcaskRepository) Merge() (domain.MergeReport, error) {
	return r.engine.Merge()
}
