package domain

type Record struct {
	key       string
	value     string
	tombstone bool
}

func NewRecord(key, value string) Record {
	return Record{
		key:   key,
		value: value,
	}
}

// NewTombstone builds the deletion marker for a key. Tombstones carry no
// value bytes on disk.
func NewTombstone(key string) Record {
	return Record{
		key:       key,
		tombstone: true,
	}
}

func (r *Record) Copy() Record {
	return Record{
		key:       r.key,
		value:     r.value,
		tombstone: r.tombstone,
	}
}

func (r *Record) Key() string {
	return r.key
}

func (r *Record) Value() string {
	return r.value
}

func (r *Record) Tombstone() bool {
	return r.tombstone
}

func (r *Record) Delete() {
	r.value = ""
	r.tombstone = true
}

type RecordRepository interface {
	Save(record Record) (Record, error)
	Get(key string) (Record, bool, error)
	Delete(key string) (*Record, bool, error)
	Keys() ([]string, error)
	Merge() (MergeReport, error)
}
