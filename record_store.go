package bucketlist

import (
	"github.com/TheBitDrifter/table"
)

var (
	recordElement  = table.FactoryNewElementType[record]()
	recordAccessor = table.FactoryNewAccessor[record](recordElement)
)

// recordStore is the arena holding every live record as a table row
// Rows move when others are deleted; the entry index tracks the current row for each handle
type recordStore struct {
	schema     table.Schema
	entryIndex table.EntryIndex
	tbl        table.Table
}

func newRecordStore() (*recordStore, error) {
	schema := table.Factory.NewSchema()
	schema.Register(recordElement)
	entryIndex := table.Factory.NewEntryIndex()
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(entryIndex).
		WithElementTypes(recordElement).
		Build()
	if err != nil {
		return nil, RecordStoreError{Op: "build", Err: err}
	}
	return &recordStore{
		schema:     schema,
		entryIndex: entryIndex,
		tbl:        tbl,
	}, nil
}

func (s *recordStore) create(rec record) (RecordID, error) {
	entries, err := s.tbl.NewEntries(1)
	if err != nil {
		return 0, RecordStoreError{Op: "create", Err: err}
	}
	if len(entries) != 1 {
		return 0, RecordStoreError{Op: "create", Err: EntryCountError{Want: 1, Got: len(entries)}}
	}
	entry := entries[0]
	*recordAccessor.Get(entry.Index(), s.tbl) = rec
	return RecordID(entry.ID()), nil
}

// row resolves a handle to the row it currently occupies
// A handle only resolves while the row it names is still owned by it
func (s *recordStore) row(id RecordID) (int, bool) {
	if id <= 0 {
		return 0, false
	}
	entry, err := s.entryIndex.Entry(int(id) - 1)
	if err != nil {
		return 0, false
	}
	idx := entry.Index()
	if idx < 0 || idx >= s.tbl.Length() {
		return 0, false
	}
	current, err := s.tbl.Entry(idx)
	if err != nil || current.ID() != table.EntryID(id) {
		return 0, false
	}
	return idx, true
}

// get resolves a handle to its row. The pointer is only valid until the next create or destroy
func (s *recordStore) get(id RecordID) (*record, bool) {
	idx, ok := s.row(id)
	if !ok {
		return nil, false
	}
	return recordAccessor.Get(idx, s.tbl), true
}

// destroy releases the row of id. The arena is unchanged when it fails
func (s *recordStore) destroy(id RecordID) error {
	idx, ok := s.row(id)
	if !ok {
		return RecordStoreError{Op: "destroy", Err: UnknownRecordError{ID: id}}
	}
	// Drop the owner reference before the row is recycled
	slot := recordAccessor.Get(idx, s.tbl)
	saved := *slot
	*slot = record{}
	if _, err := s.tbl.DeleteEntries(idx); err != nil {
		*slot = saved
		return RecordStoreError{Op: "destroy", Err: err}
	}
	return nil
}

func (s *recordStore) len() int {
	return s.tbl.Length()
}
