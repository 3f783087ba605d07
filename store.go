package bee

// Record is a normalized source kept in the Store.
type Record struct {
	ID   string
	Tree Value
}

// Store holds loaded records keyed by source identifier, together with each
// record's key index. Records keep the position of their first insertion.
// Store is not safe for concurrent use.
type Store struct {
	records []*Record
	index   map[string]int
	keys    map[string][]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
		keys:  make(map[string][]string),
	}
}

// Put stores tree under id, replacing any previous record and recomputing
// its key index.
func (s *Store) Put(id string, tree Value) {
	rec := &Record{ID: id, Tree: tree}
	if i, ok := s.index[id]; ok {
		s.records[i] = rec
	} else {
		s.index[id] = len(s.records)
		s.records = append(s.records, rec)
	}
	s.keys[id] = KeysOf(tree)
}

// All returns the records in insertion order.
func (s *Store) All() []*Record {
	records := make([]*Record, len(s.records))
	copy(records, s.records)
	return records
}

// Keys returns the key index for id, or an empty slice if id is unknown.
func (s *Store) Keys(id string) []string {
	keys := make([]string, len(s.keys[id]))
	copy(keys, s.keys[id])
	return keys
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
