package commands

import "github.com/summerlight/redis-resp-go"

// LRem returns an LREM command, removing up to count occurrences of
// value from the list at key (count's sign selects search direction,
// zero means remove all occurrences).
func LRem(key []byte, count int64, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("LREM", key, resp.Int(count), resp.BulkValue(value))
}

// LSet returns an LSET command, setting the element at index within the
// list at key.
func LSet(key []byte, index int64, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("LSET", key, resp.Int(index), resp.BulkValue(value))
}

// InsertWhere selects which side of the pivot LInsert inserts on.
type InsertWhere int

const (
	Before InsertWhere = iota
	After
)

func (w InsertWhere) String() string {
	if w == Before {
		return "BEFORE"
	}
	return "AFTER"
}

// LInsert returns an LINSERT command, inserting value next to the first
// occurrence of pivot within the list at key.
func LInsert(key []byte, where InsertWhere, pivot, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("LINSERT", key, resp.Str(where.String()), resp.BulkValue(pivot), resp.BulkValue(value))
}
