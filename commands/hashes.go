package commands

import "github.com/summerlight/redis-resp-go"

// HSet returns an HSET command, setting field to value within the hash
// at key.
func HSet(key, field, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("HSET", key, resp.BulkValue(field), resp.BulkValue(value))
}

// HSetNX returns an HSETNX command, setting field within the hash at
// key only if it doesn't already exist.
func HSetNX(key, field, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("HSETNX", key, resp.BulkValue(field), resp.BulkValue(value))
}

// HMSet returns an HMSET command, setting every (field, value) pair in
// fields within the hash at key in a single round trip.
func HMSet(key []byte, fields map[string][]byte) (resp.Command, error) {
	if err := resp.RequireNonEmptySeq("HMSET", "field list", len(fields)); err != nil {
		return nil, err
	}
	args := make([]resp.Value, 0, 2*len(fields))
	for field, value := range fields {
		args = append(args, resp.Str(field), resp.BulkValue(value))
	}
	return resp.NewSingleKeyCommand("HMSET", key, args...)
}
