// Package commands is a catalog of Command constructors for a
// representative slice of the Redis command set, each built on top of
// resp's Value traits and command families. It exists to exercise the
// precondition and arity machinery resp provides; it is not meant to be
// an exhaustive command set.
package commands

import (
	"github.com/summerlight/redis-resp-go"
)

// Get returns a GET command for key.
func Get(key []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("GET", key)
}

// Set returns a SET command assigning value to key.
func Set(key, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("SET", key, resp.BulkValue(value))
}

// GetSet returns a GETSET command, atomically replacing key's value and
// returning the old one.
func GetSet(key, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("GETSET", key, resp.BulkValue(value))
}

// SetNX returns a SETNX command, which sets key only if it doesn't
// already exist.
func SetNX(key, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("SETNX", key, resp.BulkValue(value))
}

// SetEX returns a SETEX command, setting key with an expiry given in
// seconds.
func SetEX(key []byte, seconds int64, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("SETEX", key, resp.Int(seconds), resp.BulkValue(value))
}

// PSetEX returns a PSETEX command, setting key with an expiry given in
// milliseconds.
func PSetEX(key []byte, millis int64, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("PSETEX", key, resp.Int(millis), resp.BulkValue(value))
}

// SetRange returns a SETRANGE command, overwriting key's value starting
// at offset.
func SetRange(key []byte, offset int64, value []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("SETRANGE", key, resp.Int(offset), resp.BulkValue(value))
}

// Append returns an APPEND command, appending value to whatever key
// currently holds. value must be non-empty.
func Append(key, value []byte) (resp.Command, error) {
	if err := resp.RequireNonEmpty("APPEND", "value", value); err != nil {
		return nil, err
	}
	return resp.NewSingleKeyCommand("APPEND", key, resp.BulkValue(value))
}
