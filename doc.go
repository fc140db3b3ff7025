// Package resp implements a client-side codec for the Redis Serialization
// Protocol (RESP). It provides a streaming, handler-driven reply parser and
// a command writer built on type traits, both layered over a single
// abstract byte-stream contract (Stream). Socket transport, connection
// pooling, clustering, and session lifecycle are not part of this package;
// see Session for the contract a concrete connection type is expected to
// satisfy.
package resp
