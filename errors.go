package resp

import "github.com/joomcode/errorx"

// ns is the single namespace all of this package's errors live under,
// matching spec.md §4.5's "closed set of kinds with a category-qualified
// code" — every error returned by Parser, Writer, Command, or Session.Do
// is one of the types declared below. Session.Close returns the Stream's
// own Close error unwrapped.
var ns = errorx.NewNamespace("resp")

var (
	// ErrorReplyType marks a top-level RESP error frame ('-') returned by
	// the peer. The first error frame at depth 0 wins; it does not
	// override a stream or syntax error encountered later in the same
	// parse.
	ErrorReplyType = ns.NewType("error_reply")

	// HandlerErrorType marks a Handler callback rejecting the shape of
	// the reply it was given.
	HandlerErrorType = ns.NewType("handler_error")

	// SubscriberCmdErrorType marks a subscription-mode command sent on a
	// session that isn't in subscriber mode.
	SubscriberCmdErrorType = ns.NewType("subscriber_cmd_error")

	// InvalidCommandFormatType marks a command whose own precondition
	// failed before any bytes were written for it.
	InvalidCommandFormatType = ns.NewType("invalid_command_format")

	// IllFormedReplyType marks a RESP syntax violation: an unknown type
	// prefix, or a non-digit where an integer/length field was expected.
	IllFormedReplyType = ns.NewType("ill_formed_reply")

	// StreamNotInitializedType marks a request issued against a Stream
	// that is already closed.
	StreamNotInitializedType = ns.NewType("stream_not_initialized")

	// StreamErrorType marks a transport failure or truncation. The
	// underlying transport error, if any, is reachable with
	// errorx.Cast(err).Cause() since StreamError wraps it.
	StreamErrorType = ns.NewType("stream_error")
)

// StreamError wraps an underlying transport/I/O error in StreamErrorType,
// keeping the original error reachable via errorx.Cast(err).Cause() per
// spec.md §4.5 ("the underlying transport-specific code remains
// accessible"). The wrap is opaque: errors.Unwrap and errors.Is do not
// see through it, so type checks keep reporting StreamErrorType.
func StreamError(cause error) error {
	if cause == nil {
		return StreamErrorType.New("stream error")
	}
	return StreamErrorType.Wrap(cause, "stream error")
}

// IllFormedReply builds an IllFormedReplyType error describing why the
// reply bytes violated RESP syntax.
func IllFormedReply(format string, args ...interface{}) error {
	return IllFormedReplyType.New(format, args...)
}

// HandlerError returns the error a Parser surfaces the first time a
// Handler callback returns false.
func HandlerError() error {
	return HandlerErrorType.New("handler rejected reply shape")
}

// ErrorReply wraps the peer's error-line text in ErrorReplyType.
func ErrorReply(message string) error {
	return ErrorReplyType.New(message)
}

// InvalidCommandFormat builds an InvalidCommandFormatType error describing
// which precondition a command failed.
func InvalidCommandFormat(format string, args ...interface{}) error {
	return InvalidCommandFormatType.New(format, args...)
}

// ErrSubscriberCmd is returned when a subscription-mode command is issued
// on a non-subscriber session.
var ErrSubscriberCmd = SubscriberCmdErrorType.New("subscription command issued on non-subscriber session")

// ErrStreamNotInitialized is returned when a request is issued against a
// closed Stream.
var ErrStreamNotInitialized = StreamNotInitializedType.New("stream is not open")

// precedence ranks err by the ordering rule of spec.md §4.2/§7:
// stream_error > ill_formed_reply > handler_error > error_reply > success
// (rank 0). Errors outside this taxonomy (e.g. a bare I/O error that was
// never wrapped) rank as stream errors, since any error reaching this far
// unclassified can only have come from the transport.
func precedence(err error) int {
	if err == nil {
		return 0
	}
	switch {
	case errorx.IsOfType(err, StreamErrorType):
		return 4
	case errorx.IsOfType(err, IllFormedReplyType):
		return 3
	case errorx.IsOfType(err, HandlerErrorType):
		return 2
	case errorx.IsOfType(err, ErrorReplyType):
		return 1
	default:
		return 4
	}
}

// higherPrecedence returns whichever of a and b spec.md's ordering rule
// ranks higher, preferring the existing value a on a tie (so the first
// error frame at a given precedence level wins, matching "first such
// frame wins" in spec.md §4.2 for error_reply specifically).
func higherPrecedence(a, b error) error {
	if b == nil {
		return a
	}
	if a == nil {
		return b
	}
	if precedence(b) > precedence(a) {
		return b
	}
	return a
}
