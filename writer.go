package resp

// crlf is the two-byte RESP line terminator, used everywhere a frame ends.
var crlf = []byte{'\r', '\n'}

// WriteHeader writes a request array header "*size\r\n" to s.
func WriteHeader(s Stream, size int) error {
	if err := s.WriteByte('*'); err != nil {
		return StreamError(err)
	}
	if err := writeDecimalInt(s, int64(size)); err != nil {
		return StreamError(err)
	}
	if _, err := s.Write(crlf); err != nil {
		return StreamError(err)
	}
	return nil
}

// FormatCommand writes a full RESP request to s: a "*K\r\n" header where K
// is the sum of every value's Count, followed by each value's bulk-framed
// element(s) in order, then flushes. This is the Go realization of the
// original's variadic format_command (writer.h) — one function taking any
// number of values instead of the ten hand-generated overloads spec.md §9
// calls out as a relic of pre-variadic-template compilers.
//
// A transport failure anywhere in this call returns a StreamError. It is
// the caller's responsibility to have already rejected any
// precondition-failing command (empty required field, etc.) with
// InvalidCommandFormat before calling FormatCommand — no bytes are written
// for a command that never reaches this function.
func FormatCommand(s Stream, values ...Value) error {
	total := 0
	for _, v := range values {
		total += v.Count()
	}

	if err := WriteHeader(s, total); err != nil {
		return err
	}
	for _, v := range values {
		if err := v.WriteTo(s); err != nil {
			return StreamError(err)
		}
	}
	if err := s.Flush(); err != nil {
		return StreamError(err)
	}
	return nil
}
