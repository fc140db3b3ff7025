package resp

import (
	"bytes"
	"io"
	"math"
)

// Parser reads RESP reply bytes off a Stream and drives a Handler with
// them. It holds no state between calls to Parse and is safe to reuse
// (though not to use concurrently on the same Stream, since Stream itself
// isn't safe for that).
type Parser struct{}

// NewParser returns a ready-to-use Parser. There is currently no
// configuration; the zero value works equally well.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads exactly one top-level reply from s and dispatches it to h.
// See spec.md §4.2 for the full contract; in short: it returns nil on
// success, and otherwise the highest-precedence of StreamError (truncation
// or transport failure), IllFormedReply (RESP syntax violation),
// HandlerError (h rejected a reply shape), or ErrorReply (the reply's top
// frame was a RESP error line) — in that order.
func (p *Parser) Parse(s Stream, h Handler) error {
	run := &parseRun{stream: s, handler: h}
	if fatal := run.parseOneReply(); fatal != nil {
		return fatal
	}

	var result error
	if run.handlerFailed {
		result = higherPrecedence(result, HandlerError())
	}
	if run.errSeen {
		result = higherPrecedence(result, ErrorReply(run.firstErrorMsg))
	}
	return result
}

// parseRun carries the mutable state of a single Parse call: the current
// recursion depth, the latched handler-rejection flag, and whether the
// top-level frame was a RESP error line (nested error frames are passed to
// the handler but do not set it).
type parseRun struct {
	stream Stream
	handler Handler

	depth         int
	handlerFailed bool
	errSeen       bool
	firstErrorMsg string
}

// fire invokes call unless a prior callback has already returned false.
// Once latched, no further callback of any kind — data or bracketing —
// is invoked for the remainder of the parse, matching the original's
// handle() template which gates every handler call behind the same flag.
func (r *parseRun) fire(call func() bool) {
	if r.handlerFailed {
		return
	}
	if !call() {
		r.handlerFailed = true
	}
}

// parseOneReply reads and dispatches a single reply frame, recursing for
// multi-bulk children. Enter/leave bracketing is paired on every exit path
// via defer, standing in for the original's finally()-scoped release.
func (r *parseRun) parseOneReply() error {
	typ, err := r.readTypeByte()
	if err != nil {
		return StreamError(err)
	}

	depth := r.depth
	r.depth++
	r.fire(func() bool { return r.handler.OnEnterReply(depth) })
	defer func() {
		r.depth--
		r.fire(func() bool { return r.handler.OnLeaveReply(depth) })
	}()

	switch typ {
	case '+':
		return r.readLine(func(line ByteView) error {
			r.fire(func() bool { return r.handler.OnStatus(line) })
			return nil
		})
	case '-':
		top := depth == 0
		if top {
			r.errSeen = true
		}
		return r.readLine(func(line ByteView) error {
			if top {
				r.firstErrorMsg = line.String()
			}
			r.fire(func() bool { return r.handler.OnError(line) })
			return nil
		})
	case ':':
		return r.readLine(func(line ByteView) error {
			v, err := parseInteger(line)
			if err != nil {
				return err
			}
			r.fire(func() bool { return r.handler.OnInteger(v) })
			return nil
		})
	case '$':
		return r.readBulk()
	case '*':
		return r.readMultiBulk()
	default:
		return IllFormedReply("unknown RESP type prefix %q", typ)
	}
}

func (r *parseRun) readTypeByte() (byte, error) {
	v, err := r.stream.Read(1)
	if err != nil {
		return 0, err
	}
	if len(v) < 1 {
		return 0, io.ErrUnexpectedEOF
	}
	return v[0], nil
}

// readLine implements spec.md §4.2's line reader: an initial 64-byte peek
// window, doubling on a full-but-CRLF-less window, capped at maxLineBuf.
// f is called with the line view (CRLF excluded) before the line and its
// terminator are skipped off the stream.
func (r *parseRun) readLine(f func(ByteView) error) error {
	size := 64
	for {
		buf, err := r.stream.Peek(size)
		if idx := bytes.Index(buf, crlf); idx >= 0 {
			if ferr := f(ByteView(buf[:idx])); ferr != nil {
				return ferr
			}
			if _, serr := r.stream.Skip(idx + len(crlf)); serr != nil {
				return StreamError(serr)
			}
			return nil
		}

		if err == nil {
			// Got the full window and it contained no CRLF: grow and
			// retry, unless we've already hit the cap.
			if size >= maxLineBuf {
				return IllFormedReply("line exceeds %d byte cap without a CRLF", maxLineBuf)
			}
			size *= 2
			if size > maxLineBuf {
				size = maxLineBuf
			}
			continue
		}

		// A short peek without a CRLF means the stream ran out of bytes
		// before the line ended: truncation.
		return StreamError(err)
	}
}

func (r *parseRun) readBulk() error {
	var size int64
	if err := r.readLine(func(line ByteView) error {
		v, err := parseInteger(line)
		if err != nil {
			return err
		}
		size = v
		return nil
	}); err != nil {
		return err
	}

	if size < 0 {
		r.fire(func() bool { return r.handler.OnNull() })
		return nil
	}

	view, err := r.stream.Read(int(size))
	if err != nil {
		return StreamError(err)
	}
	r.fire(func() bool { return r.handler.OnBulk(view) })
	return skipCRLF(r.stream)
}

func (r *parseRun) readMultiBulk() error {
	var count int64
	if err := r.readLine(func(line ByteView) error {
		v, err := parseInteger(line)
		if err != nil {
			return err
		}
		count = v
		return nil
	}); err != nil {
		return err
	}

	if count < 0 {
		r.fire(func() bool { return r.handler.OnNull() })
		return nil
	}

	r.fire(func() bool { return r.handler.OnMultiBulkBegin(int(count)) })
	for i := int64(0); i < count; i++ {
		if err := r.parseOneReply(); err != nil {
			return err
		}
	}
	return nil
}

// skipCRLF consumes the two-byte line terminator following a bulk body.
// Per spec.md §4.2 the bytes themselves are not validated, only their
// presence: a short skip means truncation.
func skipCRLF(s Stream) error {
	n, err := s.Skip(len(crlf))
	if err != nil {
		return StreamError(err)
	}
	if n != len(crlf) {
		return StreamError(io.ErrUnexpectedEOF)
	}
	return nil
}

// parseInteger parses a signed decimal integer field (optional leading
// '+' or '-', then one or more digits). It accumulates in int64 and
// range-checks on every digit, resolving spec.md §9's open question about
// the original's 32-bit accumulator.
func parseInteger(line ByteView) (int64, error) {
	if len(line) == 0 {
		return 0, IllFormedReply("empty integer field")
	}

	i := 0
	neg := false
	switch line[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i == len(line) {
		return 0, IllFormedReply("integer field %q has no digits", line)
	}

	var value int64
	for ; i < len(line); i++ {
		d := line[i] - '0'
		if d > 9 {
			return 0, IllFormedReply("non-digit byte %q in integer field %q", line[i], line)
		}
		if value > (math.MaxInt64-int64(d))/10 {
			return 0, IllFormedReply("integer field %q overflows int64", line)
		}
		value = value*10 + int64(d)
	}
	if neg {
		value = -value
	}
	return value, nil
}
