package resp

import (
	. "testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *T, input string, h Handler) error {
	s := NewBufStream([]byte(input))
	return NewParser().Parse(s, h)
}

func TestParseStatus(t *T) {
	h := &StatusHandler{}
	require.NoError(t, parse(t, "+OK\r\n", h))
	assert.Equal(t, "OK", h.Status)
}

func TestParseInteger(t *T) {
	h := NewIntegerHandler()
	require.NoError(t, parse(t, ":1000\r\n", h))
	assert.Equal(t, int64(1000), h.Value)
}

func TestParseNegativeInteger(t *T) {
	h := NewIntegerHandler()
	require.NoError(t, parse(t, ":-7\r\n", h))
	assert.Equal(t, int64(-7), h.Value)
}

func TestParseBulk(t *T) {
	h := &BulkHandler{}
	require.NoError(t, parse(t, "$5\r\nhello\r\n", h))
	assert.Equal(t, "hello", string(h.Data))
	assert.False(t, h.Null)
}

func TestParseNullBulk(t *T) {
	h := &BulkHandler{}
	require.NoError(t, parse(t, "$-1\r\n", h))
	assert.True(t, h.Null)
}

func TestParseMultiBulk(t *T) {
	h := &MultiBulkHandler{}
	require.NoError(t, parse(t, "*2\r\n$4\r\ntest\r\n$5\r\nmulti\r\n", h))
	require.Len(t, h.Elements, 2)
	assert.Equal(t, "test", string(h.Elements[0]))
	assert.Equal(t, "multi", string(h.Elements[1]))
}

func TestParseNullMultiBulk(t *T) {
	h := &MultiBulkHandler{}
	require.NoError(t, parse(t, "*-1\r\n", h))
	assert.True(t, h.Null)
}

func TestParseErrorReplyCapturesMessageAndReturnsErrorReply(t *T) {
	err := parse(t, "-ERR wrong type\r\n", &BaseHandler{})
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, ErrorReplyType))
}

// TestIllFormedDetection covers spec.md's table of inputs that must
// surface ill_formed_reply.
func TestIllFormedDetection(t *T) {
	cases := []string{
		":42a\r\n",
		"a",
	}
	for _, in := range cases {
		err := parse(t, in, &BaseHandler{})
		require.Error(t, err, "input %q", in)
		assert.True(t, errorx.IsOfType(err, IllFormedReplyType), "input %q got %v", in, err)
	}
}

// TestTruncationIsStreamError covers spec.md's table of inputs that
// must surface stream_error rather than ill_formed_reply.
func TestTruncationIsStreamError(t *T) {
	cases := []string{
		":42\r",
		":",
		"$18\r\nthis is bulk r",
		"*5\r\n$4\r\ntest\r\n$5\r\nmulti\r\n$5\r\nreply\r\n$-1\r\n",
	}
	for _, in := range cases {
		err := parse(t, in, &BaseHandler{})
		require.Error(t, err, "input %q", in)
		assert.True(t, errorx.IsOfType(err, StreamErrorType), "input %q got %v", in, err)
	}
}

func TestPrecedenceStreamOverErrorReply(t *T) {
	// A truncated error reply must surface stream_error, not error_reply.
	err := parse(t, "-ERR trunc", &BaseHandler{})
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, StreamErrorType))
}

type thresholdIntHandler struct {
	BaseHandler
	threshold int64
}

func (h *thresholdIntHandler) OnInteger(v int64) bool {
	return v > h.threshold
}

func TestHandlerRejectsLowIntegers(t *T) {
	h := &thresholdIntHandler{threshold: 100}
	err := parse(t, ":50\r\n", h)
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, HandlerErrorType))

	err = parse(t, ":150\r\n", h)
	assert.NoError(t, err)
}

type countingBulkHandler struct {
	BaseHandler
	accept int
	calls  int
}

func (h *countingBulkHandler) OnMultiBulkBegin(int) bool { return true }

func (h *countingBulkHandler) OnBulk(ByteView) bool {
	h.calls++
	return h.calls <= h.accept
}

func TestHandlerEarlyExitStopsAfterRejectionButDrainsStream(t *T) {
	var body string
	for i := 0; i < 10; i++ {
		body += "$10\r\n0123456789\r\n"
	}
	input := "*10\r\n" + body

	h := &countingBulkHandler{accept: 3}
	s := NewBufStream([]byte(input))
	err := NewParser().Parse(s, h)
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, HandlerErrorType))
	assert.Equal(t, 4, h.calls, "handler should see exactly four on_bulk calls")
	assert.Equal(t, 0, s.Available(), "stream cursor should be advanced to the end of the full reply")
}

func TestParseNestedMultiBulk(t *T) {
	h := &MultiBulkHandler{}
	input := "*2\r\n*2\r\n$1\r\na\r\n$1\r\nb\r\n$1\r\nc\r\n"
	err := parse(t, input, h)
	// MultiBulkHandler only accepts depth <= 1, so the grandchildren of
	// this nested array trip OnEnterReply's depth check and this must
	// be a handler_error.
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, HandlerErrorType))
}
