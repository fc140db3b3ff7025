package resp

import (
	. "testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicSessionDoRoundTrip(t *T) {
	s := NewBufStream([]byte("+OK\r\n"))
	sess := NewBasicSession(s)

	cmd, err := NewSingleKeyCommand("SET", []byte("k"), Str("v"))
	require.NoError(t, err)

	h := &StatusHandler{}
	require.NoError(t, sess.Do(cmd, h))
	assert.Equal(t, "OK", h.Status)
	assert.Equal(t, "*3\r\n$3\r\nSET\r\n$1\r\nk\r\n$1\r\nv\r\n", string(s.Written()))
}

func TestBasicSessionRejectsClosedStream(t *T) {
	s := NewBufStream(nil)
	require.NoError(t, s.Close())
	sess := NewBasicSession(s)

	cmd := NewAdHocCommand("PING")
	err := sess.Do(cmd, &BaseHandler{})
	assert.Equal(t, ErrStreamNotInitialized, err)
}

func TestBasicSessionEntersAndEnforcesSubscriberMode(t *T) {
	s := NewBufStream([]byte("*2\r\n$9\r\nsubscribe\r\n$4\r\nnews\r\n"))
	sess := NewBasicSession(s)
	assert.False(t, sess.InSubscriberMode())

	cmd := NewSubscriberCommand("SUBSCRIBE", Str("news"))
	require.NoError(t, sess.Do(cmd, &MultiBulkHandler{}))
	assert.True(t, sess.InSubscriberMode())

	plain := NewAdHocCommand("PING")
	err := sess.Do(plain, &BaseHandler{})
	assert.Equal(t, ErrSubscriberCmd, err)
}

func TestBasicSessionClosesStreamOnStreamError(t *T) {
	s := NewBufStream([]byte(":"))
	sess := NewBasicSession(s)

	cmd := NewAdHocCommand("INCR")
	err := sess.Do(cmd, &BaseHandler{})
	require.Error(t, err)
	assert.False(t, s.IsOpen())
}

func TestBasicSessionClosesStreamOnHandlerError(t *T) {
	// A handler rejection is not a stream_error, but spec.md §6.2/§7
	// still requires the session to close on any error from Do.
	s := NewBufStream([]byte(":50\r\n"))
	sess := NewBasicSession(s)

	cmd := NewAdHocCommand("INCR")
	err := sess.Do(cmd, &thresholdIntHandler{threshold: 100})
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, HandlerErrorType))
	assert.False(t, s.IsOpen())
}
