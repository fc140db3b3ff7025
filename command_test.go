package resp

import (
	. "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCommand(t *T, c Command) string {
	s := NewBufStream(nil)
	require.NoError(t, c.WriteCommand(s))
	return string(s.Written())
}

func TestSingleKeyCommandRejectsEmptyKey(t *T) {
	_, err := NewSingleKeyCommand("GET", nil)
	require.Error(t, err)
	assert.True(t, len(err.Error()) > 0)
}

func TestSingleKeyCommandWritesKeyAndArgs(t *T) {
	c, err := NewSingleKeyCommand("SET", []byte("foo"), Str("bar"))
	require.NoError(t, err)
	assert.Equal(t, "foo", c.ClusterKey().String())
	assert.False(t, c.IsSubscriberCmd())
	assert.Equal(t, "*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n", writeCommand(t, c))
}

func TestSubscriberCommandFlagsAndKey(t *T) {
	c := NewSubscriberCommand("SUBSCRIBE", Str("news"))
	assert.Nil(t, c.ClusterKey())
	assert.True(t, c.IsSubscriberCmd())
	assert.Equal(t, "*2\r\n$9\r\nSUBSCRIBE\r\n$4\r\nnews\r\n", writeCommand(t, c))
}

func TestAdHocCommandHasNoKey(t *T) {
	c := NewAdHocCommand("PING")
	assert.Nil(t, c.ClusterKey())
	assert.False(t, c.IsSubscriberCmd())
	assert.Equal(t, "*1\r\n$4\r\nPING\r\n", writeCommand(t, c))
}
