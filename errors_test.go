package resp

import (
	"errors"
	. "testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
)

func TestStreamErrorWrapsCause(t *T) {
	cause := errors.New("broken pipe")
	err := StreamError(cause)
	assert.True(t, errorx.IsOfType(err, StreamErrorType))
	assert.Equal(t, cause, errorx.Cast(err).Cause())
}

func TestPrecedenceOrdering(t *T) {
	assert.True(t, precedence(StreamError(nil)) > precedence(IllFormedReply("x")))
	assert.True(t, precedence(IllFormedReply("x")) > precedence(HandlerError()))
	assert.True(t, precedence(HandlerError()) > precedence(ErrorReply("x")))
	assert.True(t, precedence(ErrorReply("x")) > precedence(nil))
}

func TestHigherPrecedenceKeepsFirstOnTie(t *T) {
	a := ErrorReply("first")
	b := ErrorReply("second")
	assert.Equal(t, a, higherPrecedence(a, b))
}

func TestHigherPrecedencePicksStrongerError(t *T) {
	weak := ErrorReply("peer said no")
	strong := StreamError(errors.New("eof"))
	assert.Equal(t, strong, higherPrecedence(weak, strong))
	assert.Equal(t, strong, higherPrecedence(strong, weak))
}
