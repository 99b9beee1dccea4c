package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("dummy").Wrap(e2)
	e3 := e.Unwrap()
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, e3 == e2)
}

func TestWrapLeavesSentinelUntouched(t *testing.T) {
	sentinel := New("boom")
	wrapped := sentinel.Wrap(New("cause"))

	assert.Nil(t, sentinel.Unwrap())
	assert.NotNil(t, wrapped.Unwrap())
	assert.True(t, Is(wrapped, sentinel))
	assert.False(t, Is(sentinel, wrapped))
}

func TestWrapTwice(t *testing.T) {
	sentinel := New("boom")
	first := sentinel.Wrap(New("first"))
	second := first.Wrap(New("second"))

	// both derive from the same sentinel
	assert.True(t, Is(first, sentinel))
	assert.True(t, Is(second, sentinel))
	assert.Equal(t, "boom: second", second.Error())
}

func TestMessageChain(t *testing.T) {
	e := New("outer").Wrap(New("inner"))
	assert.Equal(t, "outer: inner", e.Error())
}
