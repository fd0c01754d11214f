package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewFindTranslatesMissSentinel(t *testing.T) {
	v := New([]byte("abracadabra"))

	assert.Equal(t, 4, v.Find([]byte("cad")))
	assert.Equal(t, NotFound, v.Find([]byte("xyz")))
	assert.Equal(t, 0, v.Find([]byte("")))
}

func TestViewContains(t *testing.T) {
	v := New([]byte("the quick brown fox"))
	assert.True(t, v.Contains([]byte("quick")))
	assert.False(t, v.Contains([]byte("slow")))
}

func TestViewStartsEndsWith(t *testing.T) {
	v := New([]byte("banana"))
	assert.True(t, v.StartsWith([]byte("ban")))
	assert.False(t, v.StartsWith([]byte("nan")))
	assert.True(t, v.EndsWith([]byte("ana")))
	assert.False(t, v.EndsWith([]byte("ban")))

	empty := New(nil)
	assert.True(t, empty.StartsWith(nil))
	assert.False(t, empty.StartsWith([]byte("x")))
}

func TestViewSubstr(t *testing.T) {
	v := New([]byte("hello world"))
	sub := v.Substr(6, 11)
	assert.Equal(t, "world", string(sub.Bytes()))
}

func TestViewCompare(t *testing.T) {
	a := New([]byte("abc"))
	b := New([]byte("abd"))
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(New([]byte("abc"))))
}

func TestViewHashStableWithinProcess(t *testing.T) {
	a := New([]byte("consistent"))
	b := New([]byte("consistent"))
	assert.Equal(t, a.Hash(), b.Hash())

	c := New([]byte("different"))
	assert.NotEqual(t, a.Hash(), c.Hash())
}
