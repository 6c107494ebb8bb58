package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternReturnsSameHandle(t *testing.T) {
	table := NewTable()

	a := table.Intern("foo")
	b := table.Intern("foo")
	c := table.Intern("bar")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "foo", table.Name(a))
	assert.Equal(t, "bar", c.String())
}

func TestLookupDoesNotIntern(t *testing.T) {
	table := NewTable()

	_, ok := table.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())

	sym := table.Intern("present")
	found, ok := table.Lookup("present")
	assert.True(t, ok)
	assert.Same(t, sym, found)
}

func TestEmptyName(t *testing.T) {
	table := NewTable()
	empty := table.Intern("")
	assert.Equal(t, "", empty.String())

	var nilSym *Symbol
	assert.Equal(t, "", nilSym.String())
}
