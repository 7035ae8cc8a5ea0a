package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeSet_KeepsAcceptanceOrder(t *testing.T) {
	s := newCodeSet(4)

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))
	assert.True(t, s.Add("c"))

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []string{"b", "a", "c"}, s.Codes())
}
