package cleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFenceLanguage(t *testing.T) {
	tests := []struct {
		marker string
		want   string
	}{
		{marker: "```", want: "bash"},
		{marker: "```Python", want: "python"},
		{marker: "``` yaml", want: "yaml"},
		{marker: "```go```", want: "go"},
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			assert.Equal(t, tt.want, fenceLanguage(tt.marker))
		})
	}
}

func TestFenced(t *testing.T) {
	assert.Equal(t, []string{"```bash", "ls -la", "```", ""}, fenced("bash", "ls -la"))
}

func TestCursor(t *testing.T) {
	c := newCursor([]string{"a", "b", "c"})

	line, ok := c.peek(2)
	assert.True(t, ok)
	assert.Equal(t, "c", line)

	_, ok = c.peek(3)
	assert.False(t, ok)
	_, ok = c.peek(-1)
	assert.False(t, ok)

	assert.Equal(t, "a", c.next())
	c.advance(1)
	assert.Equal(t, "c", c.next())
	assert.True(t, c.done())

	c.advance(5)
	assert.True(t, c.done())
}
