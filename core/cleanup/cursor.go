// Package cleanup — line cursor.
package cleanup

// cursor is a forward-only reader over a line sequence with lookahead.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

// done reports whether every line has been consumed.
func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

// next returns the current line and advances past it.
func (c *cursor) next() string {
	line := c.lines[c.pos]
	c.pos++
	return line
}

// peek returns the line n positions ahead of the cursor without consuming
// it. peek(0) is the line next() would return.
func (c *cursor) peek(n int) (string, bool) {
	i := c.pos + n
	if n < 0 || i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

// advance consumes n lines, stopping at the end of input.
func (c *cursor) advance(n int) {
	c.pos = min(c.pos+n, len(c.lines))
}
