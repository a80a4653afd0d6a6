package parser

import "strings"

// StdinCursor hands out whitespace-delimited tokens from a task's stdin
// buffer, one at a time, in order. The translator never reads
// process-global stdin, so the same source plus the same stdin buffer
// always produces byte-identical C++ output.
type StdinCursor struct {
	tokens []string
	pos    int
}

// NewStdinCursor splits stdin into whitespace-delimited tokens.
func NewStdinCursor(stdin string) *StdinCursor {
	return &StdinCursor{tokens: strings.Fields(stdin)}
}

// Next returns the next token and advances the cursor, or ("", false) once
// the buffer is exhausted.
func (c *StdinCursor) Next() (string, bool) {
	if c == nil || c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}
