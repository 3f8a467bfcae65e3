package parser

import (
	"fmt"
	"strconv"
)

const eofToken = "<eof>"

// SyntaxError reports the first token that did not match the grammar.
// Pos is the index of that token in the input sequence.
type SyntaxError struct {
	Pos      int
	Expected string
	Actual   string
}

func (e *SyntaxError) Error() string {
	actual := e.Actual
	if actual != eofToken {
		actual = strconv.Quote(actual)
	}
	return fmt.Sprintf("syntax error at token %d: expected %s, got %s", e.Pos, e.Expected, actual)
}
