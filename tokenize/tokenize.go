// Package tokenize splits flatscript source text into the token sequence the
// parser consumes. It is host-side plumbing: the parser and runtime never
// depend on it.
package tokenize

import (
	"fmt"
	"strings"
	"text/scanner"
)

// Split returns identifiers, integer literals, quoted strings (quotes kept),
// "==" and single-character punctuation as separate tokens. Line comments
// starting with "//" and block comments are skipped.
func Split(src string) ([]string, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	s.IsIdentRune = func(ch rune, i int) bool {
		return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (i > 0 && ch >= '0' && ch <= '9')
	}
	var scanErr error
	s.Error = func(s *scanner.Scanner, msg string) {
		if scanErr == nil {
			scanErr = fmt.Errorf("%s: %s", s.Pos(), msg)
		}
	}

	tokens := []string{}
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if scanErr != nil {
			return nil, scanErr
		}
		text := s.TokenText()
		if tok == '=' && s.Peek() == '=' {
			s.Next()
			text = "=="
		}
		tokens = append(tokens, text)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return tokens, nil
}
