package parser

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsIdent reports whether tok matches [a-zA-Z_]\w*.
func IsIdent(tok string) bool {
	if tok == "" || !isIdentStart(tok[0]) {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if !isIdentPart(tok[i]) {
			return false
		}
	}
	return true
}

// IsIntLiteral reports whether tok is a non-negative decimal literal.
func IsIntLiteral(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isDigit(tok[i]) {
			return false
		}
	}
	return true
}

// IsStringLiteral reports whether tok is fully wrapped in double quotes.
// No escape processing happens anywhere in the language.
func IsStringLiteral(tok string) bool {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return false
	}
	for i := 1; i < len(tok)-1; i++ {
		if tok[i] == '\n' || tok[i] == '\r' {
			return false
		}
	}
	return true
}

func unquoteString(tok string) string {
	return tok[1 : len(tok)-1]
}

func isArithOp(tok string) bool {
	switch tok {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

func isCompareOp(tok string) bool {
	switch tok {
	case "<", ">", "==":
		return true
	}
	return false
}
