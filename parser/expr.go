package parser

import (
	"strconv"

	"github.com/gosuda/flatscript/ast"
)

func (p *parser) parseParenCondition() (ast.Condition, error) {
	if err := p.consume("("); err != nil {
		return ast.Condition{}, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return ast.Condition{}, err
	}
	if err := p.consume(")"); err != nil {
		return ast.Condition{}, err
	}
	return cond, nil
}

// parseCondition reads exactly three tokens: LEFT OP RIGHT.
func (p *parser) parseCondition() (ast.Condition, error) {
	left, op, right, err := p.parseFlat("comparison operator", isCompareOp)
	if err != nil {
		return ast.Condition{}, err
	}
	return ast.Condition{Left: left, Op: op, Right: right}, nil
}

// parseExpr never recurses. A literal first token is the whole expression,
// an identifier followed by "(" is a call, anything else is LEFT OP RIGHT.
func (p *parser) parseExpr() (ast.Expr, error) {
	tok := p.peek()
	switch {
	case p.atEOF():
		return nil, p.errorf("expression")
	case IsStringLiteral(tok):
		p.pos++
		return ast.StringLit{Value: unquoteString(tok)}, nil
	case IsIntLiteral(tok):
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, p.errorf("integer literal in range")
		}
		p.pos++
		return ast.IntLit{Value: v}, nil
	case IsIdent(tok) && p.peekAt(1) == "(":
		p.pos++
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return ast.CallExpr{Name: tok, Args: args}, nil
	}
	left, op, right, err := p.parseFlat("arithmetic operator", isArithOp)
	if err != nil {
		return nil, err
	}
	return ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
}

func (p *parser) parseFlat(opName string, validOp func(string) bool) (string, string, string, error) {
	left, err := p.next("operand")
	if err != nil {
		return "", "", "", err
	}
	if p.atEOF() || !validOp(p.peek()) {
		return "", "", "", p.errorf(opName)
	}
	op := p.tokens[p.pos]
	p.pos++
	right, err := p.next("operand")
	if err != nil {
		return "", "", "", err
	}
	return left, op, right, nil
}
