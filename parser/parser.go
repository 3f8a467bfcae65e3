package parser

import (
	"strconv"

	"github.com/gosuda/flatscript/ast"
)

// Parse builds a Program from a token sequence produced by an external
// tokenizer. Parsing stops at the first mismatch with a *SyntaxError.
func Parse(tokens []string) (*ast.Program, error) {
	p := &parser{tokens: tokens}
	body := []ast.Statement{}
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &ast.Program{Body: body}, nil
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) atEOF() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() string {
	if p.atEOF() {
		return eofToken
	}
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) string {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return eofToken
	}
	return p.tokens[i]
}

func (p *parser) errorf(expected string) *SyntaxError {
	return &SyntaxError{Pos: p.pos, Expected: expected, Actual: p.peek()}
}

// next returns the current token whatever it is; only end of input fails.
func (p *parser) next(expected string) (string, error) {
	if p.atEOF() {
		return "", p.errorf(expected)
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

func (p *parser) consume(expected string) error {
	if p.atEOF() || p.tokens[p.pos] != expected {
		return p.errorf(strconv.Quote(expected))
	}
	p.pos++
	return nil
}

func (p *parser) ident() (string, error) {
	if p.atEOF() || !IsIdent(p.tokens[p.pos]) {
		return "", p.errorf("identifier")
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.peek() {
	case "int":
		p.pos++
		return p.parseBinding(true)
	case "print":
		p.pos++
		tok, err := p.next("token")
		if err != nil {
			return nil, err
		}
		if err := p.consume(";"); err != nil {
			return nil, err
		}
		return ast.PrintStmt{Token: tok}, nil
	case "read":
		p.pos++
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if err := p.consume(";"); err != nil {
			return nil, err
		}
		return ast.ReadStmt{Name: name}, nil
	case "if":
		p.pos++
		return p.parseIf()
	case "while":
		p.pos++
		return p.parseWhile()
	case "for":
		p.pos++
		return p.parseFor()
	case "fun":
		p.pos++
		return p.parseFunction()
	case "return":
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(";"); err != nil {
			return nil, err
		}
		return ast.ReturnStmt{Value: value}, nil
	}

	if p.atEOF() || !IsIdent(p.peek()) {
		return nil, p.errorf("statement")
	}
	switch p.peekAt(1) {
	case "=":
		return p.parseBinding(false)
	case "(":
		name := p.tokens[p.pos]
		p.pos++
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if err := p.consume(";"); err != nil {
			return nil, err
		}
		return ast.CallStmt{Name: name, Args: args}, nil
	}
	p.pos++
	return nil, p.errorf(`"=" or "("`)
}

// parseBinding handles NAME = EXPR ; for both declarations and assignments.
func (p *parser) parseBinding(declare bool) (ast.Statement, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.consume("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consume(";"); err != nil {
		return nil, err
	}
	if declare {
		return ast.DeclareStmt{Name: name, Value: value}, nil
	}
	return ast.AssignStmt{Name: name, Value: value}, nil
}

func (p *parser) parseIf() (ast.Statement, error) {
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := ast.IfStmt{Cond: cond, Then: then}
	if p.peek() == "else" {
		p.pos++
		els, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}
	return stmt, nil
}

func (p *parser) parseWhile() (ast.Statement, error) {
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.WhileStmt{Cond: cond, Body: body}, nil
}

// parseFor reads for ( INIT COND ; INC ) { ... }. INIT and INC are whole
// statements, so each carries its own terminating ";".
func (p *parser) parseFor() (ast.Statement, error) {
	if err := p.consume("("); err != nil {
		return nil, err
	}
	init, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if err := p.consume(";"); err != nil {
		return nil, err
	}
	inc, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.consume(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.ForStmt{Init: init, Cond: cond, Inc: inc, Body: body}, nil
}

func (p *parser) parseFunction() (ast.Statement, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.consume("("); err != nil {
		return nil, err
	}
	params := []string{}
	if p.peek() != ")" {
		for {
			param, err := p.ident()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.peek() != "," {
				break
			}
			p.pos++
		}
	}
	if err := p.consume(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *parser) parseBlock() ([]ast.Statement, error) {
	if err := p.consume("{"); err != nil {
		return nil, err
	}
	stmts := []ast.Statement{}
	for p.peek() != "}" {
		if p.atEOF() {
			return nil, p.errorf(`"}"`)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.pos++
	return stmts, nil
}

// parseArgs reads ( TOKEN , TOKEN ... ). Arguments stay raw tokens and are
// resolved by the interpreter in the caller's frame.
func (p *parser) parseArgs() ([]string, error) {
	if err := p.consume("("); err != nil {
		return nil, err
	}
	args := []string{}
	if p.peek() != ")" {
		for {
			if p.peek() == ")" || p.peek() == "," {
				return nil, p.errorf("argument")
			}
			arg, err := p.next("argument")
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek() != "," {
				break
			}
			p.pos++
		}
	}
	if err := p.consume(")"); err != nil {
		return nil, err
	}
	return args, nil
}
