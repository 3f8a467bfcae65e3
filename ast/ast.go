package ast

// Program is the parsed form of a whole token sequence.
type Program struct {
	Body []Statement
}

type Statement interface {
	isStatement()
}

// DeclareStmt introduces or overwrites a binding: int NAME = EXPR ;
type DeclareStmt struct {
	Name  string
	Value Expr
}

func (DeclareStmt) isStatement() {}

// AssignStmt writes NAME = EXPR ; the name need not be declared.
type AssignStmt struct {
	Name  string
	Value Expr
}

func (AssignStmt) isStatement() {}

// PrintStmt keeps the raw token; it is resolved only at run time.
type PrintStmt struct {
	Token string
}

func (PrintStmt) isStatement() {}

type ReadStmt struct {
	Name string
}

func (ReadStmt) isStatement() {}

// IfStmt with a nil Else has no else branch.
type IfStmt struct {
	Cond Condition
	Then []Statement
	Else []Statement
}

func (IfStmt) isStatement() {}

type WhileStmt struct {
	Cond Condition
	Body []Statement
}

func (WhileStmt) isStatement() {}

type ForStmt struct {
	Init Statement
	Cond Condition
	Inc  Statement
	Body []Statement
}

func (ForStmt) isStatement() {}

type FunctionStmt struct {
	Name   string
	Params []string
	Body   []Statement
}

func (FunctionStmt) isStatement() {}

type CallStmt struct {
	Name string
	Args []string
}

func (CallStmt) isStatement() {}

type ReturnStmt struct {
	Value Expr
}

func (ReturnStmt) isStatement() {}

// Condition compares two raw operand tokens with <, > or ==.
type Condition struct {
	Left  string
	Op    string
	Right string
}

type Expr interface {
	isExpr()
}

type IntLit struct {
	Value int64
}

func (IntLit) isExpr() {}

// StringLit holds the literal text with the surrounding quotes stripped.
type StringLit struct {
	Value string
}

func (StringLit) isExpr() {}

// BinaryExpr applies one of + - * / to two raw operand tokens.
type BinaryExpr struct {
	Left  string
	Op    string
	Right string
}

func (BinaryExpr) isExpr() {}

type CallExpr struct {
	Name string
	Args []string
}

func (CallExpr) isExpr() {}
