package fsruntime

import (
	"strconv"
	"strings"
)

type ValueKind int

const (
	UndefinedKind ValueKind = iota
	NumberKind
	TextKind
)

func (k ValueKind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	default:
		return "undefined"
	}
}

// Value is the untyped cell stored in an environment. The zero Value is
// undefined, which is what unresolved names and failed arithmetic produce.
type Value struct {
	kind ValueKind
	n    float64
	s    string
}

func Undefined() Value {
	return Value{}
}

func Number(v float64) Value {
	return Value{kind: NumberKind, n: v}
}

func Text(v string) Value {
	return Value{kind: TextKind, s: v}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsUndefined() bool {
	return v.kind == UndefinedKind
}

// Float64 returns the numeric payload; text and undefined are not numbers.
func (v Value) Float64() (float64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.n, true
}

func (v Value) String() string {
	switch v.kind {
	case NumberKind:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case TextKind:
		return v.s
	default:
		return "undefined"
	}
}

// Resolve applies the operand rule used by expressions, conditions and call
// arguments: a base-10 integer token is a number, anything else is looked up
// in env alone. Unbound names resolve to undefined.
func Resolve(token string, env *Environment) Value {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Number(float64(n))
	}
	if v, ok := env.Get(token); ok {
		return v
	}
	return Undefined()
}

// ParseInput types a line read from the input channel.
func ParseInput(raw string) Value {
	if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
		return Number(float64(n))
	}
	return Text(raw)
}
