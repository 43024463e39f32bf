// File: nodes.go
// Title: AST Node Definitions
// Description: Expression node types and their canonical s-expression
//              rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial node definitions

package ast

import (
	"strconv"
	"strings"
)

// Expr is implemented by every AST node
type Expr interface {
	// String returns the canonical s-expression form of the node
	String() string

	// Type returns the lowercase node type name, e.g. "call"
	Type() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	exprNode() // marker method
}

// Node type names
const (
	TypeVar     = "var"
	TypeCall    = "call"
	TypeLambda  = "lambda"
	TypeInteger = "integer"
	TypeSingle  = "single"
	TypeBoolean = "boolean"
	TypeString  = "string"
	TypeDef     = "def"
	TypeEnum    = "enum"
	TypeUnit    = "unit"
)

// Var is a variable reference
type Var struct {
	Name string
}

// Call applies Fn to a single argument
type Call struct {
	Fn  Expr
	Arg Expr
}

// Lambda is a single-parameter abstraction
type Lambda struct {
	Param string
	Body  Expr
}

// Integer is a 32-bit integer literal
type Integer struct {
	Value int32
}

// Single is a 32-bit float literal
type Single struct {
	Value float32
}

// Boolean is a boolean literal. The parser has no boolean token and never
// produces one; evaluators may construct it.
type Boolean struct {
	Value bool
}

// String is a string literal
type String struct {
	Value string
}

// Def binds Name to Value
type Def struct {
	Name  string
	Value Expr
}

// Enum declares an algebraic type. Arities[i] is the number of fields of
// Variants[i]; field names are not retained.
type Enum struct {
	Name     string
	Variants []string
	Arities  []int
}

// Unit is the empty form ()
type Unit struct{}

func (Var) exprNode()     {}
func (Call) exprNode()    {}
func (Lambda) exprNode()  {}
func (Integer) exprNode() {}
func (Single) exprNode()  {}
func (Boolean) exprNode() {}
func (String) exprNode()  {}
func (Def) exprNode()     {}
func (Enum) exprNode()    {}
func (Unit) exprNode()    {}

func (Var) Type() string     { return TypeVar }
func (Call) Type() string    { return TypeCall }
func (Lambda) Type() string  { return TypeLambda }
func (Integer) Type() string { return TypeInteger }
func (Single) Type() string  { return TypeSingle }
func (Boolean) Type() string { return TypeBoolean }
func (String) Type() string  { return TypeString }
func (Def) Type() string     { return TypeDef }
func (Enum) Type() string    { return TypeEnum }
func (Unit) Type() string    { return TypeUnit }

func (e Var) String() string { return e.Name }

func (e Integer) String() string { return strconv.FormatInt(int64(e.Value), 10) }

// String always renders a decimal point or exponent so floats stay
// distinguishable from integers.
func (e Single) String() string {
	s := strconv.FormatFloat(float64(e.Value), 'g', -1, 32)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

func (e Boolean) String() string { return strconv.FormatBool(e.Value) }

func (e String) String() string { return strconv.Quote(e.Value) }

func (Unit) String() string { return "()" }

func (e Def) String() string {
	return "(def " + e.Name + " " + exprString(e.Value) + ")"
}

// String renders a curried call chain as one application, e.g. (f a b)
func (e Call) String() string {
	head, args := e.Uncurry()
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, exprString(head))
	for _, arg := range args {
		parts = append(parts, exprString(arg))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// String renders nested lambdas as one abstraction, e.g. (lambda (x y) x)
func (e Lambda) String() string {
	params, body := e.Params()
	return "(lambda (" + strings.Join(params, " ") + ") " + exprString(body) + ")"
}

func (e Enum) String() string {
	var b strings.Builder
	b.WriteString("(enum ")
	b.WriteString(e.Name)
	for i, v := range e.Variants {
		b.WriteString(" (")
		b.WriteString(v)
		if i < len(e.Arities) {
			b.WriteString(" ")
			b.WriteString(strconv.Itoa(e.Arities[i]))
		}
		b.WriteString(")")
	}
	b.WriteString(")")
	return b.String()
}

// Uncurry returns the innermost function of a call chain and its arguments
// in application order.
func (e Call) Uncurry() (Expr, []Expr) {
	var args []Expr
	var fn Expr = e
	for {
		c, ok := fn.(Call)
		if !ok {
			break
		}
		args = append(args, c.Arg)
		fn = c.Fn
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return fn, args
}

// Params returns the parameters of a lambda chain, outermost first, and the
// innermost body.
func (e Lambda) Params() ([]string, Expr) {
	var params []string
	var body Expr = e
	for {
		l, ok := body.(Lambda)
		if !ok {
			break
		}
		params = append(params, l.Param)
		body = l.Body
	}
	return params, body
}

// Curry folds args left-to-right into nested calls on fn
func Curry(fn Expr, args ...Expr) Expr {
	for _, arg := range args {
		fn = Call{Fn: fn, Arg: arg}
	}
	return fn
}

// Abstract folds params right-to-left around body, so the first parameter
// becomes the outermost lambda.
func Abstract(params []string, body Expr) Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = Lambda{Param: params[i], Body: body}
	}
	return body
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
