// File: visitor.go
// Title: AST Visitor Pattern
// Description: Visitor interface, depth-first inspection, an indented tree
//              printer and a statistics collector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Visitor defines the interface for visiting AST nodes
type Visitor interface {
	VisitVar(expr Var) interface{}
	VisitCall(expr Call) interface{}
	VisitLambda(expr Lambda) interface{}
	VisitInteger(expr Integer) interface{}
	VisitSingle(expr Single) interface{}
	VisitBoolean(expr Boolean) interface{}
	VisitString(expr String) interface{}
	VisitDef(expr Def) interface{}
	VisitEnum(expr Enum) interface{}
	VisitUnit(expr Unit) interface{}
}

func (e Var) Accept(v Visitor) interface{}     { return v.VisitVar(e) }
func (e Call) Accept(v Visitor) interface{}    { return v.VisitCall(e) }
func (e Lambda) Accept(v Visitor) interface{}  { return v.VisitLambda(e) }
func (e Integer) Accept(v Visitor) interface{} { return v.VisitInteger(e) }
func (e Single) Accept(v Visitor) interface{}  { return v.VisitSingle(e) }
func (e Boolean) Accept(v Visitor) interface{} { return v.VisitBoolean(e) }
func (e String) Accept(v Visitor) interface{}  { return v.VisitString(e) }
func (e Def) Accept(v Visitor) interface{}     { return v.VisitDef(e) }
func (e Enum) Accept(v Visitor) interface{}    { return v.VisitEnum(e) }
func (e Unit) Accept(v Visitor) interface{}    { return v.VisitUnit(e) }

// BaseVisitor visits all children and returns nil. Embed it to override
// only the node types of interest.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitVar(Var) interface{} { return nil }

func (bv *BaseVisitor) VisitCall(expr Call) interface{} {
	expr.Fn.Accept(bv)
	expr.Arg.Accept(bv)
	return nil
}

func (bv *BaseVisitor) VisitLambda(expr Lambda) interface{} {
	expr.Body.Accept(bv)
	return nil
}

func (bv *BaseVisitor) VisitInteger(Integer) interface{} { return nil }
func (bv *BaseVisitor) VisitSingle(Single) interface{}   { return nil }
func (bv *BaseVisitor) VisitBoolean(Boolean) interface{} { return nil }
func (bv *BaseVisitor) VisitString(String) interface{}   { return nil }

func (bv *BaseVisitor) VisitDef(expr Def) interface{} {
	expr.Value.Accept(bv)
	return nil
}

func (bv *BaseVisitor) VisitEnum(Enum) interface{} { return nil }
func (bv *BaseVisitor) VisitUnit(Unit) interface{} { return nil }

// Children returns the direct sub-expressions of a node
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case Call:
		return []Expr{n.Fn, n.Arg}
	case Lambda:
		return []Expr{n.Body}
	case Def:
		return []Expr{n.Value}
	default:
		return nil
	}
}

// Inspect traverses the tree depth-first, calling fn with each node and its
// depth (the root has depth 1). Children are skipped when fn returns false.
func Inspect(e Expr, fn func(node Expr, depth int) bool) {
	inspect(e, 1, fn)
}

func inspect(e Expr, depth int, fn func(Expr, int) bool) {
	if e == nil || !fn(e, depth) {
		return
	}
	for _, child := range Children(e) {
		inspect(child, depth+1, fn)
	}
}

// TreePrinter renders an indented, one-node-per-line tree
type TreePrinter struct {
	buffer strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders e and returns the accumulated output
func (tp *TreePrinter) Print(e Expr) string {
	e.Accept(tp)
	return tp.buffer.String()
}

// String returns the accumulated output
func (tp *TreePrinter) String() string {
	return tp.buffer.String()
}

// Reset clears the internal buffer
func (tp *TreePrinter) Reset() {
	tp.buffer.Reset()
	tp.indent = 0
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	tp.buffer.WriteString(strings.Repeat("  ", tp.indent))
	tp.buffer.WriteString(fmt.Sprintf(format, args...))
	tp.buffer.WriteString("\n")
}

func (tp *TreePrinter) nested(children ...Expr) {
	tp.indent++
	for _, c := range children {
		c.Accept(tp)
	}
	tp.indent--
}

func (tp *TreePrinter) VisitVar(expr Var) interface{} {
	tp.line("Var %s", expr.Name)
	return nil
}

func (tp *TreePrinter) VisitCall(expr Call) interface{} {
	tp.line("Call")
	tp.nested(expr.Fn, expr.Arg)
	return nil
}

func (tp *TreePrinter) VisitLambda(expr Lambda) interface{} {
	tp.line("Lambda %s", expr.Param)
	tp.nested(expr.Body)
	return nil
}

func (tp *TreePrinter) VisitInteger(expr Integer) interface{} {
	tp.line("Integer %d", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitSingle(expr Single) interface{} {
	tp.line("Single %s", expr.String())
	return nil
}

func (tp *TreePrinter) VisitBoolean(expr Boolean) interface{} {
	tp.line("Boolean %t", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitString(expr String) interface{} {
	tp.line("String %q", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitDef(expr Def) interface{} {
	tp.line("Def %s", expr.Name)
	tp.nested(expr.Value)
	return nil
}

func (tp *TreePrinter) VisitEnum(expr Enum) interface{} {
	tp.line("Enum %s", expr.Name)
	tp.indent++
	for i, v := range expr.Variants {
		tp.line("Variant %s/%d", v, expr.Arities[i])
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitUnit(Unit) interface{} {
	tp.line("Unit")
	return nil
}

// Stats summarizes a set of expressions
type Stats struct {
	Forms    int
	Nodes    int
	MaxDepth int
	ByType   map[string]int
}

// Collect computes statistics over top-level forms
func Collect(forms []Expr) Stats {
	s := Stats{Forms: len(forms), ByType: make(map[string]int)}
	for _, f := range forms {
		Inspect(f, func(node Expr, depth int) bool {
			s.Nodes++
			s.ByType[node.Type()]++
			if depth > s.MaxDepth {
				s.MaxDepth = depth
			}
			return true
		})
	}
	return s
}

// String returns a compact summary such as "3 forms, 9 nodes, depth 4"
func (s Stats) String() string {
	types := make([]string, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	sort.Strings(types)

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s=%d", t, s.ByType[t]))
	}
	return fmt.Sprintf("%d forms, %d nodes, depth %d [%s]", s.Forms, s.Nodes, s.MaxDepth, strings.Join(parts, " "))
}
