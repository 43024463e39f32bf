// File: doc.go
// Title: Abstract Syntax Tree Package Documentation
// Description: AST nodes produced by the sable parser together with
//              rendering, comparison, traversal and encoding helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package ast defines the expression tree handed from the parser to the
evaluator.

Expr is a closed sum type. Multi-argument calls are left-nested chains of
single-argument Call nodes and multi-parameter lambdas are right-nested
chains of single-parameter Lambda nodes:

	(f a b)            Call{Call{Var{f}, Var{a}}, Var{b}}
	(lambda (x y) x)   Lambda{x, Lambda{y, Var{x}}}

Nodes are values. They have no setters and the parser never changes a node
after handing it out, so trees may be shared freely between goroutines.
*/
package ast
