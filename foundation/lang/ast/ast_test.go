// File: ast_test.go
// Title: AST Unit Tests
// Description: Tests for node rendering, currying helpers, equality,
//              traversal and document encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package ast

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func pairEnum() Enum {
	return Enum{Name: "Pair", Variants: []string{"Mk"}, Arities: []int{2}}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"var", Var{Name: "x"}, "x"},
		{"integer", Integer{Value: -5}, "-5"},
		{"single whole", Single{Value: 2}, "2.0"},
		{"single fraction", Single{Value: 1.5}, "1.5"},
		{"boolean", Boolean{Value: true}, "true"},
		{"string", String{Value: "hi \"there\""}, `"hi \"there\""`},
		{"unit", Unit{}, "()"},
		{"def", Def{Name: "x", Value: Integer{Value: 5}}, "(def x 5)"},
		{"call", Curry(Var{Name: "f"}, Var{Name: "a"}, Var{Name: "b"}), "(f a b)"},
		{"lambda", Abstract([]string{"x", "y"}, Var{Name: "x"}), "(lambda (x y) x)"},
		{"lambda head call", Curry(Abstract([]string{"x"}, Var{Name: "x"}), Integer{Value: 1}), "((lambda (x) x) 1)"},
		{"enum", pairEnum(), "(enum Pair (Mk 2))"},
		{"empty enum", Enum{Name: "Void"}, "(enum Void)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurryIsLeftNested(t *testing.T) {
	got := Curry(Var{Name: "f"}, Var{Name: "a"}, Var{Name: "b"}, Var{Name: "c"})
	want := Call{
		Fn: Call{
			Fn:  Call{Fn: Var{Name: "f"}, Arg: Var{Name: "a"}},
			Arg: Var{Name: "b"},
		},
		Arg: Var{Name: "c"},
	}
	if !Equal(got, want) {
		t.Errorf("Curry() = %v, want left-nested chain", got)
	}

	head, args := got.(Call).Uncurry()
	if !Equal(head, Var{Name: "f"}) || len(args) != 3 || !Equal(args[0], Var{Name: "a"}) {
		t.Errorf("Uncurry() = %v %v", head, args)
	}
}

func TestAbstractIsRightNested(t *testing.T) {
	got := Abstract([]string{"x", "y"}, Var{Name: "x"})
	want := Lambda{Param: "x", Body: Lambda{Param: "y", Body: Var{Name: "x"}}}
	if !Equal(got, want) {
		t.Errorf("Abstract() = %#v, want %#v", got, want)
	}

	if Abstract(nil, Unit{}) != (Unit{}) {
		t.Error("Abstract() with no params should return the body")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"same var", Var{Name: "x"}, Var{Name: "x"}, true},
		{"different var", Var{Name: "x"}, Var{Name: "y"}, false},
		{"integer vs single", Integer{Value: 1}, Single{Value: 1}, false},
		{"enum arity", pairEnum(), Enum{Name: "Pair", Variants: []string{"Mk"}, Arities: []int{3}}, false},
		{"enum equal", pairEnum(), pairEnum(), true},
		{"nil both", nil, nil, true},
		{"nil one", nil, Unit{}, false},
		{"nested def", Def{Name: "f", Value: Unit{}}, Def{Name: "f", Value: Unit{}}, true},
		{"single nan", Single{Value: float32(math.NaN())}, Single{Value: float32(math.NaN())}, true},
		{"single nan vs number", Single{Value: float32(math.NaN())}, Single{Value: 1}, false},
		{"single signed zero", Single{Value: 0}, Single{Value: float32(math.Copysign(0, -1))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTreePrinter(t *testing.T) {
	expr := Def{Name: "id", Value: Abstract([]string{"x"}, Var{Name: "x"})}
	got := NewTreePrinter().Print(expr)
	want := "Def id\n  Lambda x\n    Var x\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	tp := NewTreePrinter()
	tp.Print(pairEnum())
	if !strings.Contains(tp.String(), "Variant Mk/2") {
		t.Errorf("enum tree = %q", tp.String())
	}
	tp.Reset()
	if tp.String() != "" {
		t.Error("Reset() should clear the buffer")
	}
}

func TestCollect(t *testing.T) {
	forms := []Expr{
		Def{Name: "x", Value: Integer{Value: 5}},
		Curry(Var{Name: "f"}, Var{Name: "x"}),
	}
	s := Collect(forms)

	if s.Forms != 2 {
		t.Errorf("Forms = %d, want 2", s.Forms)
	}
	if s.Nodes != 5 {
		t.Errorf("Nodes = %d, want 5", s.Nodes)
	}
	if s.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", s.MaxDepth)
	}
	if s.ByType[TypeVar] != 2 {
		t.Errorf("ByType[var] = %d, want 2", s.ByType[TypeVar])
	}
	if !strings.HasPrefix(s.String(), "2 forms, 5 nodes, depth 2") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	var seen []string
	Inspect(Curry(Var{Name: "f"}, Var{Name: "a"}), func(n Expr, _ int) bool {
		seen = append(seen, n.Type())
		return false
	})
	if len(seen) != 1 || seen[0] != TypeCall {
		t.Errorf("Inspect() visited %v", seen)
	}
}

func TestEncodeDecodeThroughJSON(t *testing.T) {
	forms := []Expr{
		Def{Name: "x", Value: Integer{Value: 5}},
		Curry(Abstract([]string{"x", "y"}, Var{Name: "x"}), Integer{Value: 1}, Single{Value: 2.5}),
		pairEnum(),
		String{Value: "s"},
		Boolean{Value: false},
		Unit{},
	}

	data, err := json.Marshal(EncodeAll(forms))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var docs []interface{}
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	got, err := DecodeAll(docs)
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}
	if !EqualAll(got, forms) {
		t.Errorf("DecodeAll() = %v, want %v", got, forms)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]interface{}
	}{
		{"unknown type", map[string]interface{}{"type": "macro"}},
		{"var without name", map[string]interface{}{"type": "var"}},
		{"integer fraction", map[string]interface{}{"type": "integer", "value": 1.5}},
		{"call without arg", map[string]interface{}{"type": "call", "fn": map[string]interface{}{"type": "unit"}}},
		{"enum mismatch", map[string]interface{}{"type": "enum", "name": "E", "variants": []interface{}{"A"}, "arities": []interface{}{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.doc); err == nil {
				t.Error("Decode() expected error")
			}
		})
	}
}
