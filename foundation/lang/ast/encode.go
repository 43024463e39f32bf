// File: encode.go
// Title: Document Encoding
// Description: Converts expressions to and from tagged documents
//              (map[string]interface{}) for JSON, YAML and protobuf Struct
//              transport.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

import (
	"math"

	mdwerror "github.com/msto63/sable/foundation/core/error"
)

// Encode converts e into a document tagged with its node type. Only
// string, bool, float64, map and slice values are used so the result can be
// fed directly into structpb.NewStruct.
func Encode(e Expr) map[string]interface{} {
	doc := map[string]interface{}{"type": e.Type()}

	switch n := e.(type) {
	case Var:
		doc["name"] = n.Name
	case Call:
		doc["fn"] = Encode(n.Fn)
		doc["arg"] = Encode(n.Arg)
	case Lambda:
		doc["param"] = n.Param
		doc["body"] = Encode(n.Body)
	case Integer:
		doc["value"] = float64(n.Value)
	case Single:
		doc["value"] = float64(n.Value)
	case Boolean:
		doc["value"] = n.Value
	case String:
		doc["value"] = n.Value
	case Def:
		doc["name"] = n.Name
		doc["value"] = Encode(n.Value)
	case Enum:
		variants := make([]interface{}, len(n.Variants))
		for i, v := range n.Variants {
			variants[i] = v
		}
		arities := make([]interface{}, len(n.Arities))
		for i, a := range n.Arities {
			arities[i] = float64(a)
		}
		doc["name"] = n.Name
		doc["variants"] = variants
		doc["arities"] = arities
	}

	return doc
}

// EncodeAll encodes a sequence of forms
func EncodeAll(forms []Expr) []interface{} {
	out := make([]interface{}, len(forms))
	for i, f := range forms {
		out[i] = Encode(f)
	}
	return out
}

// Decode rebuilds an expression from a document produced by Encode
func Decode(doc map[string]interface{}) (Expr, error) {
	typ, _ := doc["type"].(string)

	switch typ {
	case TypeVar:
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		return Var{Name: name}, nil
	case TypeCall:
		fn, err := docExpr(doc, "fn")
		if err != nil {
			return nil, err
		}
		arg, err := docExpr(doc, "arg")
		if err != nil {
			return nil, err
		}
		return Call{Fn: fn, Arg: arg}, nil
	case TypeLambda:
		param, err := docString(doc, "param")
		if err != nil {
			return nil, err
		}
		body, err := docExpr(doc, "body")
		if err != nil {
			return nil, err
		}
		return Lambda{Param: param, Body: body}, nil
	case TypeInteger:
		v, err := docNumber(doc, "value")
		if err != nil {
			return nil, err
		}
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, decodeError("integer out of range: %v", v)
		}
		return Integer{Value: int32(v)}, nil
	case TypeSingle:
		v, err := docNumber(doc, "value")
		if err != nil {
			return nil, err
		}
		return Single{Value: float32(v)}, nil
	case TypeBoolean:
		v, ok := doc["value"].(bool)
		if !ok {
			return nil, decodeError("boolean without value")
		}
		return Boolean{Value: v}, nil
	case TypeString:
		v, err := docString(doc, "value")
		if err != nil {
			return nil, err
		}
		return String{Value: v}, nil
	case TypeDef:
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		value, err := docExpr(doc, "value")
		if err != nil {
			return nil, err
		}
		return Def{Name: name, Value: value}, nil
	case TypeEnum:
		return decodeEnum(doc)
	case TypeUnit:
		return Unit{}, nil
	default:
		return nil, decodeError("unknown node type %q", typ)
	}
}

// DecodeAll rebuilds a sequence of forms
func DecodeAll(docs []interface{}) ([]Expr, error) {
	forms := make([]Expr, 0, len(docs))
	for i, d := range docs {
		m, ok := d.(map[string]interface{})
		if !ok {
			return nil, decodeError("form %d is not a document", i)
		}
		e, err := Decode(m)
		if err != nil {
			return nil, err
		}
		forms = append(forms, e)
	}
	return forms, nil
}

func decodeEnum(doc map[string]interface{}) (Expr, error) {
	name, err := docString(doc, "name")
	if err != nil {
		return nil, err
	}
	rawVariants, _ := doc["variants"].([]interface{})
	rawArities, _ := doc["arities"].([]interface{})
	if len(rawVariants) != len(rawArities) {
		return nil, decodeError("enum %s has %d variants but %d arities", name, len(rawVariants), len(rawArities))
	}

	e := Enum{Name: name, Variants: make([]string, len(rawVariants)), Arities: make([]int, len(rawArities))}
	for i := range rawVariants {
		v, ok := rawVariants[i].(string)
		if !ok {
			return nil, decodeError("enum %s variant %d is not a string", name, i)
		}
		a, ok := toFloat(rawArities[i])
		if !ok {
			return nil, decodeError("enum %s arity %d is not a number", name, i)
		}
		e.Variants[i] = v
		e.Arities[i] = int(a)
	}
	return e, nil
}

func docString(doc map[string]interface{}, key string) (string, error) {
	s, ok := doc[key].(string)
	if !ok {
		return "", decodeError("%s node without %s", doc["type"], key)
	}
	return s, nil
}

func docNumber(doc map[string]interface{}, key string) (float64, error) {
	f, ok := toFloat(doc[key])
	if !ok {
		return 0, decodeError("%s node without numeric %s", doc["type"], key)
	}
	return f, nil
}

func docExpr(doc map[string]interface{}, key string) (Expr, error) {
	child, ok := doc[key].(map[string]interface{})
	if !ok {
		return nil, decodeError("%s node without %s", doc["type"], key)
	}
	return Decode(child)
}

// toFloat accepts the numeric types produced by JSON, YAML and structpb
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func decodeError(format string, args ...interface{}) error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("ast.Decode")
}
