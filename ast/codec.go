package ast

import "fmt"

// Encode projects a node and everything below it into a plain keyed
// structure suitable for persistence or inspection. Child nodes become
// nested map[string]any values and node lists become []any, so the
// result survives a trip through encoding/json or yaml unchanged.
func Encode(n Node) map[string]any {
	m := map[string]any{
		"kind":   n.Kind().String(),
		"offset": n.Offset(),
	}
	switch n := n.(type) {
	case *NamedType:
		m["name"] = n.Name
	case *GenericType:
		m["inner"] = Encode(n.Inner)
		m["args"] = encodeList(n.Args)
	case *UnionType:
		m["members"] = encodeList(n.Members)
	case *IntersectionType:
		m["members"] = encodeList(n.Members)
	case *NullableType:
		m["inner"] = Encode(n.Inner)
	case *ArrayType:
		m["elem"] = Encode(n.Elem)
	case *ShapeType:
		m["name"] = n.Name
		m["sealed"] = n.Sealed
		fields := make([]any, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = Encode(f)
		}
		m["fields"] = fields
	case *ShapeField:
		if n.Key != nil {
			m["key"] = Encode(n.Key)
		}
		m["optional"] = n.Optional
		m["value"] = Encode(n.Value)
	case *CallableType:
		m["name"] = n.Name
		params := make([]any, len(n.Params))
		for i, p := range n.Params {
			params[i] = Encode(p)
		}
		m["params"] = params
		if n.Return != nil {
			m["return"] = Encode(n.Return)
		}
	case *Argument:
		m["value"] = Encode(n.Value)
		m["variadic"] = n.Variadic
		m["optional"] = n.Optional
	case *ConditionalType:
		m["subject"] = Encode(n.Subject)
		m["negated"] = n.Negated
		m["target"] = Encode(n.Target)
		m["then"] = Encode(n.Then)
		m["else"] = Encode(n.Else)
	case *IntLiteral:
		m["value"] = n.Value
		m["raw"] = n.Raw
	case *StringLiteral:
		m["value"] = n.Value
		m["raw"] = n.Raw
	default:
		panic(fmt.Sprintf("ast: cannot encode node of type %T", n))
	}
	return m
}

func encodeList(stmts []TypeStmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = Encode(s)
	}
	return out
}

// Decode reconstructs a node from the structure produced by Encode.
// Every required field must be present and well typed; a missing or
// ill-typed field is an error naming the field, never a silently
// defaulted value.
func Decode(m map[string]any) (Node, error) {
	name, err := requireString(m, "kind")
	if err != nil {
		return nil, err
	}
	kind, ok := kindByName[name]
	if !ok || kind == KindInvalid {
		return nil, fmt.Errorf("ast: decode: unknown node kind %q", name)
	}
	off, err := requireInt(m, "offset")
	if err != nil {
		return nil, decodeErr(kind, err)
	}
	if off < 0 {
		return nil, fmt.Errorf("ast: decode %s: negative offset %d", kind, off)
	}

	switch kind {
	case KindNamed:
		name, err := requireString(m, "name")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &NamedType{Off: off, Name: name}, nil

	case KindGeneric:
		inner, err := requireStmt(m, "inner")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		args, err := requireStmtList(m, "args")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("ast: decode %s: empty type-argument list", kind)
		}
		return &GenericType{Off: off, Inner: inner, Args: args}, nil

	case KindUnion:
		members, err := requireStmtList(m, "members")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &UnionType{Off: off, Members: members}, nil

	case KindIntersection:
		members, err := requireStmtList(m, "members")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &IntersectionType{Off: off, Members: members}, nil

	case KindNullable:
		inner, err := requireStmt(m, "inner")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &NullableType{Off: off, Inner: inner}, nil

	case KindArray:
		elem, err := requireStmt(m, "elem")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &ArrayType{Off: off, Elem: elem}, nil

	case KindShape:
		name, err := requireString(m, "name")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		sealed, err := requireBool(m, "sealed")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		raw, err := requireList(m, "fields")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		fields := make([]*ShapeField, len(raw))
		for i, f := range raw {
			node, err := decodeChild(f)
			if err != nil {
				return nil, decodeErr(kind, err)
			}
			field, ok := node.(*ShapeField)
			if !ok {
				return nil, fmt.Errorf("ast: decode %s: field %d is %s, want shape_field", kind, i, node.Kind())
			}
			fields[i] = field
		}
		return &ShapeType{Off: off, Name: name, Fields: fields, Sealed: sealed}, nil

	case KindShapeField:
		var key Node
		if raw, ok := m["key"]; ok {
			key, err = decodeChild(raw)
			if err != nil {
				return nil, decodeErr(kind, err)
			}
		}
		optional, err := requireBool(m, "optional")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		value, err := requireStmt(m, "value")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &ShapeField{Off: off, Key: key, Optional: optional, Value: value}, nil

	case KindCallable:
		name, err := requireString(m, "name")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		raw, err := requireList(m, "params")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		params := make([]*Argument, len(raw))
		for i, p := range raw {
			node, err := decodeChild(p)
			if err != nil {
				return nil, decodeErr(kind, err)
			}
			arg, ok := node.(*Argument)
			if !ok {
				return nil, fmt.Errorf("ast: decode %s: param %d is %s, want argument", kind, i, node.Kind())
			}
			params[i] = arg
		}
		var ret TypeStmt
		if raw, ok := m["return"]; ok {
			ret, err = decodeChildStmt(raw)
			if err != nil {
				return nil, decodeErr(kind, err)
			}
		}
		return &CallableType{Off: off, Name: name, Params: params, Return: ret}, nil

	case KindArgument:
		value, err := requireStmt(m, "value")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		variadic, err := requireBool(m, "variadic")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		optional, err := requireBool(m, "optional")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &Argument{Off: off, Value: value, Variadic: variadic, Optional: optional}, nil

	case KindConditional:
		subject, err := requireStmt(m, "subject")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		negated, err := requireBool(m, "negated")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		target, err := requireStmt(m, "target")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		then, err := requireStmt(m, "then")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		els, err := requireStmt(m, "else")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &ConditionalType{Off: off, Subject: subject, Negated: negated, Target: target, Then: then, Else: els}, nil

	case KindIntLiteral:
		value, err := requireInt64(m, "value")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		raw, err := requireString(m, "raw")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &IntLiteral{Off: off, Value: value, Raw: raw}, nil

	case KindStringLiteral:
		value, err := requireString(m, "value")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		raw, err := requireString(m, "raw")
		if err != nil {
			return nil, decodeErr(kind, err)
		}
		return &StringLiteral{Off: off, Value: value, Raw: raw}, nil

	default:
		return nil, fmt.Errorf("ast: decode: unsupported kind %s", kind)
	}
}

// DecodeStmt is Decode restricted to nodes that are complete type
// statements.
func DecodeStmt(m map[string]any) (TypeStmt, error) {
	n, err := Decode(m)
	if err != nil {
		return nil, err
	}
	stmt, ok := n.(TypeStmt)
	if !ok {
		return nil, fmt.Errorf("ast: decode: %s is not a type statement", n.Kind())
	}
	return stmt, nil
}

func decodeErr(kind Kind, err error) error {
	return fmt.Errorf("ast: decode %s: %w", kind, err)
}

func decodeChild(raw any) (Node, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("child node is %T, want map[string]any", raw)
	}
	return Decode(m)
}

func decodeChildStmt(raw any) (TypeStmt, error) {
	n, err := decodeChild(raw)
	if err != nil {
		return nil, err
	}
	stmt, ok := n.(TypeStmt)
	if !ok {
		return nil, fmt.Errorf("child node %s is not a type statement", n.Kind())
	}
	return stmt, nil
}

func requireField(m map[string]any, field string) (any, error) {
	v, ok := m[field]
	if !ok {
		return nil, fmt.Errorf("missing required field %q", field)
	}
	return v, nil
}

func requireString(m map[string]any, field string) (string, error) {
	v, err := requireField(m, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is %T, want string", field, v)
	}
	return s, nil
}

func requireBool(m map[string]any, field string) (bool, error) {
	v, err := requireField(m, field)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q is %T, want bool", field, v)
	}
	return b, nil
}

func requireInt64(m map[string]any, field string) (int64, error) {
	v, err := requireField(m, field)
	if err != nil {
		return 0, err
	}
	// encoding/json hands back float64, yaml hands back int; accept
	// the numeric representations a round trip can produce.
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("field %q value %v is not an integer", field, v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %q is %T, want integer", field, v)
	}
}

func requireInt(m map[string]any, field string) (int, error) {
	v, err := requireInt64(m, field)
	return int(v), err
}

func requireStmt(m map[string]any, field string) (TypeStmt, error) {
	v, err := requireField(m, field)
	if err != nil {
		return nil, err
	}
	return decodeChildStmt(v)
}

func requireList(m map[string]any, field string) ([]any, error) {
	v, err := requireField(m, field)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, want list", field, v)
	}
	return list, nil
}

func requireStmtList(m map[string]any, field string) ([]TypeStmt, error) {
	raw, err := requireList(m, field)
	if err != nil {
		return nil, err
	}
	out := make([]TypeStmt, len(raw))
	for i, v := range raw {
		stmt, err := decodeChildStmt(v)
		if err != nil {
			return nil, fmt.Errorf("field %q element %d: %w", field, i, err)
		}
		out[i] = stmt
	}
	return out, nil
}
