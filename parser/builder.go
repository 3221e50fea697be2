package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/typelang/typeparse/ast"
	"github.com/typelang/typeparse/diag"
)

// shapeNames are the base identifiers a shape production may use. Any
// other identifier followed by '{' is syntactically a shape but not
// constructible, which is a semantic error rather than a syntax error.
var shapeNames = map[string]bool{
	"array":           true,
	"non-empty-array": true,
	"list":            true,
	"non-empty-list":  true,
	"object":          true,
}

// builder reduces raw productions into typed ast nodes, children
// before parents. It also owns the literal interning pools: within one
// parse call, reducing the same literal token twice yields the same
// node instance. Pools are keyed by the token's start offset, which is
// a stable identity for the token within a single source string, and
// they never outlive the call.
type builder struct {
	source string
	ints   map[int]*ast.IntLiteral
	strs   map[int]*ast.StringLiteral
}

func newBuilder(source string) *builder {
	return &builder{
		source: source,
		ints:   make(map[int]*ast.IntLiteral),
		strs:   make(map[int]*ast.StringLiteral),
	}
}

// reduce dispatches a raw production to its reducer. The raw types
// form a closed set, so an unknown production here is a bug in the
// grammar table and surfaces as an internal error.
func (b *builder) reduce(e rawExpr) (ast.TypeStmt, error) {
	switch v := e.(type) {
	case condExpr:
		return b.conditional(v)
	case unionExpr:
		return b.union(v)
	default:
		return nil, fmt.Errorf("no reducer for production %T", e)
	}
}

func (b *builder) conditional(v condExpr) (ast.TypeStmt, error) {
	subject, err := b.union(v.Subject)
	if err != nil {
		return nil, err
	}
	target, err := b.union(v.Target)
	if err != nil {
		return nil, err
	}
	then, err := b.reduce(v.Then)
	if err != nil {
		return nil, err
	}
	els, err := b.reduce(v.Else)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalType{
		Off:     v.Pos.Offset,
		Subject: subject,
		Negated: v.Negated,
		Target:  target,
		Then:    then,
		Else:    els,
	}, nil
}

func (b *builder) union(v unionExpr) (ast.TypeStmt, error) {
	first, err := b.intersection(v.First)
	if err != nil {
		return nil, err
	}
	if len(v.Rest) == 0 {
		return first, nil
	}
	members := make([]ast.TypeStmt, 0, len(v.Rest)+1)
	members = append(members, first)
	for _, r := range v.Rest {
		m, err := b.intersection(r)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return &ast.UnionType{Off: v.Pos.Offset, Members: members}, nil
}

func (b *builder) intersection(v interExpr) (ast.TypeStmt, error) {
	first, err := b.suffixed(v.First)
	if err != nil {
		return nil, err
	}
	if len(v.Rest) == 0 {
		return first, nil
	}
	members := make([]ast.TypeStmt, 0, len(v.Rest)+1)
	members = append(members, first)
	for _, r := range v.Rest {
		m, err := b.suffixed(r)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return &ast.IntersectionType{Off: v.Pos.Offset, Members: members}, nil
}

func (b *builder) suffixed(v suffixExpr) (ast.TypeStmt, error) {
	t, err := b.atom(v.Atom)
	if err != nil {
		return nil, err
	}
	for range v.Brackets {
		t = &ast.ArrayType{Off: v.Pos.Offset, Elem: t}
	}
	return t, nil
}

func (b *builder) atom(a rawAtom) (ast.TypeStmt, error) {
	switch v := a.(type) {
	case intLit:
		return b.intLiteral(v.Pos.Offset, v.Raw)
	case strLit:
		return b.stringLiteral(v.Pos.Offset, v.Raw)
	case nullableExpr:
		inner, err := b.atom(v.Inner)
		if err != nil {
			return nil, err
		}
		return &ast.NullableType{Off: v.Pos.Offset, Inner: inner}, nil
	case parenExpr:
		return b.reduce(v.Inner)
	case shapeExpr:
		return b.shape(v)
	case callableExpr:
		return b.callable(v)
	case namedExpr:
		return b.named(v)
	default:
		return nil, fmt.Errorf("no reducer for production %T", a)
	}
}

func (b *builder) named(v namedExpr) (ast.TypeStmt, error) {
	base := &ast.NamedType{Off: v.Pos.Offset, Name: v.Name}
	if v.Generic == nil {
		return base, nil
	}
	if len(v.Generic.Args) == 0 {
		return nil, diag.NewSemantic(b.source, v.Generic.Pos.Offset, diag.CodeEmptyTypeArgs,
			"generic type %s requires at least one type argument", v.Name)
	}
	args := make([]ast.TypeStmt, 0, len(v.Generic.Args))
	for _, raw := range v.Generic.Args {
		arg, err := b.reduce(raw)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &ast.GenericType{Off: v.Pos.Offset, Inner: base, Args: args}, nil
}

func (b *builder) shape(v shapeExpr) (ast.TypeStmt, error) {
	if !shapeNames[v.Name] {
		return nil, diag.NewSemantic(b.source, v.Pos.Offset, diag.CodeBadShapeName,
			"%s cannot have a shape body", v.Name)
	}
	fields := make([]*ast.ShapeField, 0, len(v.Fields))
	for _, f := range v.Fields {
		field, err := b.shapeField(f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return &ast.ShapeType{
		Off:    v.Pos.Offset,
		Name:   v.Name,
		Fields: fields,
		Sealed: !v.Unsealed,
	}, nil
}

func (b *builder) shapeField(v shapeField) (*ast.ShapeField, error) {
	field := &ast.ShapeField{Off: v.Pos.Offset}
	if v.Key != nil {
		key, err := b.fieldKey(*v.Key)
		if err != nil {
			return nil, err
		}
		field.Key = key
		field.Optional = v.Key.Optional
	}
	value, err := b.union(v.Value)
	if err != nil {
		return nil, err
	}
	field.Value = value
	return field, nil
}

// fieldKey builds the key node from its raw token text. Literal keys
// go through the interning pools like any other literal token.
func (b *builder) fieldKey(v fieldKey) (ast.Node, error) {
	switch c := v.Raw[0]; {
	case c == '\'' || c == '"':
		return b.stringLiteral(v.Pos.Offset, v.Raw)
	case c == '+' || c == '-' || (c >= '0' && c <= '9'):
		return b.intLiteral(v.Pos.Offset, v.Raw)
	default:
		return &ast.NamedType{Off: v.Pos.Offset, Name: v.Raw}, nil
	}
}

func (b *builder) callable(v callableExpr) (ast.TypeStmt, error) {
	params := make([]*ast.Argument, 0, len(v.Params))
	for _, p := range v.Params {
		t, err := b.union(p.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Argument{
			Off:      p.Pos.Offset,
			Value:    t,
			Variadic: p.Variadic,
			Optional: p.Optional,
		})
	}
	out := &ast.CallableType{Off: v.Pos.Offset, Name: v.Name, Params: params}
	if v.Return != nil {
		ret, err := b.suffixed(*v.Return)
		if err != nil {
			return nil, err
		}
		out.Return = ret
	}
	return out, nil
}

func (b *builder) intLiteral(offset int, raw string) (*ast.IntLiteral, error) {
	if n, ok := b.ints[offset]; ok {
		return n, nil
	}
	value, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, diag.NewSemantic(b.source, offset, diag.CodeIntRange,
				"integer literal %s is out of range", raw)
		}
		return nil, diag.NewSemantic(b.source, offset, diag.CodeIntRange,
			"malformed integer literal %s", raw)
	}
	n := &ast.IntLiteral{Off: offset, Value: value, Raw: raw}
	b.ints[offset] = n
	return n, nil
}

func (b *builder) stringLiteral(offset int, raw string) (*ast.StringLiteral, error) {
	if n, ok := b.strs[offset]; ok {
		return n, nil
	}
	value, err := decodeString(raw)
	if err != nil {
		return nil, diag.NewSemantic(b.source, offset, diag.CodeBadEscape, "%v", err)
	}
	n := &ast.StringLiteral{Off: offset, Value: value, Raw: raw}
	b.strs[offset] = n
	return n, nil
}

// decodeString strips the quotes from a string token and resolves its
// escape sequences. Single-quoted strings only escape the quote and
// the backslash; any other backslash pair is kept verbatim.
// Double-quoted strings support the usual C-style escapes, and an
// unknown escape is an error.
func decodeString(raw string) (string, error) {
	quote := raw[0]
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		// the token pattern guarantees a character follows the
		// backslash inside the quotes
		e := body[i]
		if quote == '\'' {
			if e == '\'' || e == '\\' {
				sb.WriteByte(e)
			} else {
				sb.WriteByte('\\')
				sb.WriteByte(e)
			}
			continue
		}
		switch e {
		case '"', '\'', '\\':
			sb.WriteByte(e)
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '0':
			sb.WriteByte(0)
		default:
			return "", fmt.Errorf("invalid escape sequence %q in string literal", "\\"+string(e))
		}
	}
	return sb.String(), nil
}
