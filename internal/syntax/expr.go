package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ExprKind discriminates the closed set of expression shapes the engine
// can interpret. Everything else is ExprOther and carries only raw text.
type ExprKind int

const (
	ExprOther ExprKind = iota
	ExprString
	ExprNumber
	ExprBool
	ExprNull
	ExprIdentifier
	ExprCall
	ExprNew
	ExprObject
)

// Expr is a lowered expression. It carries no tree-sitter nodes, so facts
// outlive the parse tree.
type Expr struct {
	Kind ExprKind

	// Value holds the literal text for String/Number/Bool, or the
	// identifier name for Identifier.
	Value string

	// Callee is the trailing identifier of the called or constructed
	// function, regardless of receiver shape (a.b.c() yields "c").
	Callee string

	Args    []Expr
	Entries []ObjectEntry

	// Raw is the source text of the expression as written.
	Raw string
}

// ObjectEntry is one direct key-value pair of an object literal. Spread
// elements and non-identifier keys are dropped during lowering.
type ObjectEntry struct {
	Key   string
	Value Expr
}

// Entry returns the value for key and whether it was present.
func (e Expr) Entry(key string) (Expr, bool) {
	for _, ent := range e.Entries {
		if ent.Key == key {
			return ent.Value, true
		}
	}
	return Expr{}, false
}

// lowerExpr converts a tree-sitter expression node into an Expr.
func lowerExpr(n *sitter.Node, src []byte) Expr {
	if n == nil {
		return Expr{Kind: ExprOther}
	}
	raw := n.Content(src)

	switch n.Type() {
	case "string":
		return Expr{Kind: ExprString, Value: stringValue(n, src), Raw: raw}
	case "template_string":
		if value, ok := templateValue(n, src); ok {
			return Expr{Kind: ExprString, Value: value, Raw: raw}
		}
		return Expr{Kind: ExprOther, Raw: raw}
	case "number":
		return Expr{Kind: ExprNumber, Value: raw, Raw: raw}
	case "true":
		return Expr{Kind: ExprBool, Value: "true", Raw: raw}
	case "false":
		return Expr{Kind: ExprBool, Value: "false", Raw: raw}
	case "null", "undefined":
		return Expr{Kind: ExprNull, Raw: raw}
	case "identifier":
		return Expr{Kind: ExprIdentifier, Value: raw, Raw: raw}
	case "call_expression":
		return Expr{
			Kind:   ExprCall,
			Callee: trailingName(n.ChildByFieldName("function"), src),
			Args:   lowerArgs(n.ChildByFieldName("arguments"), src),
			Raw:    raw,
		}
	case "new_expression":
		return Expr{
			Kind:   ExprNew,
			Callee: trailingName(n.ChildByFieldName("constructor"), src),
			Args:   lowerArgs(n.ChildByFieldName("arguments"), src),
			Raw:    raw,
		}
	case "object":
		return Expr{Kind: ExprObject, Entries: lowerObject(n, src), Raw: raw}
	case "parenthesized_expression":
		if inner := firstNamedChild(n); inner != nil {
			return lowerExpr(inner, src)
		}
		return Expr{Kind: ExprOther, Raw: raw}
	default:
		return Expr{Kind: ExprOther, Raw: raw}
	}
}

func lowerArgs(args *sitter.Node, src []byte) []Expr {
	if args == nil {
		return nil
	}
	var out []Expr
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		out = append(out, lowerExpr(child, src))
	}
	return out
}

func lowerObject(n *sitter.Node, src []byte) []ObjectEntry {
	var entries []ObjectEntry
	for i := 0; i < int(n.NamedChildCount()); i++ {
		pair := n.NamedChild(i)
		if pair.Type() != "pair" {
			continue // spread elements, methods, shorthand
		}
		keyNode := pair.ChildByFieldName("key")
		if keyNode == nil || keyNode.Type() != "property_identifier" {
			continue // computed or string keys are ignored
		}
		entries = append(entries, ObjectEntry{
			Key:   keyNode.Content(src),
			Value: lowerExpr(pair.ChildByFieldName("value"), src),
		})
	}
	return entries
}

// stringValue strips the quotes from a string literal node.
func stringValue(n *sitter.Node, src []byte) string {
	text := n.Content(src)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}

// templateValue returns the content of a template literal when it has no
// substitutions. Dynamic templates are not interpretable.
func templateValue(n *sitter.Node, src []byte) (string, bool) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "template_substitution" {
			return "", false
		}
	}
	text := n.Content(src)
	if len(text) >= 2 {
		return text[1 : len(text)-1], true
	}
	return text, true
}

// trailingName returns the last identifier of a callee expression: the
// bare identifier itself, or the property name of a member access.
func trailingName(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "identifier":
		return n.Content(src)
	case "member_expression":
		if prop := n.ChildByFieldName("property"); prop != nil {
			return prop.Content(src)
		}
	case "parenthesized_expression":
		if inner := firstNamedChild(n); inner != nil {
			return trailingName(inner, src)
		}
	}
	return ""
}

// receiverName returns the receiver identifier of a member-access callee,
// or "" for bare calls and non-identifier receivers.
func receiverName(n *sitter.Node, src []byte) string {
	if n == nil || n.Type() != "member_expression" {
		return ""
	}
	obj := n.ChildByFieldName("object")
	if obj == nil {
		return ""
	}
	switch obj.Type() {
	case "identifier":
		return obj.Content(src)
	case "member_expression":
		if prop := obj.ChildByFieldName("property"); prop != nil {
			return prop.Content(src)
		}
	}
	return ""
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}
