// Package syntax collects per-file facts from a parse tree in a single
// depth-first traversal. The collector never throws new errors; it only
// skips constructs it cannot interpret.
package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/UILens-hq/uilens/internal/parser"
)

// Collect runs one traversal over a parsed source and returns its facts.
// The returned facts hold no tree-sitter nodes, so the caller may close
// the source immediately afterwards.
func Collect(src *parser.Source) *FileFacts {
	c := &collector{
		source: src.Bytes,
		facts:  &FileFacts{Path: src.Path},
	}
	c.walk(src.Root(), nil)
	return c.facts
}

type collector struct {
	source []byte
	facts  *FileFacts
}

// walk visits n and its children. classStack holds the names of enclosing
// classes, innermost last; it is passed explicitly rather than kept as
// collector state.
func (c *collector) walk(n *sitter.Node, classStack []string) {
	switch n.Type() {
	case "class_declaration", "abstract_class_declaration":
		cls := c.collectClass(n)
		c.facts.Classes = append(c.facts.Classes, cls)
		if body := n.ChildByFieldName("body"); body != nil {
			c.walk(body, append(classStack, cls.Name))
		}
		return

	case "call_expression":
		c.collectCallSite(n, classStack)

	case "import_statement":
		if c.topLevel(n) {
			c.collectImport(n)
		}

	case "export_statement":
		if c.topLevel(n) {
			c.collectExport(n)
		}

	case "lexical_declaration", "variable_declaration":
		if c.topLevel(n) || c.exportedTopLevel(n) {
			c.collectVars(n)
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c.walk(n.NamedChild(i), classStack)
	}
}

func (c *collector) topLevel(n *sitter.Node) bool {
	parent := n.Parent()
	return parent != nil && parent.Type() == "program"
}

func (c *collector) exportedTopLevel(n *sitter.Node) bool {
	parent := n.Parent()
	return parent != nil && parent.Type() == "export_statement" && c.topLevel(parent)
}

// collectClass gathers a class declaration's modifiers, heritage,
// decorators, doc comment and members.
func (c *collector) collectClass(n *sitter.Node) *ClassDecl {
	cls := &ClassDecl{}

	if name := n.ChildByFieldName("name"); name != nil {
		cls.Name = name.Content(c.source)
	}

	parent := n.Parent()
	if parent != nil && parent.Type() == "export_statement" {
		cls.Exported = true
		cls.DefaultExported = hasKeywordChild(parent, "default")
	}

	cls.Decorators = c.collectDecorators(n)
	if parent != nil && parent.Type() == "export_statement" {
		cls.Decorators = append(c.collectDecorators(parent), cls.Decorators...)
	}

	cls.Doc = c.docFor(n)

	if heritage := childOfType(n, "class_heritage"); heritage != nil {
		value := extendsValue(heritage)
		if value != nil {
			cls.Extends = value.Content(c.source)
			cls.ExtendsIdent = value.Type() == "identifier"
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		cls.Members = c.collectMembers(body)
	}

	return cls
}

// extendsValue finds the extended expression inside a class_heritage
// node, covering both the TS (extends_clause) and plain JS shapes.
func extendsValue(heritage *sitter.Node) *sitter.Node {
	if clause := childOfType(heritage, "extends_clause"); clause != nil {
		if v := clause.ChildByFieldName("value"); v != nil {
			return v
		}
		if clause.NamedChildCount() > 0 {
			return clause.NamedChild(0)
		}
		return nil
	}
	if heritage.NamedChildCount() > 0 {
		return heritage.NamedChild(0)
	}
	return nil
}

// collectDecorators lowers the decorator children of a node.
func (c *collector) collectDecorators(n *sitter.Node) []Decorator {
	var out []Decorator
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}
		if d, ok := c.lowerDecorator(child); ok {
			out = append(out, d)
		}
	}
	return out
}

func (c *collector) lowerDecorator(n *sitter.Node) (Decorator, bool) {
	inner := firstNamedChild(n)
	if inner == nil {
		return Decorator{}, false
	}
	switch inner.Type() {
	case "call_expression":
		return Decorator{
			Name: trailingName(inner.ChildByFieldName("function"), c.source),
			Args: lowerArgs(inner.ChildByFieldName("arguments"), c.source),
		}, true
	case "identifier":
		return Decorator{Name: inner.Content(c.source)}, true
	case "member_expression":
		return Decorator{Name: trailingName(inner, c.source)}, true
	}
	return Decorator{}, false
}

// collectMembers gathers fields and accessors from a class body.
// Decorators may appear either as class_body children preceding the
// member or as children of the member node itself; both are handled.
func (c *collector) collectMembers(body *sitter.Node) []Member {
	var members []Member
	var pending []Decorator

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "decorator":
			if d, ok := c.lowerDecorator(child); ok {
				pending = append(pending, d)
			}
		case "public_field_definition":
			m := c.collectField(child)
			m.Decorators = append(pending, m.Decorators...)
			members = append(members, m)
			pending = nil
		case "method_definition":
			if m, ok := c.collectAccessor(child); ok {
				m.Decorators = append(pending, m.Decorators...)
				members = append(members, m)
			}
			pending = nil
		default:
			pending = nil
		}
	}
	return members
}

func (c *collector) collectField(n *sitter.Node) Member {
	m := Member{
		Kind:       FieldMember,
		Visibility: memberVisibility(n, c.source),
		Static:     hasKeywordChild(n, "static"),
		Decorators: c.collectDecorators(n),
		Doc:        c.docFor(n),
	}
	c.fillMemberName(&m, n.ChildByFieldName("name"))

	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		m.TypeText, m.UnionLiterals = c.annotationFacts(typeNode)
	}
	if value := n.ChildByFieldName("value"); value != nil {
		init := lowerExpr(value, c.source)
		m.Init = &init
	}
	return m
}

// collectAccessor keeps get/set methods only; plain methods are not
// property candidates.
func (c *collector) collectAccessor(n *sitter.Node) (Member, bool) {
	kind := FieldMember
	switch {
	case hasKeywordChild(n, "get"):
		kind = GetterMember
	case hasKeywordChild(n, "set"):
		kind = SetterMember
	default:
		return Member{}, false
	}

	m := Member{
		Kind:       kind,
		Visibility: memberVisibility(n, c.source),
		Static:     hasKeywordChild(n, "static"),
		Decorators: c.collectDecorators(n),
		Doc:        c.docFor(n),
	}
	c.fillMemberName(&m, n.ChildByFieldName("name"))

	if kind == GetterMember {
		if ret := n.ChildByFieldName("return_type"); ret != nil {
			m.TypeText, m.UnionLiterals = c.annotationFacts(ret)
		}
	} else if params := n.ChildByFieldName("parameters"); params != nil {
		if params.NamedChildCount() > 0 {
			if t := params.NamedChild(0).ChildByFieldName("type"); t != nil {
				m.TypeText, m.UnionLiterals = c.annotationFacts(t)
			}
		}
	}
	return m, true
}

// fillMemberName resolves the member name: identifier, string literal, or
// a computed name whose expression is a string literal. Any other
// computed form is marked skipped.
func (c *collector) fillMemberName(m *Member, name *sitter.Node) {
	if name == nil {
		m.ComputedSkipped = true
		return
	}
	m.RawName = name.Content(c.source)
	switch name.Type() {
	case "property_identifier":
		m.Name = m.RawName
	case "private_property_identifier":
		m.Name = m.RawName
		m.Visibility = Private
	case "string":
		m.Name = stringValue(name, c.source)
	case "computed_property_name":
		inner := firstNamedChild(name)
		if inner != nil {
			if e := lowerExpr(inner, c.source); e.Kind == ExprString {
				m.Name = e.Value
				return
			}
		}
		m.ComputedSkipped = true
	default:
		m.ComputedSkipped = true
	}
}

// annotationFacts renders a type annotation's text and, when it is a
// union made entirely of string literals, the literal members.
func (c *collector) annotationFacts(annotation *sitter.Node) (string, []string) {
	typeNode := firstNamedChild(annotation)
	if typeNode == nil {
		return "", nil
	}
	text := typeNode.Content(c.source)
	if literals, ok := stringUnionLiterals(typeNode, c.source); ok {
		return text, literals
	}
	return text, nil
}

// stringUnionLiterals reports the members of a literal string union type.
// All branches must be string literal types.
func stringUnionLiterals(n *sitter.Node, src []byte) ([]string, bool) {
	switch n.Type() {
	case "union_type":
		var out []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			branch, ok := stringUnionLiterals(n.NamedChild(i), src)
			if !ok {
				return nil, false
			}
			out = append(out, branch...)
		}
		return out, len(out) > 0
	case "literal_type":
		inner := firstNamedChild(n)
		if inner != nil && inner.Type() == "string" {
			return []string{stringValue(inner, src)}, true
		}
		return nil, false
	case "parenthesized_type":
		inner := firstNamedChild(n)
		if inner == nil {
			return nil, false
		}
		return stringUnionLiterals(inner, src)
	default:
		return nil, false
	}
}

// collectCallSite recognizes the dispatch and register call shapes.
func (c *collector) collectCallSite(n *sitter.Node, classStack []string) {
	fn := n.ChildByFieldName("function")
	name := trailingName(fn, c.source)

	switch name {
	case DispatchMethodName:
		args := lowerArgs(n.ChildByFieldName("arguments"), c.source)
		if len(args) == 0 || args[0].Kind != ExprNew || args[0].Callee != EventCtorName {
			return
		}
		ctor := args[0]
		if len(ctor.Args) == 0 || ctor.Args[0].Kind != ExprString {
			return // dynamic names are not captured
		}
		enclosing := ""
		if len(classStack) > 0 {
			enclosing = classStack[len(classStack)-1]
		}
		c.facts.Dispatches = append(c.facts.Dispatches, DispatchSite{
			ClassName: enclosing,
			EventName: ctor.Args[0].Value,
		})

	case RegisterMethodName:
		site := RegisterSite{Receiver: receiverName(fn, c.source)}
		if args := lowerArgs(n.ChildByFieldName("arguments"), c.source); len(args) > 0 {
			site.Arg = &args[0]
		}
		c.facts.Registrations = append(c.facts.Registrations, site)
	}
}

func (c *collector) collectImport(n *sitter.Node) {
	source := n.ChildByFieldName("source")
	if source == nil {
		return
	}
	decl := ImportDecl{Specifier: stringValue(source, c.source)}

	if clause := childOfType(n, "import_clause"); clause != nil {
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			child := clause.NamedChild(i)
			switch child.Type() {
			case "identifier":
				decl.Default = child.Content(c.source)
			case "namespace_import":
				if id := firstNamedChild(child); id != nil {
					decl.Namespace = id.Content(c.source)
				}
			case "named_imports":
				for j := 0; j < int(child.NamedChildCount()); j++ {
					spec := child.NamedChild(j)
					if spec.Type() != "import_specifier" {
						continue
					}
					name := spec.ChildByFieldName("name")
					if name == nil {
						continue
					}
					imported := name.Content(c.source)
					local := imported
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = alias.Content(c.source)
					}
					decl.Named = append(decl.Named, ImportedName{Imported: imported, Local: local})
				}
			}
		}
	}
	c.facts.Imports = append(c.facts.Imports, decl)
}

func (c *collector) collectExport(n *sitter.Node) {
	specifier := ""
	if source := n.ChildByFieldName("source"); source != nil {
		specifier = stringValue(source, c.source)
	}

	if hasKeywordChild(n, "default") {
		if value := n.ChildByFieldName("value"); value != nil && value.Type() == "identifier" {
			c.facts.DefaultExport = value.Content(c.source)
		}
		return
	}

	clause := childOfType(n, "export_clause")
	if clause != nil {
		decl := ExportDecl{Specifier: specifier}
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			spec := clause.NamedChild(i)
			if spec.Type() != "export_specifier" {
				continue
			}
			name := spec.ChildByFieldName("name")
			if name == nil {
				continue
			}
			local := name.Content(c.source)
			exported := local
			if alias := spec.ChildByFieldName("alias"); alias != nil {
				exported = alias.Content(c.source)
			}
			decl.Named = append(decl.Named, ExportedName{Local: local, Exported: exported})
		}
		c.facts.Exports = append(c.facts.Exports, decl)
		return
	}

	// `export * from './x'`; namespace re-exports (* as ns) are not
	// resolvable by name forwarding and are ignored.
	if specifier != "" && hasKeywordChild(n, "*") && childOfType(n, "namespace_export") == nil {
		c.facts.Exports = append(c.facts.Exports, ExportDecl{Specifier: specifier, Star: true})
	}
}

func (c *collector) collectVars(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		name := child.ChildByFieldName("name")
		if name == nil || name.Type() != "identifier" {
			continue
		}
		c.facts.Vars = append(c.facts.Vars, VarDecl{
			Name: name.Content(c.source),
			Init: lowerExpr(child.ChildByFieldName("value"), c.source),
		})
	}
}

// docFor returns the parsed doc comment immediately preceding a node,
// skipping over decorator siblings. For exported declarations the comment
// sits before the export statement.
func (c *collector) docFor(n *sitter.Node) DocComment {
	anchor := n
	if parent := n.Parent(); parent != nil && parent.Type() == "export_statement" {
		anchor = parent
	}
	prev := anchor.PrevNamedSibling()
	for prev != nil && prev.Type() == "decorator" {
		prev = prev.PrevNamedSibling()
	}
	if prev != nil && prev.Type() == "comment" {
		text := prev.Content(c.source)
		if strings.HasPrefix(text, "/**") {
			return ParseDoc(text)
		}
	}
	return DocComment{}
}

func memberVisibility(n *sitter.Node, src []byte) Visibility {
	if mod := childOfType(n, "accessibility_modifier"); mod != nil {
		switch mod.Content(src) {
		case "private":
			return Private
		case "protected":
			return Protected
		}
	}
	return Public
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

func hasKeywordChild(n *sitter.Node, keyword string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == keyword {
			return true
		}
	}
	return false
}
