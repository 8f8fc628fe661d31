package syntax

// Method and identifier conventions recognized by the visitor. Call sites
// are matched on the trailing method name regardless of receiver shape.
const (
	DispatchMethodName  = "dispatchEvent"
	RegisterMethodName  = "register"
	EventCtorName       = "CustomEvent"
	TagHelperName       = "constructTagName"
	RegistrationDecName = "customElement"
	PropertyDecName     = "property"
	TagNameDocTag       = "tagname"
	EventDocTag         = "event"
)

// Visibility of a class member as declared in source.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// MemberKind distinguishes fields from accessors.
type MemberKind int

const (
	FieldMember MemberKind = iota
	GetterMember
	SetterMember
)

// FileFacts is everything one traversal collects from a parsed file.
// Immutable once produced.
type FileFacts struct {
	Path string

	// Classes in declaration order, nested classes included.
	Classes []*ClassDecl

	Dispatches    []DispatchSite
	Registrations []RegisterSite

	Imports []ImportDecl
	Exports []ExportDecl
	Vars    []VarDecl

	// DefaultExport is the identifier of a plain `export default X`
	// assignment, "" when absent or not a plain identifier.
	DefaultExport string
}

// Class returns the declared class with the given name, if any.
func (f *FileFacts) Class(name string) (*ClassDecl, bool) {
	for _, c := range f.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ClassDecl is one class declaration with its attached metadata.
type ClassDecl struct {
	Name            string
	Exported        bool
	DefaultExported bool

	// Extends is the declared base expression text; ExtendsIdent is true
	// when it is a plain identifier that can be resolved by name.
	Extends      string
	ExtendsIdent bool

	Decorators []Decorator
	Doc        DocComment
	Members    []Member
}

// Decorator returns the decorator with the given trailing name, if any.
func (c *ClassDecl) Decorator(name string) (Decorator, bool) {
	for _, d := range c.Decorators {
		if d.Name == name {
			return d, true
		}
	}
	return Decorator{}, false
}

// Decorator is a decorator invocation; Name is its trailing identifier
// whether written bare or via property access.
type Decorator struct {
	Name string
	Args []Expr
}

// Member is a field or accessor of a class.
type Member struct {
	Name string

	// ComputedSkipped marks a computed member name whose expression was
	// not a string literal; such members are skipped with a warning.
	ComputedSkipped bool
	RawName         string

	Kind       MemberKind
	Visibility Visibility
	Static     bool

	Decorators []Decorator
	Doc        DocComment

	// TypeText is the declared type annotation text; UnionLiterals is
	// non-nil when the annotation is a union made entirely of string
	// literals.
	TypeText      string
	UnionLiterals []string

	// Init is the lowered initializer, nil when the member has none.
	Init *Expr
}

// Decorator returns the member decorator with the given name, if any.
func (m Member) Decorator(name string) (Decorator, bool) {
	for _, d := range m.Decorators {
		if d.Name == name {
			return d, true
		}
	}
	return Decorator{}, false
}

// DispatchSite is a discovered event dispatch, attributed to the
// innermost enclosing class.
type DispatchSite struct {
	ClassName string
	EventName string
}

// RegisterSite is a discovered registration call.
type RegisterSite struct {
	// Receiver is the identifier the method was called on, "" for bare
	// calls or non-identifier receivers.
	Receiver string

	// Arg is the lowered first argument, nil when the call has none.
	Arg *Expr
}

// ImportDecl is one import statement.
type ImportDecl struct {
	Specifier string
	Default   string
	Namespace string
	Named     []ImportedName
}

// ImportedName is one named import binding. Imported is the name in the
// source module, Local the binding introduced here.
type ImportedName struct {
	Imported string
	Local    string
}

// ExportDecl is one export statement relevant to symbol resolution.
type ExportDecl struct {
	// Specifier is the module a re-export forwards to, "" for same-file
	// named exports.
	Specifier string

	// Star marks `export * from`.
	Star bool

	Named []ExportedName
}

// ExportedName maps an outward name to its local (or origin-module) name.
type ExportedName struct {
	Local    string
	Exported string
}

// VarDecl is a top-level variable declaration with its lowered
// initializer.
type VarDecl struct {
	Name string
	Init Expr
}

// Var returns the top-level variable with the given name, if any.
func (f *FileFacts) Var(name string) (VarDecl, bool) {
	for _, v := range f.Vars {
		if v.Name == name {
			return v, true
		}
	}
	return VarDecl{}, false
}
