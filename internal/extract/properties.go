// Package extract derives property and event descriptors from a single
// class; the chain merger combines the per-class results.
package extract

import (
	"fmt"
	"strings"

	"github.com/UILens-hq/uilens/internal/chain"
	"github.com/UILens-hq/uilens/internal/strutil"
	"github.com/UILens-hq/uilens/internal/syntax"
	"github.com/UILens-hq/uilens/pkg/model"
)

// tagNameSuffix marks internal plumbing fields whose literal union types
// must not be inferred as enums.
const tagNameSuffix = "tagname"

// Properties extracts the reactive properties of one class: every
// non-private field or accessor carrying the property decorator.
func Properties(link chain.Link) ([]model.PropertyDescriptor, []string) {
	var props []model.PropertyDescriptor
	var warnings []string
	seen := make(map[string]bool)

	for _, m := range link.Class.Members {
		dec, ok := m.Decorator(syntax.PropertyDecName)
		if !ok {
			continue
		}
		if m.ComputedSkipped {
			warnings = append(warnings, fmt.Sprintf(
				"skipping property with unsupported computed name %s in class %s",
				m.RawName, link.Class.Name))
			continue
		}
		if m.Visibility == syntax.Private {
			continue
		}
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true

		props = append(props, buildProperty(m, dec))
	}
	return props, warnings
}

func buildProperty(m syntax.Member, dec syntax.Decorator) model.PropertyDescriptor {
	options := decoratorOptions(dec)

	prop := model.PropertyDescriptor{
		Name:       m.Name,
		TypeText:   m.TypeText,
		Doc:        m.Doc.Summary,
		Visibility: model.VisibilityPublic,
	}
	if m.Visibility == syntax.Protected {
		prop.Visibility = model.VisibilityProtected
	}

	prop.Type, prop.EnumValues = semanticType(m, options)
	prop.Attribute = attributeName(m.Name, options)
	if reflect, ok := options.Entry("reflect"); ok {
		prop.Reflect = reflect.Kind == syntax.ExprBool && reflect.Value == "true"
	}
	prop.Default = defaultValue(m.Init)

	return prop
}

// decoratorOptions returns the object-literal options of the property
// decorator. Only direct key-value pairs are interpreted; anything else
// lowers to an empty option set.
func decoratorOptions(dec syntax.Decorator) syntax.Expr {
	if len(dec.Args) > 0 && dec.Args[0].Kind == syntax.ExprObject {
		return dec.Args[0]
	}
	return syntax.Expr{Kind: syntax.ExprObject}
}

// semanticType resolves the property's semantic type by priority:
// tag-name-like members with literal unions are plain strings, literal
// string unions are enums, then the explicit decorator type, then the
// declared type text, else unknown.
func semanticType(m syntax.Member, options syntax.Expr) (model.SemanticType, []string) {
	if len(m.UnionLiterals) > 0 {
		if strings.HasSuffix(strings.ToLower(m.Name), tagNameSuffix) {
			return model.TypeString, nil
		}
		return model.TypeEnum, m.UnionLiterals
	}

	if t, ok := options.Entry("type"); ok && t.Kind == syntax.ExprIdentifier {
		switch t.Value {
		case "String":
			return model.TypeString, nil
		case "Number":
			return model.TypeNumber, nil
		case "Boolean":
			return model.TypeBoolean, nil
		}
	}

	switch strings.TrimSpace(strings.ToLower(m.TypeText)) {
	case "string":
		return model.TypeString, nil
	case "number":
		return model.TypeNumber, nil
	case "boolean":
		return model.TypeBoolean, nil
	}
	return model.TypeUnknown, nil
}

// attributeName resolves the serialized attribute: explicit false
// suppresses it, explicit true uses the property name untransformed, a
// string or identifier value is taken verbatim, absence defaults to the
// kebab-cased property name.
func attributeName(name string, options syntax.Expr) *string {
	attr, ok := options.Entry("attribute")
	if !ok {
		kebab := strutil.KebabCase(name)
		return &kebab
	}
	switch attr.Kind {
	case syntax.ExprBool:
		if attr.Value == "false" {
			return nil
		}
		verbatim := name
		return &verbatim
	case syntax.ExprString, syntax.ExprIdentifier:
		value := attr.Value
		return &value
	default:
		// unsupported option shape, silently fall back to the default
		kebab := strutil.KebabCase(name)
		return &kebab
	}
}

// defaultValue renders an initializer: supported literals directly,
// anything else as its raw source text.
func defaultValue(init *syntax.Expr) *string {
	if init == nil {
		return nil
	}
	var value string
	switch init.Kind {
	case syntax.ExprString:
		value = init.Value
	case syntax.ExprNumber, syntax.ExprBool:
		value = init.Value
	case syntax.ExprNull:
		value = init.Raw
	default:
		value = init.Raw
	}
	return &value
}
