// Package model defines the metadata artifacts handed to downstream
// consumers of the extraction pipeline.
package model

// SemanticType is the resolved semantic type of a component property.
type SemanticType string

const (
	TypeString  SemanticType = "string"
	TypeNumber  SemanticType = "number"
	TypeBoolean SemanticType = "boolean"
	TypeEnum    SemanticType = "enum"
	TypeUnknown SemanticType = "unknown"
)

// Visibility is the access level of an extracted member. Private members
// never appear in extracted output.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
)

// TagTier identifies which resolution strategy produced a tag name.
type TagTier string

const (
	TierDocTag           TagTier = "doc-tag"
	TierRegistrationFile TagTier = "registration-file"
	TierFilenameFallback TagTier = "filename-fallback"
)

// PropertyDescriptor describes one reactive property of a component.
// Identity key is Name.
type PropertyDescriptor struct {
	Name string `json:"name"`

	// Type is the resolved semantic type; EnumValues is populated when
	// Type is TypeEnum.
	Type       SemanticType `json:"type"`
	TypeText   string       `json:"type_text,omitempty"`
	EnumValues []string     `json:"enum_values,omitempty"`

	// Attribute is the serialized attribute name. Nil means attribute
	// reflection was explicitly suppressed (attribute: false).
	Attribute *string `json:"attribute"`
	Reflect   bool    `json:"reflect,omitempty"`

	// Default is the initializer value: a literal when the initializer
	// was a supported literal, otherwise the raw source text. Nil when
	// the member has no initializer.
	Default *string `json:"default,omitempty"`

	Doc        string     `json:"doc,omitempty"`
	Visibility Visibility `json:"visibility"`
}

// EventDescriptor describes one event emitted by a component.
// Identity key is Name.
type EventDescriptor struct {
	Name        string `json:"name"`
	HandlerName string `json:"handler_name"`
	DetailType  string `json:"detail_type,omitempty"`
}

// TagNameResolution carries a resolved tag name plus its provenance.
type TagNameResolution struct {
	Tag      string   `json:"tag"`
	Tier     TagTier  `json:"tier"`
	Warnings []string `json:"warnings,omitempty"`
}

// ComponentModel is the terminal artifact of one file analysis.
type ComponentModel struct {
	ClassName       string               `json:"class_name"`
	TagName         string               `json:"tag_name"`
	TagTier         TagTier              `json:"tag_tier"`
	DiscoveryMethod string               `json:"discovery_method"`
	Properties      []PropertyDescriptor `json:"properties"`
	Events          []EventDescriptor    `json:"events"`
	FilePath        string               `json:"file_path"`
	ImportPath      string               `json:"import_path"`
}
