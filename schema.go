// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-openapi/jsonreference"
)

// Node is one schema node: a Marker or a *Schema.
// A nil Node stands for a malformed value that is neither.
type Node interface {
	schemaNode()
}

// Marker is a boolean schema. True accepts anything, false accepts nothing.
type Marker bool

const (
	// AcceptAny is the "accept anything" boolean schema.
	AcceptAny Marker = true
	// AcceptNone is the "accept nothing" boolean schema.
	AcceptNone Marker = false
)

func (Marker) schemaNode() {}

// Schema is a keyword schema node.
type Schema struct {
	// Types holds declared type tags; a string "type" yields one element.
	Types       []string
	Title       string
	Description string
	// Examples holds declared example values in order.
	Examples []any
	// Default is the declared default value when HasDefault is set.
	Default    any
	HasDefault bool
	Enum       []any
	// Items is the array element schema, nil when absent or not a schema.
	Items Node
	// Properties holds declared properties in declaration order.
	Properties []Property
	Required   []string
	// AdditionalProperties is the open-ended map value schema.
	AdditionalProperties Node
	// AnyOf and OneOf are nil when the keyword is absent.
	AnyOf []Node
	OneOf []Node

	hasProperties           bool
	hasAdditionalProperties bool
}

func (*Schema) schemaNode() {}

// Property is one declared object property.
type Property struct {
	Name string
	Node Node
}

// HasProperties reports whether "properties" keyword was declared.
func (schema *Schema) HasProperties() bool {
	return schema.hasProperties
}

// HasAdditionalProperties reports whether "additionalProperties" keyword was declared.
func (schema *Schema) HasAdditionalProperties() bool {
	return schema.hasAdditionalProperties
}

// IsRequired reports whether property name is in the required set.
func (schema *Schema) IsRequired(name string) bool {
	return isRequired(schema.Required, name)
}

// Property returns declared property by name.
func (schema *Schema) Property(name string) (Node, bool) {
	for _, property := range schema.Properties {
		if property.Name == name {
			return property.Node, true
		}
	}

	return nil, false
}

// typeTag returns single declared type tag, empty when none or several.
func (schema *Schema) typeTag() string {
	if len(schema.Types) != 1 {
		return ""
	}

	return schema.Types[0]
}

// ParseSchema converts decoded document into schema node tree.
// Local "$ref" pointers are resolved against root.
func ParseSchema(root any) (Node, error) {
	if _, ok := root.(Object); !ok {
		return nil, fmt.Errorf("%w, got %T", ErrSchemaRootType, root)
	}

	parser := schemaParser{
		root:       root,
		activeRefs: make(map[string]int),
	}

	return parser.parseNode(root), nil
}

// schemaParser builds Node tree and guards reference cycles.
type schemaParser struct {
	root       any
	activeRefs map[string]int
}

// parseNode converts one raw schema value.
func (parser *schemaParser) parseNode(raw any) Node {
	switch typed := raw.(type) {
	case bool:
		return Marker(typed)
	case Object:
		return parser.parseObject(typed)
	default:
		return nil
	}
}

// parseObject resolves reference and converts keyword object into Schema.
func (parser *schemaParser) parseObject(object Object) Node {
	ref := trimmedString(object, "$ref")
	if ref != "" {
		resolved, release, ok := parser.resolveReference(ref)
		if ok {
			defer release()

			switch typed := resolved.(type) {
			case bool:
				if len(object) == 1 {
					return Marker(typed)
				}
			case Object:
				object = mergeSchemaObjects(typed, object)
			}
		}

		object = object.Without("$ref")
	}

	schema := &Schema{
		Title:       trimmedString(object, "title"),
		Description: trimmedString(object, "description"),
		Required:    asStringSlice(mustGet(object, "required")),
	}

	switch typeValue := mustGet(object, "type").(type) {
	case string:
		schema.Types = []string{typeValue}
	case []any:
		schema.Types = asStringSlice(typeValue)
	}

	if examples, ok := mustGet(object, "examples").([]any); ok {
		schema.Examples = examples
	}

	schema.Default, schema.HasDefault = object.Get("default")
	schema.Enum = asSlice(mustGet(object, "enum"))

	if items, ok := object.Get("items"); ok {
		schema.Items = parser.parseNode(items)
	}

	if raw, ok := object.Get("properties"); ok {
		schema.hasProperties = true
		if properties, ok := raw.(Object); ok {
			schema.Properties = make([]Property, 0, len(properties))
			for _, member := range properties {
				schema.Properties = append(schema.Properties, Property{
					Name: member.Key,
					Node: parser.parseNode(member.Value),
				})
			}
		}
	}

	if raw, ok := object.Get("additionalProperties"); ok {
		schema.hasAdditionalProperties = true
		schema.AdditionalProperties = parser.parseNode(raw)
	}

	schema.AnyOf = parser.parseAlternatives(object, "anyOf")
	schema.OneOf = parser.parseAlternatives(object, "oneOf")

	return schema
}

// parseAlternatives converts combinator list, nil when keyword is absent.
func (parser *schemaParser) parseAlternatives(object Object, keyword string) []Node {
	raw, ok := object.Get(keyword)
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]Node, 0, len(items))
	for _, item := range items {
		out = append(out, parser.parseNode(item))
	}

	return out
}

// resolveReference resolves local JSON pointer and registers it as active.
func (parser *schemaParser) resolveReference(ref string) (any, func(), bool) {
	if parser.activeRefs[ref] > 0 {
		return nil, nil, false
	}

	reference, err := jsonreference.New(ref)
	if err != nil || !reference.HasFragmentOnly {
		return nil, nil, false
	}

	target, ok := resolvePointerTokens(parser.root, reference.GetPointer().DecodedTokens())
	if !ok {
		return nil, nil, false
	}

	parser.activeRefs[ref]++
	return target, func() {
		parser.activeRefs[ref]--
		if parser.activeRefs[ref] <= 0 {
			delete(parser.activeRefs, ref)
		}
	}, true
}

// resolvePointerTokens walks decoded JSON pointer tokens from root value.
func resolvePointerTokens(root any, tokens []string) (any, bool) {
	current := root
	for _, token := range tokens {
		switch typed := current.(type) {
		case Object:
			next, ok := typed.Get(token)
			if !ok {
				return nil, false
			}

			current = next
		case []any:
			index, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil || index < 0 || index >= len(typed) {
				return nil, false
			}

			current = typed[index]
		default:
			return nil, false
		}
	}

	return current, true
}

// mergeSchemaObjects merges resolved reference object with sibling keyword overrides.
func mergeSchemaObjects(base, overlay Object) Object {
	out := make(Object, 0, len(base)+len(overlay))
	out = append(out, base...)

	for _, member := range overlay {
		if member.Key == "$ref" {
			continue
		}

		out = setMember(out, member.Key, member.Value)
	}

	return out
}

// mustGet returns object member value or nil.
func mustGet(object Object, key string) any {
	value, _ := object.Get(key)
	return value
}
