// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"fmt"
	"strings"
)

// bulletIndent is one nesting step of markdown bullet lists.
const bulletIndent = "  "

// nodeShape is the structural variant used by bullet dispatch.
type nodeShape int

const (
	shapeMalformed nodeShape = iota
	shapeAny
	shapeForbidden
	shapeArray
	shapeObject
	shapeUnion
	shapeLeaf
)

// classifyNode maps node to its dispatch shape.
// Object shape requires declared properties or additionalProperties;
// union shape applies only when neither array nor object matched.
func classifyNode(node Node) nodeShape {
	switch typed := node.(type) {
	case Marker:
		if typed {
			return shapeAny
		}

		return shapeForbidden
	case *Schema:
		if typed == nil {
			return shapeMalformed
		}

		switch {
		case typed.typeTag() == typeLabelArray:
			return shapeArray
		case typed.typeTag() == typeLabelObject && (typed.hasProperties || typed.hasAdditionalProperties):
			return shapeObject
		case typed.AnyOf != nil || typed.OneOf != nil:
			return shapeUnion
		default:
			return shapeLeaf
		}
	default:
		return shapeMalformed
	}
}

// RenderBullets renders nested markdown bullets describing node structure.
// Empty name means unnamed node: its substructure is spliced at indent.
// Every element is one line; property example blocks are split too.
func RenderBullets(node Node, name, indent string) []string {
	walker := bulletWalker{exampleFormat: ExampleFormatJSON, indentWidth: defaultIndentWidth}
	lines, _ := walker.bullets(node, name, indent)
	return lines
}

// bulletWalker carries example rendering settings through recursion.
type bulletWalker struct {
	exampleFormat ExampleFormat
	indentWidth   int
}

// bullets renders node and returns lines or example encoding error.
func (walker bulletWalker) bullets(node Node, name, indent string) ([]string, error) {
	switch classifyNode(node) {
	case shapeAny:
		return namedTypeLine(name, indent, typeLabelAny), nil

	case shapeForbidden:
		return namedTypeLine(name, indent, typeLabelForbidden), nil

	case shapeArray:
		return walker.arrayBullets(node.(*Schema), name, indent)

	case shapeObject:
		return walker.objectBullets(node.(*Schema), name, indent)

	case shapeUnion:
		return walker.unionBullets(node.(*Schema), name, indent)

	case shapeLeaf:
		schema := node.(*Schema)
		if len(schema.Types) == 0 {
			return nil, nil
		}

		return namedTypeLine(name, indent, typeLabelOrAny(schema)), nil

	default:
		return nil, nil
	}
}

// arrayBullets renders array line and splices items structure beneath it.
func (walker bulletWalker) arrayBullets(schema *Schema, name, indent string) ([]string, error) {
	var lines []string
	if name != "" {
		label, ok := DescribeType(schema)
		if !ok {
			label = typeLabelArray
		}

		lines = append(lines, typeLine(name, indent, label))
		indent += bulletIndent
	}

	if schema.Items == nil {
		return lines, nil
	}

	nested, err := walker.bullets(schema.Items, "", indent)
	if err != nil {
		return nil, err
	}

	return append(lines, nested...), nil
}

// objectBullets renders declared properties and map-of-union alternatives.
func (walker bulletWalker) objectBullets(schema *Schema, name, indent string) ([]string, error) {
	var lines []string
	if name != "" {
		lines = append(lines, typeLine(name, indent, typeLabelObject))
		indent += bulletIndent
	}

	for _, property := range schema.Properties {
		propertyLines, err := walker.propertyBullets(schema, property, indent)
		if err != nil {
			return nil, err
		}

		lines = append(lines, propertyLines...)
	}

	additional, ok := schema.AdditionalProperties.(*Schema)
	if !ok || additional == nil {
		return lines, nil
	}

	alternatives := additional.AnyOf
	if len(alternatives) == 0 {
		alternatives = additional.OneOf
	}

	for _, alternative := range alternatives {
		description := nodeDescription(alternative)
		if description == "" {
			continue
		}

		lines = append(lines, indent+"- "+description)
		nested, err := walker.bullets(alternative, "", indent+bulletIndent)
		if err != nil {
			return nil, err
		}

		lines = append(lines, nested...)
	}

	return lines, nil
}

// propertyBullets renders one property header, its structure and its examples.
func (walker bulletWalker) propertyBullets(parent *Schema, property Property, indent string) ([]string, error) {
	header := fmt.Sprintf(
		"%s- **`%s` (%s, *type: %s*)**",
		indent,
		escapeInline(property.Name),
		requirementText(parent.IsRequired(property.Name)),
		typeLabelOrAny(property.Node),
	)

	if description := nodeDescription(property.Node); description != "" {
		header += ": " + description
	}

	lines := []string{header}
	nested, err := walker.bullets(property.Node, "", indent+bulletIndent)
	if err != nil {
		return nil, err
	}

	lines = append(lines, nested...)

	examples := nodeExamples(property.Node)
	if len(examples) == 0 {
		return lines, nil
	}

	rendered, err := formatExamples(examples, walker.exampleFormat, walker.indentWidth)
	if err != nil {
		return nil, err
	}

	lines = append(lines, "", indent+bulletIndent+exampleLabel(len(examples))+":")
	lines = append(lines, strings.Split(indentLines(rendered, indent+bulletIndent), "\n")...)
	return lines, nil
}

// unionBullets expands every alternative with the same name and indent.
// anyOf takes precedence over oneOf.
func (walker bulletWalker) unionBullets(schema *Schema, name, indent string) ([]string, error) {
	alternatives := schema.AnyOf
	if alternatives == nil {
		alternatives = schema.OneOf
	}

	var lines []string
	for _, alternative := range alternatives {
		nested, err := walker.bullets(alternative, name, indent)
		if err != nil {
			return nil, err
		}

		lines = append(lines, nested...)
	}

	return lines, nil
}

// namedTypeLine renders one typed bullet line when name is set.
func namedTypeLine(name, indent, label string) []string {
	if name == "" {
		return nil
	}

	return []string{typeLine(name, indent, label)}
}

// typeLine formats "- `name` (*type: label*)" bullet.
func typeLine(name, indent, label string) string {
	return fmt.Sprintf("%s- `%s` (*type: %s*)", indent, escapeInline(name), label)
}

// requirementText renders required flag as "required" or "optional".
func requirementText(required bool) string {
	if required {
		return "required"
	}

	return "optional"
}

// exampleLabel returns singular label for one example, plural otherwise.
func exampleLabel(count int) string {
	if count == 1 {
		return "Example"
	}

	return "Examples"
}

// indentLines prefixes every non-empty line of text.
func indentLines(text, indent string) string {
	lines := strings.Split(text, "\n")
	for index, line := range lines {
		if line == "" {
			continue
		}

		lines[index] = indent + line
	}

	return strings.Join(lines, "\n")
}

// nodeDescription returns trimmed description of keyword schema.
func nodeDescription(node Node) string {
	schema, ok := node.(*Schema)
	if !ok || schema == nil {
		return ""
	}

	return schema.Description
}

// nodeExamples returns declared examples of keyword schema.
func nodeExamples(node Node) []any {
	schema, ok := node.(*Schema)
	if !ok || schema == nil {
		return nil
	}

	return schema.Examples
}
