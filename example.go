// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeNone disables example synthesis.
	ExampleModeNone ExampleMode = "none"
	// ExampleModeAll builds example with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for example payloads and blocks.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"number":  json.Number("0"),
	"integer": json.Number("0"),
	"boolean": false,
	"null":    nil,
}

// GenerateExample returns generated example payload for whole schema in selected format.
func GenerateExample(schemaBytes []byte, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatYAML:
		return GenerateExampleYAML(schemaBytes, mode)
	default:
		return GenerateExampleJSON(schemaBytes, mode)
	}
}

// GenerateExampleJSON returns generated example payload encoded as pretty JSON.
func GenerateExampleJSON(schemaBytes []byte, mode ExampleMode) ([]byte, error) {
	_, value, err := generateExampleValue(schemaBytes, mode)
	if err != nil {
		return nil, err
	}

	data, err := marshalExampleJSON(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return data, nil
}

// GenerateExampleYAML returns generated example payload encoded as YAML
// with property descriptions attached as key comments.
func GenerateExampleYAML(schemaBytes []byte, mode ExampleMode) ([]byte, error) {
	root, value, err := generateExampleValue(schemaBytes, mode)
	if err != nil {
		return nil, err
	}

	rootNode, err := yamlNodeForValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	annotateYAMLNode(rootNode, root)

	data, err := marshalYAMLNode(rootNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// ExampleValue builds a placeholder value shaped like node.
//
// Objects take their properties in declaration order (required ones only in
// ExampleModeRequired), arrays get one item, unions their first alternative.
// Declared default, examples and enum values win for non-object nodes.
func ExampleValue(node Node, mode ExampleMode) any {
	schema, ok := node.(*Schema)
	if !ok || schema == nil {
		return nil
	}

	tag := schema.typeTag()
	switch {
	case tag == typeLabelObject || len(schema.Properties) > 0:
		return exampleObject(schema, mode)
	case tag == typeLabelArray || schema.Items != nil:
		return exampleArray(schema, mode)
	}

	if value, ok := explicitExampleValue(schema); ok {
		return cloneValue(value)
	}

	for _, alternatives := range [][]Node{schema.OneOf, schema.AnyOf} {
		if len(alternatives) > 0 {
			return ExampleValue(alternatives[0], mode)
		}
	}

	if value, ok := exampleScalarPlaceholders[tag]; ok {
		return value
	}

	return nil
}

// generateExampleValue parses schema and builds example value for selected mode.
func generateExampleValue(schemaBytes []byte, mode ExampleMode) (Node, any, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, nil, err
	}

	decoded, err := Decode(schemaBytes)
	if err != nil {
		return nil, nil, err
	}

	root, err := ParseSchema(decoded)
	if err != nil {
		return nil, nil, err
	}

	return root, ExampleValue(root, mode), nil
}

// exampleObject materializes object value from declared properties.
func exampleObject(schema *Schema, mode ExampleMode) Object {
	out := make(Object, 0, len(schema.Properties))
	for _, property := range schema.Properties {
		if mode == ExampleModeRequired && !schema.IsRequired(property.Name) {
			continue
		}

		out = append(out, Member{Key: property.Name, Value: ExampleValue(property.Node, mode)})
	}

	return out
}

// exampleArray materializes array value from explicit example or items schema.
func exampleArray(schema *Schema, mode ExampleMode) []any {
	if value, ok := explicitExampleValue(schema); ok {
		if items, ok := value.([]any); ok {
			return cloneValue(items).([]any)
		}
	}

	if schema.Items == nil {
		return []any{}
	}

	return []any{ExampleValue(schema.Items, mode)}
}

// explicitExampleValue returns preferred declared value: default, first example, first enum.
func explicitExampleValue(schema *Schema) (any, bool) {
	if schema.HasDefault {
		return schema.Default, true
	}

	if len(schema.Examples) > 0 {
		return schema.Examples[0], true
	}

	if len(schema.Enum) > 0 {
		return schema.Enum[0], true
	}

	return nil, false
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeRenderExampleMode accepts empty and "none" as disabled synthesis.
func normalizeRenderExampleMode(mode ExampleMode) (ExampleMode, error) {
	if text := strings.ToLower(strings.TrimSpace(string(mode))); text == "" || text == string(ExampleModeNone) {
		return ExampleModeNone, nil
	}

	return normalizeExampleMode(mode)
}

// normalizeExampleFormat validates caller format value, empty means json.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return ExampleFormatJSON, nil
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// cloneValue deep-copies objects and slices taken from the schema tree.
func cloneValue(value any) any {
	switch typed := value.(type) {
	case Object:
		out := make(Object, 0, len(typed))
		for _, member := range typed {
			out = append(out, Member{Key: member.Key, Value: cloneValue(member.Value)})
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, cloneValue(item))
		}

		return out
	default:
		return typed
	}
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalExampleYAML serializes one value as YAML keeping object order.
func marshalExampleYAML(value any) ([]byte, error) {
	node, err := yamlNodeForValue(value)
	if err != nil {
		return nil, err
	}

	return marshalYAMLNode(node)
}

// marshalYAMLNode encodes node as YAML document with two-space indent.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// annotateYAMLNode assigns schema descriptions as comments to YAML map keys.
func annotateYAMLNode(node *yaml.Node, schemaNode Node) {
	schema, ok := schemaNode.(*Schema)
	if !ok || schema == nil {
		return
	}

	switch node.Kind {
	case yaml.MappingNode:
		for index := 0; index+1 < len(node.Content); index += 2 {
			keyNode := node.Content[index]
			property, ok := schema.Property(keyNode.Value)
			if !ok {
				continue
			}

			if comment := nodeDescription(property); comment != "" {
				keyNode.HeadComment = comment
			}

			annotateYAMLNode(node.Content[index+1], property)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			annotateYAMLNode(item, schema.Items)
		}
	}
}

// yamlNodeForValue builds deterministic yaml.Node tree from decoded value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case json.Number:
		if _, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", typed.String()), nil
		}

		if _, err := typed.Float64(); err != nil {
			return yamlScalarNode("", typed.String()), nil
		}

		return yamlScalarNode("!!float", typed.String()), nil

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return yamlScalarNode("!!int", scalarLiteral(typed)), nil

	case float32, float64:
		return yamlScalarNode("!!float", scalarLiteral(typed)), nil

	case Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, member := range typed {
			valueNode, err := yamlNodeForValue(member.Value)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", member.Key), valueNode)
		}

		return node, nil

	case map[string]any:
		return yamlNodeForValue(objectFromMap(typed))

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil

	default:
		return nil, fmt.Errorf("unsupported example value type %T", typed)
	}
}

// yamlScalarNode creates one scalar yaml.Node; empty tag leaves it plain.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
