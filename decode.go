// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decode decodes JSON or YAML document bytes into an ordered value tree.
// Input starting with '{' or '[' is treated as JSON, anything else as YAML.
func Decode(data []byte) (any, error) {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return DecodeJSON(trimmed)
	}

	return DecodeYAML(data)
}

// DecodeJSON decodes JSON bytes into an ordered value tree.
//
// Objects become Object, arrays []any, numbers json.Number with the source
// literal preserved. Data after the top-level value is rejected.
func DecodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeJSONValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}

		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return value, nil
}

// decodeJSONValue reads one complete value from token stream.
func decodeJSONValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return decodeJSONToken(decoder, token)
}

// decodeJSONToken materializes value that starts with token.
func decodeJSONToken(decoder *json.Decoder, token any) (any, error) {
	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		object := Object{}
		for {
			token, err := decoder.Token()
			if err != nil {
				return nil, err
			}

			if end, ok := token.(json.Delim); ok && end == '}' {
				return object, nil
			}

			key, ok := token.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key token %v", token)
			}

			value, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}

			object = setMember(object, key, value)
		}
	case '[':
		items := []any{}
		for {
			token, err := decoder.Token()
			if err != nil {
				return nil, err
			}

			if end, ok := token.(json.Delim); ok && end == ']' {
				return items, nil
			}

			value, err := decodeJSONToken(decoder, token)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

// setMember replaces existing key in place or appends new member.
func setMember(object Object, key string, value any) Object {
	for index := range object {
		if object[index].Key == key {
			object[index].Value = value
			return object
		}
	}

	return append(object, Member{Key: key, Value: value})
}

// DecodeYAML decodes YAML bytes into an ordered value tree.
//
// Mapping order is preserved; int and float scalars become json.Number.
func DecodeYAML(data []byte) (any, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	if document.Kind == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecodeSchema)
	}

	value, err := yamlNodeValue(&document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return value, nil
}

// yamlNodeValue converts one yaml.Node subtree.
func yamlNodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return yamlNodeValue(node.Content[0])

	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, nil
		}

		return yamlNodeValue(node.Alias)

	case yaml.MappingNode:
		object := make(Object, 0, len(node.Content)/2)
		for index := 0; index+1 < len(node.Content); index += 2 {
			keyNode := node.Content[index]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be scalar", keyNode.Line)
			}

			value, err := yamlNodeValue(node.Content[index+1])
			if err != nil {
				return nil, err
			}

			object = setMember(object, keyNode.Value, value)
		}

		return object, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := yamlNodeValue(item)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}

		return items, nil

	case yaml.ScalarNode:
		return yamlScalarValue(node)

	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", node.Line, node.Kind)
	}
}

// yamlScalarValue converts resolved YAML scalar into JSON-compatible value.
func yamlScalarValue(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil

	case "!!bool":
		var value bool
		if err := node.Decode(&value); err != nil {
			return nil, err
		}

		return value, nil

	case "!!int":
		var value int64
		if err := node.Decode(&value); err != nil {
			var unsigned uint64
			if err := node.Decode(&unsigned); err != nil {
				return node.Value, nil
			}

			return json.Number(strconv.FormatUint(unsigned, 10)), nil
		}

		return json.Number(strconv.FormatInt(value, 10)), nil

	case "!!float":
		if json.Valid([]byte(node.Value)) {
			return json.Number(node.Value), nil
		}

		var value float64
		if err := node.Decode(&value); err != nil {
			return nil, err
		}

		if math.IsInf(value, 0) || math.IsNaN(value) {
			return node.Value, nil
		}

		return json.Number(strconv.FormatFloat(value, 'g', -1, 64)), nil

	default:
		return node.Value, nil
	}
}
