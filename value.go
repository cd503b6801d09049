// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// Object is a decoded JSON/YAML mapping with members kept in document order.
type Object []Member

// Member is one key/value entry of an Object.
type Member struct {
	Key   string
	Value any
}

// Get returns the value of the first member with key.
func (object Object) Get(key string) (any, bool) {
	for _, member := range object {
		if member.Key == key {
			return member.Value, true
		}
	}

	return nil, false
}

// Has reports whether object has a member with key.
func (object Object) Has(key string) bool {
	_, ok := object.Get(key)
	return ok
}

// Without returns a copy of object without members named key.
func (object Object) Without(key string) Object {
	out := make(Object, 0, len(object))
	for _, member := range object {
		if member.Key == key {
			continue
		}

		out = append(out, member)
	}

	return out
}

// MarshalJSON encodes object members in document order without HTML escaping.
func (object Object) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)

	out.WriteByte('{')
	for index, member := range object {
		if index > 0 {
			out.WriteByte(',')
		}

		if err := encoder.Encode(member.Key); err != nil {
			return nil, err
		}

		out.Truncate(out.Len() - 1)
		out.WriteByte(':')

		if err := encoder.Encode(member.Value); err != nil {
			return nil, err
		}

		out.Truncate(out.Len() - 1)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// IsScalar reports whether value is a leaf: number, string, boolean or null.
func IsScalar(value any) bool {
	switch value.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// AllScalars reports whether every element of values is scalar.
// Empty input is vacuously true.
func AllScalars(values []any) bool {
	for _, value := range values {
		if !IsScalar(value) {
			return false
		}
	}

	return true
}

// asString returns value when it is a string, empty string otherwise.
func asString(value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}

	return text
}

// asSlice returns value when it is a sequence.
func asSlice(value any) []any {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	return items
}

// asStringSlice collects string elements of a sequence value.
func asStringSlice(value any) []string {
	items := asSlice(value)
	if len(items) == 0 {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			continue
		}

		out = append(out, text)
	}

	return out
}

// trimmedString returns object[key] as trimmed string.
func trimmedString(object Object, key string) string {
	value, _ := object.Get(key)
	return strings.TrimSpace(asString(value))
}
