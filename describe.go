// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"slices"
	"strings"
)

const (
	typeLabelAny       = "any"
	typeLabelForbidden = "forbidden"
	typeLabelArray     = "array"
	typeLabelObject    = "object"
)

// DescribeType returns short human-readable type label for node.
//
// Boolean schemas give "any" and "forbidden". An explicit "type" wins over
// union alternatives; alternatives with one distinct type collapse to it,
// several distinct types are joined with ", ". An "array" label is refined to
// "array of T" when items declare a type. ok is false when nothing could be
// determined.
func DescribeType(node Node) (string, bool) {
	switch typed := node.(type) {
	case Marker:
		if typed {
			return typeLabelAny, true
		}

		return typeLabelForbidden, true
	case *Schema:
		if typed == nil {
			return "", false
		}

		return describeSchemaType(typed)
	default:
		return "", false
	}
}

// typeLabelOrAny returns DescribeType label with "any" fallback.
func typeLabelOrAny(node Node) string {
	label, ok := DescribeType(node)
	if !ok {
		return typeLabelAny
	}

	return label
}

// describeSchemaType resolves label for keyword schema.
func describeSchemaType(schema *Schema) (string, bool) {
	var label string
	switch {
	case len(schema.Types) > 0:
		label = strings.Join(schema.Types, ", ")
	case schema.OneOf != nil:
		label = unionTypeLabel(schema.OneOf)
	case schema.AnyOf != nil:
		label = unionTypeLabel(schema.AnyOf)
	}

	if label == typeLabelArray {
		if items, ok := schema.Items.(*Schema); ok && items != nil && len(items.Types) > 0 {
			label = "array of " + strings.Join(items.Types, ", ")
		}
	}

	if label == "" {
		return "", false
	}

	return label, true
}

// unionTypeLabel joins distinct declared alternative types in first-seen order.
func unionTypeLabel(alternatives []Node) string {
	labels := make([]string, 0, len(alternatives))
	for _, alternative := range alternatives {
		schema, ok := alternative.(*Schema)
		if !ok || schema == nil || len(schema.Types) == 0 {
			continue
		}

		label := strings.Join(schema.Types, ", ")
		if slices.Contains(labels, label) {
			continue
		}

		labels = append(labels, label)
	}

	return strings.Join(labels, ", ")
}
