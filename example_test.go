// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSchemaFixture = `{
  "$ref": "#/$defs/Recording",
  "$defs": {
    "Recording": {
      "type": "object",
      "required": ["name", "settings"],
      "properties": {
        "name": {
          "type": "string",
          "default": "demo",
          "description": "Human-readable recording name."
        },
        "mode": {"type": "string", "examples": ["safe"]},
        "count": {"type": "integer"},
        "unit": {"type": "string", "enum": ["m", "s"]},
        "features": {"type": "array", "items": {"type": "string"}},
        "value": {"oneOf": [{"type": "number"}, {"type": "null"}]},
        "settings": {
          "type": "object",
          "required": ["enabled"],
          "properties": {
            "enabled": {
              "type": "boolean",
              "default": true,
              "description": "Enables processing pipeline."
            },
            "note": {"type": "string"}
          }
        }
      }
    }
  }
}`

func TestGenerateExampleJSONAllMode(t *testing.T) {
	t.Parallel()

	got, err := GenerateExampleJSON([]byte(exampleSchemaFixture), ExampleModeAll)
	require.NoError(t, err)

	text := string(got)
	assert.JSONEq(t, `{
  "name": "demo",
  "mode": "safe",
  "count": 0,
  "unit": "m",
  "features": ["<string>"],
  "value": 0,
  "settings": {"enabled": true, "note": "<string>"}
}`, text)
	assert.Contains(t, text, `"note": "<string>"`)
	assert.Less(t, strings.Index(text, `"name"`), strings.Index(text, `"mode"`))
	assert.Less(t, strings.Index(text, `"value"`), strings.Index(text, `"settings"`))
}

func TestGenerateExampleJSONRequiredMode(t *testing.T) {
	t.Parallel()

	got, err := GenerateExampleJSON([]byte(exampleSchemaFixture), ExampleModeRequired)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "demo", "settings": {"enabled": true}}`, string(got))
}

func TestGenerateExampleYAMLRequiredMode(t *testing.T) {
	t.Parallel()

	got, err := GenerateExample([]byte(exampleSchemaFixture), ExampleModeRequired, ExampleFormatYAML)
	require.NoError(t, err)

	text := string(got)
	assert.Contains(t, text, "# Human-readable recording name.\nname: demo\n")
	assert.Contains(t, text, "settings:\n")
	assert.Contains(t, text, "  # Enables processing pipeline.\n  enabled: true\n")
	assert.NotContains(t, text, "mode:")
	assert.NotContains(t, text, "note:")
}

func TestGenerateExampleValidation(t *testing.T) {
	t.Parallel()

	_, err := GenerateExampleJSON([]byte(exampleSchemaFixture), "broken")
	require.ErrorIs(t, err, ErrUnknownExampleMode)

	_, err = GenerateExample([]byte(exampleSchemaFixture), ExampleModeAll, "xml")
	require.ErrorIs(t, err, ErrUnknownExampleFormat)

	_, err = GenerateExample([]byte(`[]`), ExampleModeAll, ExampleFormatJSON)
	require.ErrorIs(t, err, ErrSchemaRootType)
}

func TestExampleValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema string
		want   any
	}{
		{name: "string placeholder", schema: `{"type": "string"}`, want: "<string>"},
		{name: "number placeholder", schema: `{"type": "number"}`, want: json.Number("0")},
		{name: "boolean placeholder", schema: `{"type": "boolean"}`, want: false},
		{name: "untyped", schema: `{"description": "x"}`, want: nil},
		{name: "default wins", schema: `{"type": "integer", "default": 7, "examples": [1]}`, want: json.Number("7")},
		{name: "first example", schema: `{"type": "string", "examples": ["a", "b"]}`, want: "a"},
		{name: "first anyOf alternative", schema: `{"anyOf": [{"type": "boolean"}, {"type": "string"}]}`, want: false},
		{name: "array explicit example", schema: `{"type": "array", "items": {"type": "string"}, "examples": [["x", "y"]]}`, want: []any{"x", "y"}},
		{name: "array without items", schema: `{"type": "array"}`, want: []any{}},
		{
			name:   "object declaration order",
			schema: `{"type": "object", "properties": {"b": {"type": "string"}, "a": {"type": "integer"}}}`,
			want:   Object{{Key: "b", Value: "<string>"}, {Key: "a", Value: json.Number("0")}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExampleValue(parseTestSchema(t, tc.schema), ExampleModeAll))
		})
	}

	assert.Nil(t, ExampleValue(AcceptAny, ExampleModeAll))
}

func TestExampleValueDoesNotAliasSchema(t *testing.T) {
	t.Parallel()

	node := parseTestSchema(t, `{"type": "array", "examples": [[{"a": 1}]]}`)
	value, ok := ExampleValue(node, ExampleModeAll).([]any)
	require.True(t, ok)

	object, ok := value[0].(Object)
	require.True(t, ok)
	object[0].Value = "changed"

	schema := requireSchema(t, node)
	original := schema.Examples[0].([]any)[0].(Object)
	assert.Equal(t, json.Number("1"), original[0].Value)
}
