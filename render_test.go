// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "update golden files")

func TestRenderFileMatchesGolden(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(filepath.Join("testdata", "schema.fixture.json"), Options{})
	require.NoError(t, err)

	goldenPath := filepath.Join("testdata", "schema.golden.md")
	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(rendered), 0o600))
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(want), rendered)
}

func TestRenderFileYAMLMatchesJSON(t *testing.T) {
	t.Parallel()

	fromJSON, err := RenderFile(filepath.Join("testdata", "schema.fixture.json"), Options{})
	require.NoError(t, err)

	fromYAML, err := RenderFile(filepath.Join("testdata", "schema.fixture.yaml"), Options{})
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestRenderFileMissing(t *testing.T) {
	t.Parallel()

	_, err := RenderFile(filepath.Join(t.TempDir(), "missing.json"), Options{})
	require.ErrorIs(t, err, ErrReadSchemaFile)
}

func TestRenderSectionsInFixedOrder(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{
  "title": "T",
  "description": "D",
  "type": "object",
  "properties": {
    "data": {"title": "Data", "type": "object", "properties": {}},
    "metadata": {"title": "Metadata", "type": "object", "properties": {}},
    "$schema": {"title": "Identifier", "type": "object", "properties": {}}
  }
}`), Options{})
	require.NoError(t, err)
	assert.Equal(t, "# T\nD\n\n## Identifier\n\n## Metadata\n\n## Data\n", rendered)
}

func TestRenderDegradesMissingTitleAndDescription(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{"type": "object", "properties": {"data": {"type": "object", "properties": {"x": {}}}}}`), Options{})
	require.NoError(t, err)
	assert.Equal(t, "#\n\n##\n\n### `x` (optional, *type: any*)\n", rendered)
}

func TestRenderOptionsOverrideHeading(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{"title": "T", "description": "D", "type": "object"}`), Options{
		Title:       "  Custom   title ",
		Description: "Custom description.",
	})
	require.NoError(t, err)
	assert.Equal(t, "# Custom title\nCustom description.\n", rendered)
}

func TestRenderObjectWithPropertiesAndUnion(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{
  "type": "object",
  "properties": {
    "data": {
      "title": "Data",
      "type": "object",
      "properties": {
        "shape": {
          "type": "object",
          "properties": {"kind": {"type": "string"}},
          "oneOf": [
            {"type": "object", "description": "Circle.", "properties": {"radius": {"type": "number"}}},
            {"type": "object", "description": "Square.", "properties": {"side": {"type": "number"}}}
          ]
        }
      }
    }
  }
}`), Options{Sections: []string{"data"}})
	require.NoError(t, err)

	assert.Contains(t, rendered, "### `shape` (optional, *type: object*)\n\n- **`kind` (optional, *type: string*)**\n")
	assert.NotContains(t, rendered, "radius")
	assert.NotContains(t, rendered, "Circle.")
}

func TestRenderWarnsAboutUnusableSections(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	rendered, err := Render([]byte(`{
  "type": "object",
  "properties": {
    "data": {"title": "Data", "type": "object", "properties": {}},
    "flag": true
  }
}`), Options{
		Sections:   []string{"data", "missing", "flag"},
		SourcePath: "format.json",
		Logger:     logger,
	})
	require.NoError(t, err)
	assert.Equal(t, "#\n\n## Data\n", rendered)

	output := logs.String()
	assert.Contains(t, output, `msg="schema section not declared" source=format.json section=missing`)
	assert.Contains(t, output, `msg="schema section is not an object schema" source=format.json section=flag`)
}

func TestRenderSchemaIsRepeatable(t *testing.T) {
	t.Parallel()

	root := parseTestSchema(t, `{
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "item": {
          "type": "object",
          "properties": {"a": {"type": "integer"}},
          "examples": [{"description": "First item.", "a": 1}]
        }
      }
    }
  }
}`)

	first, err := RenderSchema(root, Options{})
	require.NoError(t, err)

	second, err := RenderSchema(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Example:\n\nFirst item.\n\n```json\n  \"a\": 1\n```\n")
	assert.NotContains(t, first, `"description"`)
}

func TestRenderSchemaRejectsMarkerRoot(t *testing.T) {
	t.Parallel()

	_, err := RenderSchema(AcceptAny, Options{})
	require.ErrorIs(t, err, ErrSchemaRootType)
}

func TestRenderGeneratedExamples(t *testing.T) {
	t.Parallel()

	schema := []byte(`{
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "item": {
          "type": "object",
          "required": ["name"],
          "properties": {"name": {"type": "string"}, "size": {"type": "integer"}}
        },
        "mode": {"type": "string", "examples": ["fast"]}
      }
    }
  }
}`)

	withoutMode, err := Render(schema, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(withoutMode, "Example:"))

	rendered, err := Render(schema, Options{ExampleMode: ExampleModeRequired})
	require.NoError(t, err)
	assert.Contains(t, rendered, "Example:\n\n```json\n  \"name\": \"<string>\"\n```\n")
	assert.Contains(t, rendered, "Example:\n\n```json\n\"fast\"\n```\n")
}

func TestRenderYAMLExampleFormat(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "point": {"type": "object", "examples": [{"x": 1, "y": 2.5}]}
      }
    }
  }
}`), Options{ExampleFormat: ExampleFormatYAML})
	require.NoError(t, err)
	assert.Contains(t, rendered, "```yaml\nx: 1\ny: 2.5\n```")
}

func TestRenderYAMLExampleOutOfRangeNumber(t *testing.T) {
	t.Parallel()

	schema := []byte(`{
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "big": {"type": "number", "examples": [1e400]}
      }
    }
  }
}`)

	rendered, err := Render(schema, Options{ExampleFormat: ExampleFormatYAML})
	require.NoError(t, err)
	assert.Contains(t, rendered, "### `big` (optional, *type: number*)\n\nExample:\n\n```yaml\n1e400\n```\n")

	rendered, err = Render(schema, Options{})
	require.NoError(t, err)
	assert.Contains(t, rendered, "```json\n1e400\n```")
}

func TestRenderIndentWidth(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "point": {"type": "object", "examples": [{"x": [1, {"y": 2}]}]}
      }
    }
  }
}`), Options{IndentWidth: 4})
	require.NoError(t, err)
	assert.Contains(t, rendered, "```json\n    \"x\": [\n        1,\n        {\n            \"y\": 2\n        }\n    ]\n```")
}

func TestRenderWrapsDescriptions(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{
  "type": "object",
  "description": "First line that is long enough to wrap here.\n\n- item one\n- item two",
  "properties": {}
}`), Options{WrapWidth: 20})
	require.NoError(t, err)
	assert.Equal(t, "#\nFirst line that is\nlong enough to wrap\nhere.\n\n- item one\n- item two\n", rendered)
}

func TestRenderOptionErrors(t *testing.T) {
	t.Parallel()

	schema := []byte(`{"type": "object"}`)

	_, err := Render(schema, Options{ExampleFormat: "toml"})
	require.ErrorIs(t, err, ErrUnknownExampleFormat)

	_, err = Render(schema, Options{ExampleMode: "some"})
	require.ErrorIs(t, err, ErrUnknownExampleMode)

	_, err = Render(schema, Options{TemplateName: "table"})
	require.ErrorIs(t, err, ErrUnknownBuiltinTemplate)

	_, err = Render(schema, Options{TemplateText: "{{ .Broken"})
	require.ErrorIs(t, err, ErrParseCustomTemplate)

	_, err = Render(schema, Options{TemplateText: "{{ .Missing }}"})
	require.ErrorIs(t, err, ErrExecuteMarkdownTemplate)

	_, err = Render([]byte(`"schema"`), Options{})
	require.ErrorIs(t, err, ErrSchemaRootType)

	_, err = Render([]byte(`{"type": `), Options{})
	require.ErrorIs(t, err, ErrDecodeSchema)
}

func TestRenderCustomTemplateFuncs(t *testing.T) {
	t.Parallel()

	rendered, err := Render([]byte(`{
  "type": "object",
  "properties": {
    "data": {"title": "Data Format_v1!", "type": "object", "properties": {"a": {"type": "string"}}}
  }
}`), Options{
		Sections:     []string{"data"},
		TemplateText: "{{ range .Sections }}[{{ .Title }}](#{{ headingAnchor .Title }})\n{{ range .Fields }}{{ jsonInline .Name }}\n{{ end }}{{ end }}",
	})
	require.NoError(t, err)
	assert.Equal(t, "[Data Format_v1!](#data-format_v1)\n\"a\"\n", rendered)
}

func TestHeadingAnchor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Data":                 "data",
		"  Sensor Readings  ":  "sensor-readings",
		"Format_v1.2 (beta)!":  "format_v12-beta",
		"`$schema` identifier": "schema-identifier",
		"Über Größe":           "über-größe",
		"":                     "",
	}

	for heading, want := range cases {
		assert.Equal(t, want, headingAnchor(heading), "heading %q", heading)
	}
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"document"}, BuiltinTemplateNames())

	byDefault, err := BuiltinTemplate("")
	require.NoError(t, err)

	byName, err := BuiltinTemplate(" Document ")
	require.NoError(t, err)
	assert.Equal(t, byDefault, byName)
	assert.Contains(t, byName, "{{ range .Sections -}}")

	_, err = BuiltinTemplate("list")
	require.ErrorIs(t, err, ErrUnknownBuiltinTemplate)
}

func TestNormalizeMarkdownOutput(t *testing.T) {
	t.Parallel()

	got := normalizeMarkdownOutput("a  \r\n\n\n\nb\n```\n\n\n```\n")
	assert.Equal(t, "a\n\nb\n```\n\n\n```", got)
}
