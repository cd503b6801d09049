// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// defaultIndentWidth is the example block indentation step.
const defaultIndentWidth = 2

// exampleDescriptionKey is the example object member rendered as prose above the block.
const exampleDescriptionKey = "description"

// FormatValue pretty-prints a JSON-compatible value for documentation.
//
// Scalars use their JSON literal. Arrays of scalars stay on one line, other
// arrays and objects put one entry per line indented by
// (level+1)*indentWidth spaces, closing bracket at the parent indentation.
func FormatValue(value any, indentWidth, level int) string {
	if IsScalar(value) {
		return scalarLiteral(value)
	}

	indentWidth = max(indentWidth, 0)
	level = max(level, 0)
	outer := strings.Repeat(" ", indentWidth*level)
	inner := strings.Repeat(" ", indentWidth*(level+1))

	switch typed := value.(type) {
	case []any:
		if len(typed) == 0 {
			return "[]"
		}

		if AllScalars(typed) {
			literals := make([]string, 0, len(typed))
			for _, item := range typed {
				literals = append(literals, scalarLiteral(item))
			}

			return "[" + strings.Join(literals, ", ") + "]"
		}

		pieces := make([]string, 0, len(typed))
		for _, item := range typed {
			pieces = append(pieces, inner+FormatValue(item, indentWidth, level+1))
		}

		return "[\n" + strings.Join(pieces, ",\n") + "\n" + outer + "]"

	case Object:
		if len(typed) == 0 {
			return "{}"
		}

		pieces := make([]string, 0, len(typed))
		for _, member := range typed {
			pieces = append(pieces, inner+quoteJSONString(member.Key)+": "+FormatValue(member.Value, indentWidth, level+1))
		}

		return "{\n" + strings.Join(pieces, ",\n") + "\n" + outer + "}"

	case map[string]any:
		return FormatValue(objectFromMap(typed), indentWidth, level)

	default:
		return scalarLiteral(typed)
	}
}

// FormatExamples renders example values as fenced json blocks separated by blank lines.
func FormatExamples(examples []any) string {
	out, _ := formatExamples(examples, ExampleFormatJSON, defaultIndentWidth)
	return out
}

// SplitExampleDescription separates inline "description" member from example object.
// The input value is never modified; rest is a copy without the member.
func SplitExampleDescription(value any) (description string, rest any, ok bool) {
	switch typed := value.(type) {
	case Object:
		raw, exists := typed.Get(exampleDescriptionKey)
		if !exists {
			return "", value, false
		}

		return descriptionText(raw), typed.Without(exampleDescriptionKey), true

	case map[string]any:
		raw, exists := typed[exampleDescriptionKey]
		if !exists {
			return "", value, false
		}

		copied := make(map[string]any, len(typed))
		for key, item := range typed {
			if key == exampleDescriptionKey {
				continue
			}

			copied[key] = item
		}

		return descriptionText(raw), copied, true

	default:
		return "", value, false
	}
}

// formatExamples renders example blocks in selected format.
func formatExamples(examples []any, format ExampleFormat, indentWidth int) (string, error) {
	blocks := make([]string, 0, len(examples)*2)
	for _, example := range examples {
		if description, rest, ok := SplitExampleDescription(example); ok {
			blocks = append(blocks, "\n"+description)
			example = rest
		}

		block, err := formatExampleBlock(example, format, indentWidth)
		if err != nil {
			return "", err
		}

		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n\n"), nil
}

// formatExampleBlock renders one fenced example body.
func formatExampleBlock(value any, format ExampleFormat, indentWidth int) (string, error) {
	switch format {
	case ExampleFormatYAML:
		data, err := marshalExampleYAML(value)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
		}

		return "```yaml\n" + strings.TrimRight(string(data), "\n") + "\n```", nil

	default:
		body := strings.Trim(strings.Trim(FormatValue(value, indentWidth, 0), "{}"), "\n")
		return "```json\n" + body + "\n```", nil
	}
}

// descriptionText renders example description value as prose.
func descriptionText(value any) string {
	if text, ok := value.(string); ok {
		return text
	}

	return FormatValue(value, defaultIndentWidth, 0)
}

// scalarLiteral renders value as single-line JSON literal.
func scalarLiteral(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(typed)
	case json.Number:
		return typed.String()
	case string:
		return quoteJSONString(typed)
	case int:
		return strconv.Itoa(typed)
	case int8:
		return strconv.FormatInt(int64(typed), 10)
	case int16:
		return strconv.FormatInt(int64(typed), 10)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	case uint:
		return strconv.FormatUint(uint64(typed), 10)
	case uint8:
		return strconv.FormatUint(uint64(typed), 10)
	case uint16:
		return strconv.FormatUint(uint64(typed), 10)
	case uint32:
		return strconv.FormatUint(uint64(typed), 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case float32:
		return floatLiteral(float64(typed), 32)
	case float64:
		return floatLiteral(typed, 64)
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}

		return string(data)
	}
}

// floatLiteral renders float keeping a fraction mark on integral values.
// Exponent form is used only outside [1e-6, 1e21), matching encoding/json.
func floatLiteral(value float64, bitSize int) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	format := byte('f')
	if abs := math.Abs(value); abs != 0 {
		if bitSize == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	text := strconv.FormatFloat(value, format, -1, bitSize)
	if format == 'e' {
		// clean up e-09 to e-9
		if n := len(text); n >= 4 && text[n-4] == 'e' && text[n-3] == '-' && text[n-2] == '0' {
			text = text[:n-2] + text[n-1:]
		}
	}

	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}

	return text
}

// quoteJSONString encodes string as JSON literal without HTML escaping.
func quoteJSONString(value string) string {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return strconv.Quote(value)
	}

	return strings.TrimRight(out.String(), "\n")
}

// objectFromMap converts unordered map into Object with sorted keys.
func objectFromMap(values map[string]any) Object {
	out := make(Object, 0, len(values))
	for _, key := range sortedKeys(values) {
		out = append(out, Member{Key: key, Value: values[key]})
	}

	return out
}
