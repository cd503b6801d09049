// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"
	"unicode"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	defaultTemplateName: "templates/document.md.gotmpl",
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	return slices.Sorted(maps.Keys(builtInTemplateFiles))
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = defaultTemplateName
	}

	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}

// resolveTemplate parses Options.TemplateText when set, the named built-in otherwise.
func resolveTemplate(opt Options) (*template.Template, error) {
	name, text := "custom", strings.TrimSpace(opt.TemplateText)
	custom := text != ""

	if !custom {
		var err error
		if text, err = BuiltinTemplate(opt.TemplateName); err != nil {
			return nil, err
		}

		name = defaultTemplateName
		if trimmed := strings.ToLower(strings.TrimSpace(opt.TemplateName)); trimmed != "" {
			name = trimmed
		}
	}

	parsed, err := template.New(name).Funcs(template.FuncMap{
		"jsonInline":    inlineLiteral,
		"headingAnchor": headingAnchor,
	}).Parse(text)

	switch {
	case err == nil:
		return parsed, nil
	case custom:
		return nil, fmt.Errorf("%w: %w", ErrParseCustomTemplate, err)
	default:
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, name, err)
	}
}

// inlineLiteral renders value as compact literal safe inside a code span.
func inlineLiteral(value any) string {
	return escapeInline(FormatValue(value, 0, 0))
}

// headingAnchor returns the GitHub anchor of a markdown heading:
// lowercase, punctuation dropped except '-' and '_', spaces become '-'.
func headingAnchor(heading string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '-'
		case r == '-', r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, strings.TrimSpace(heading))
}
