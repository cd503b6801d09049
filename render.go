// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = "document"
)

// DefaultSections lists top-level schema properties rendered as document sections.
var DefaultSections = []string{"$schema", "metadata", "data"}

// Options configures document rendering.
type Options struct {
	// Title overrides schema "title" for the document heading.
	Title string
	// Description overrides schema "description" below the document heading.
	Description string
	// SourcePath is attached to log records.
	SourcePath string
	// Sections lists root property names rendered as sections, in order.
	// Defaults to DefaultSections.
	Sections []string
	// TemplateName selects built-in template; defaults to "document".
	TemplateName string
	// TemplateText replaces built-in template when not empty.
	TemplateText string
	// WrapWidth wraps plain description paragraphs; 0 keeps them verbatim.
	WrapWidth int
	// IndentWidth is the indentation step of JSON example blocks; defaults to 2.
	IndentWidth int
	// ExampleFormat selects example block encoding; defaults to json.
	ExampleFormat ExampleFormat
	// ExampleMode synthesizes examples for fields without declared examples.
	// Empty or "none" disables synthesis.
	ExampleMode ExampleMode
	// Logger receives render warnings; nil discards them.
	Logger *slog.Logger
}

// RenderFile reads schema from file and renders markdown documentation.
func RenderFile(path string, opt Options) (string, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	if strings.TrimSpace(opt.SourcePath) == "" {
		opt.SourcePath = path
	}

	return Render(schemaBytes, opt)
}

// Render converts JSON or YAML schema bytes into markdown document.
func Render(schemaBytes []byte, opt Options) (string, error) {
	decoded, err := Decode(schemaBytes)
	if err != nil {
		return "", err
	}

	root, err := ParseSchema(decoded)
	if err != nil {
		return "", err
	}

	return RenderSchema(root, opt)
}

// RenderSchema renders already parsed schema tree into markdown document.
func RenderSchema(root Node, opt Options) (string, error) {
	schema, ok := root.(*Schema)
	if !ok || schema == nil {
		return "", fmt.Errorf("%w, got %T", ErrSchemaRootType, root)
	}

	view, err := buildDocumentView(schema, opt)
	if err != nil {
		return "", err
	}

	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// logger returns configured logger or a discarding one.
func (opt Options) logger() *slog.Logger {
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if source := strings.TrimSpace(opt.SourcePath); source != "" {
		logger = logger.With(slog.String("source", source))
	}

	return logger
}

// sections returns configured section keys or defaults.
func (opt Options) sections() []string {
	if len(opt.Sections) == 0 {
		return DefaultSections
	}

	return opt.Sections
}

// indentWidth returns configured example indentation or default.
func (opt Options) indentWidth() int {
	if opt.IndentWidth <= 0 {
		return defaultIndentWidth
	}

	return opt.IndentWidth
}
