// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"log/slog"
	"slices"
	"strings"
)

// documentView is the root view model passed to markdown templates.
type documentView struct {
	Title       string
	Description string
	Sections    []sectionView
}

// sectionView represents one top-level section (a root property) of the document.
type sectionView struct {
	Key         string
	Title       string
	Description string
	Fields      []fieldView
}

// fieldView represents one subsection for a property of a section.
type fieldView struct {
	Name         string
	Required     bool
	Requirement  string
	Type         string
	Description  string
	Bullets      string
	ExampleLabel string
	Examples     string
	// GeneratedExample is set when Examples were synthesized from the schema.
	GeneratedExample bool
}

// viewBuilder assembles document view from parsed schema.
type viewBuilder struct {
	walker      bulletWalker
	exampleMode ExampleMode
	wrapWidth   int
	logger      *slog.Logger
}

// buildDocumentView prepares data for markdown template rendering.
func buildDocumentView(root *Schema, opt Options) (documentView, error) {
	exampleFormat, err := normalizeExampleFormat(opt.ExampleFormat)
	if err != nil {
		return documentView{}, err
	}

	exampleMode, err := normalizeRenderExampleMode(opt.ExampleMode)
	if err != nil {
		return documentView{}, err
	}

	builder := viewBuilder{
		walker: bulletWalker{
			exampleFormat: exampleFormat,
			indentWidth:   opt.indentWidth(),
		},
		exampleMode: exampleMode,
		wrapWidth:   max(opt.WrapWidth, 0),
		logger:      opt.logger(),
	}

	view := documentView{
		Title:       firstNonEmpty(sanitizeText(opt.Title), root.Title),
		Description: builder.description(firstNonEmpty(strings.TrimSpace(opt.Description), root.Description)),
	}

	keys := opt.sections()
	view.Sections = make([]sectionView, 0, len(keys))
	for _, key := range keys {
		node, ok := root.Property(key)
		if !ok {
			builder.logger.Warn("schema section not declared", slog.String("section", key))
			continue
		}

		section, ok := node.(*Schema)
		if !ok || section == nil {
			builder.logger.Warn("schema section is not an object schema", slog.String("section", key))
			continue
		}

		rendered, err := builder.renderSection(key, section)
		if err != nil {
			return documentView{}, err
		}

		view.Sections = append(view.Sections, rendered)
	}

	return view, nil
}

// renderSection builds heading, description and one field per declared property.
func (builder viewBuilder) renderSection(key string, section *Schema) (sectionView, error) {
	out := sectionView{
		Key:         key,
		Title:       section.Title,
		Description: builder.description(section.Description),
		Fields:      make([]fieldView, 0, len(section.Properties)),
	}

	for _, property := range section.Properties {
		field, err := builder.renderField(property.Name, property.Node, section.IsRequired(property.Name))
		if err != nil {
			return sectionView{}, err
		}

		out.Fields = append(out.Fields, field)
	}

	builder.logger.Debug("rendered section",
		slog.String("section", key),
		slog.Int("fields", len(out.Fields)),
	)

	return out, nil
}

// renderField builds heading, description, bullet substructure and examples of one property.
func (builder viewBuilder) renderField(name string, node Node, required bool) (fieldView, error) {
	field := fieldView{
		Name:        escapeInline(name),
		Required:    required,
		Requirement: requirementText(required),
		Type:        typeLabelOrAny(node),
		Description: builder.description(nodeDescription(node)),
	}

	bullets, err := builder.walker.bullets(node, "", "")
	if err != nil {
		return fieldView{}, err
	}

	field.Bullets = strings.Join(bullets, "\n")

	examples := nodeExamples(node)
	if len(examples) == 0 && builder.exampleMode != ExampleModeNone {
		examples = []any{ExampleValue(node, builder.exampleMode)}
		field.GeneratedExample = true
	}

	if len(examples) > 0 {
		rendered, err := formatExamples(examples, builder.walker.exampleFormat, builder.walker.indentWidth)
		if err != nil {
			return fieldView{}, err
		}

		field.ExampleLabel = exampleLabel(len(examples))
		field.Examples = rendered
	}

	return field, nil
}

// description formats prose block, wrapping plain paragraphs when enabled.
func (builder viewBuilder) description(text string) string {
	text = strings.TrimSpace(text)
	if builder.wrapWidth <= 0 {
		return text
	}

	return formatDescriptionMarkdown(text, builder.wrapWidth)
}

// isRequired reports whether property key is present in required list.
func isRequired(required []string, key string) bool {
	return slices.Contains(required, key)
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
