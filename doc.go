// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

/*
Package formatdoc renders CommonMark documentation for data formats described
by a JSON Schema.

The schema root is expected to declare three sections as properties: the
meta-identifier "$schema", "metadata" and "data". Every section becomes a
second level heading, every section property a third level subsection with
its required flag, type, description, a nested bullet list mirroring the
schema structure and fenced example blocks.

Render a schema file:

	md, err := formatdoc.RenderFile("format-1.0.json", formatdoc.Options{})
	if err != nil {
		return err
	}

	fmt.Print(md)

JSON and YAML schemas are both accepted, member order is preserved:

	root, err := formatdoc.Decode(schemaBytes)
	if err != nil {
		return err
	}

	node, err := formatdoc.ParseSchema(root)
	if err != nil {
		return err
	}

	for _, line := range formatdoc.RenderBullets(node, "", "") {
		fmt.Println(line)
	}

Pretty-print an example value the way documents show it:

	fmt.Println(formatdoc.FormatValue([]any{1, 2, 3}, 2, 0)) // [1, 2, 3]

Convert rendered markdown to a LaTeX fragment through pandoc:

	tex, err := formatdoc.PandocConverter{}.Convert(ctx, md)
	if err != nil {
		return err
	}

Generate a placeholder payload from the schema:

	data, err := formatdoc.GenerateExample(schemaBytes, formatdoc.ExampleModeRequired, formatdoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
*/
package formatdoc
