// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// fenceMarker opens and closes fenced code blocks.
const fenceMarker = "```"

// structuredLinePrefixes mark description lines that must not be joined into paragraphs.
var structuredLinePrefixes = []string{"#", ">", "- ", "* ", "+ ", "|", fenceMarker, "---", "***", "___"}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// formatDescriptionMarkdown wraps plain paragraphs to wrapWidth display columns.
// Fenced blocks, headings, quotes, lists, tables and indented code stay as is.
func formatDescriptionMarkdown(text string, wrapWidth int) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	var (
		out       []string
		paragraph []string
		inFence   bool
	)

	flush := func() {
		if len(paragraph) == 0 {
			return
		}

		out = append(out, wrapParagraph(strings.Join(paragraph, " "), wrapWidth)...)
		paragraph = paragraph[:0]
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, fenceMarker):
			flush()
			out = append(out, line)
			inFence = !inFence
		case inFence:
			out = append(out, line)
		case trimmed == "":
			flush()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
		case isStructuredLine(line):
			flush()
			out = append(out, line)
		default:
			paragraph = append(paragraph, trimmed)
		}
	}

	flush()
	return strings.Join(out, "\n")
}

// isStructuredLine reports whether line is markdown structure rather than prose.
func isStructuredLine(line string) bool {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range structuredLinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return hasOrderedListPrefix(trimmed)
}

// hasOrderedListPrefix reports whether line starts with "1. " or "1) ".
func hasOrderedListPrefix(line string) bool {
	digits := len(line) - len(strings.TrimLeft(line, "0123456789"))
	if digits == 0 || digits+1 >= len(line) {
		return false
	}

	marker := line[digits]
	return (marker == '.' || marker == ')') && line[digits+1] == ' '
}

// wrapParagraph wraps one plain paragraph to max display width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentWidth := runewidth.StringWidth(current)

	for _, word := range words[1:] {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+1+wordWidth <= width {
			current += " " + word
			currentWidth += 1 + wordWidth
			continue
		}

		out = append(out, current)
		current = word
		currentWidth = wordWidth
	}

	return append(out, current)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput trims trailing spaces and collapses blank line runs outside fences.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	previousBlank := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			inFence = !inFence
		}

		blank := trimmed == ""
		if blank && !inFence {
			if previousBlank {
				continue
			}

			line = ""
		}

		previousBlank = blank && !inFence
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}

// sortedKeys returns deterministic sorted keys of a decoded map.
func sortedKeys(values map[string]any) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
