// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

const (
	// defaultPandocBinary is looked up in PATH when PandocConverter.Binary is empty.
	defaultPandocBinary = "pandoc"
	// defaultPandocTarget is the pandoc output format.
	defaultPandocTarget = "latex"
)

// DefaultPandocArgs are extra pandoc arguments used when PandocConverter.Args is nil.
var DefaultPandocArgs = []string{"--filter=pandoc-minted", "--natbib"}

// citationPattern matches natbib citation commands with leading whitespace.
var citationPattern = regexp.MustCompile(`\s*\\cite[p|t]?`)

// Converter turns rendered markdown into another document format.
type Converter interface {
	Convert(ctx context.Context, markdown string) ([]byte, error)
}

// PandocConverter converts markdown by running external pandoc binary.
type PandocConverter struct {
	// Binary is pandoc executable name or path; defaults to "pandoc".
	Binary string
	// To is pandoc output format; defaults to "latex".
	To string
	// Args are extra arguments; nil means DefaultPandocArgs.
	Args []string
	// KeepCitations disables rewriting of \citep and \citet into ~\cite.
	KeepCitations bool
}

// Convert runs pandoc with markdown on stdin and returns its output.
// LaTeX output has natbib citations rewritten into plain non-breaking \cite.
func (converter PandocConverter) Convert(ctx context.Context, markdown string) ([]byte, error) {
	binary := strings.TrimSpace(converter.Binary)
	if binary == "" {
		binary = defaultPandocBinary
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH: %w", ErrConvert, binary, err)
	}

	command := exec.CommandContext(ctx, path, converter.arguments()...)
	command.Stdin = strings.NewReader(markdown)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		return nil, fmt.Errorf("%w: %s %s: %w", ErrConvert, binary, strings.Join(converter.arguments(), " "), errors.New(detail))
	}

	if converter.KeepCitations || converter.target() != defaultPandocTarget {
		return stdout.Bytes(), nil
	}

	return RewriteCitations(stdout.Bytes()), nil
}

// RewriteCitations replaces \citep and \citet, with preceding whitespace, by ~\cite.
func RewriteCitations(tex []byte) []byte {
	return citationPattern.ReplaceAll(tex, []byte(`~\cite`))
}

// arguments builds pandoc command line.
func (converter PandocConverter) arguments() []string {
	extra := converter.Args
	if extra == nil {
		extra = DefaultPandocArgs
	}

	args := make([]string, 0, len(extra)+2)
	args = append(args, "--from=markdown", "--to="+converter.target())
	return append(args, extra...)
}

// target returns configured pandoc output format or default.
func (converter PandocConverter) target() string {
	if to := strings.TrimSpace(converter.To); to != "" {
		return to
	}

	return defaultPandocTarget
}
