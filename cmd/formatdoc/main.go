// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

// formatdoc generates CommonMark (and optionally LaTeX) docs for a data format JSON Schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/formatdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/formatdoc"
	_buildTime string
)

// cliOptions describes formatdoc CLI flags and subcommands.
type cliOptions struct {
	Verbose bool `short:"v" long:"verbose" env:"FORMATDOC_VERBOSE" description:"Log debug details to stderr"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Render   renderCommand   `command:"render" description:"Render schema to markdown (and LaTeX)"`
	Example  exampleCommand  `command:"example" description:"Generate example payload from schema"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplatePath  string   `short:"f" long:"template-file" env:"FORMATDOC_TEMPLATE_FILE" description:"Path to custom markdown template (.gotmpl)"`
	Title         string   `short:"T" long:"title" env:"FORMATDOC_TITLE" description:"Override document title from schema"`
	Description   string   `short:"D" long:"description" env:"FORMATDOC_DESCRIPTION" description:"Override document description from schema"`
	Sections      []string `short:"s" long:"section" env:"FORMATDOC_SECTIONS" env-delim:"," description:"Root property rendered as section, repeatable (default: $schema, metadata, data)"`
	WrapWidth     int      `short:"w" long:"wrap" env:"FORMATDOC_WRAP" description:"Wrap width for plain text descriptions, 0 disables wrapping" default:"0"`
	IndentWidth   int      `short:"i" long:"indent" env:"FORMATDOC_INDENT" description:"Indent width of JSON example blocks" default:"2"`
	ExampleFormat string   `long:"example-format" env:"FORMATDOC_EXAMPLE_FORMAT" description:"Example block format" choice:"json" choice:"yaml" default:"json"`
	ExampleMode   string   `long:"example-mode" env:"FORMATDOC_EXAMPLE_MODE" description:"Synthesize examples for fields without examples" choice:"none" choice:"all" choice:"required" default:"none"`
}

// typesetFlags groups LaTeX conversion flags.
type typesetFlags struct {
	TexPath       string   `short:"x" long:"tex" env:"FORMATDOC_TEX" description:"Also write LaTeX fragment to this path (requires pandoc)"`
	Pandoc        string   `long:"pandoc" env:"FORMATDOC_PANDOC" description:"Pandoc executable" default:"pandoc"`
	PandocArgs    []string `long:"pandoc-arg" env:"FORMATDOC_PANDOC_ARGS" env-delim:" " description:"Extra pandoc argument, repeatable (default: --filter=pandoc-minted --natbib)"`
	KeepCitations bool     `long:"keep-citations" env:"FORMATDOC_KEEP_CITATIONS" description:"Keep \\citep and \\citet commands as produced by pandoc"`
}

// renderCommand converts schema to markdown.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input schema file path, JSON or YAML (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags  markdownRenderFlags `group:"Markdown Render"`
	TypesetFlags typesetFlags        `group:"Typeset"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.RenderFlags, command.TypesetFlags, command.Args.Input, command.Args.Output)
}

// exampleCommand generates placeholder payload from schema.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input schema file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output payload file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Mode   string `short:"m" long:"mode" description:"Property coverage" choice:"all" choice:"required" default:"all"`
	Format string `short:"o" long:"format" description:"Payload format" choice:"json" choice:"yaml" default:"json"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Mode, command.Format, command.Args.Input, command.Args.Output)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template name" choice:"document" default:"document"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	ctx         context.Context
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	verbose     *bool
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runWithIO(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(context.Background(), args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "formatdoc"
	}

	runner := cliRunner{
		ctx:         ctx,
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger builds text logger on stderr honoring --verbose.
func (runner *cliRunner) logger() *slog.Logger {
	level := slog.LevelInfo
	if runner.verbose != nil && *runner.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level}))
}

// runRender renders markdown, writes it and optionally converts it to LaTeX.
func (runner *cliRunner) runRender(renderFlags markdownRenderFlags, typeset typesetFlags, inputPath, outputPath string) error {
	schemaBytes, sourcePath, err := runner.readSchemaInput(inputPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	logger := runner.logger()
	renderOptions := formatdoc.Options{
		Title:         renderFlags.Title,
		Description:   renderFlags.Description,
		SourcePath:    sourcePath,
		Sections:      renderFlags.Sections,
		WrapWidth:     renderFlags.WrapWidth,
		IndentWidth:   renderFlags.IndentWidth,
		ExampleFormat: formatdoc.ExampleFormat(renderFlags.ExampleFormat),
		ExampleMode:   formatdoc.ExampleMode(renderFlags.ExampleMode),
		Logger:        logger,
	}

	if renderFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(renderFlags.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", renderFlags.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := formatdoc.Render(schemaBytes, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	if err := runner.writeOutput(outputPath, []byte(rendered), "markdown"); err != nil {
		return err
	}

	if strings.TrimSpace(outputPath) != "" {
		logger.Info("wrote markdown", slog.String("path", outputPath))
	}

	if strings.TrimSpace(typeset.TexPath) == "" {
		return nil
	}

	converter := formatdoc.PandocConverter{
		Binary:        typeset.Pandoc,
		Args:          typeset.PandocArgs,
		KeepCitations: typeset.KeepCitations,
	}

	tex, err := converter.Convert(runner.ctx, rendered)
	if err != nil {
		return err
	}

	if err := os.WriteFile(typeset.TexPath, tex, 0o600); err != nil {
		return fmt.Errorf("write latex file %q: %w", typeset.TexPath, err)
	}

	logger.Info("wrote latex", slog.String("path", typeset.TexPath))
	return nil
}

// runExample writes generated example payload to stdout or file.
func (runner *cliRunner) runExample(mode, format, inputPath, outputPath string) error {
	schemaBytes, _, err := runner.readSchemaInput(inputPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	payload, err := formatdoc.GenerateExample(schemaBytes, formatdoc.ExampleMode(mode), formatdoc.ExampleFormat(format))
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	return runner.writeOutput(outputPath, payload, "example")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := formatdoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, []byte(tpl), "template")
}

// writeOutput writes data to file path or stdout when path is empty.
func (runner *cliRunner) writeOutput(path string, data []byte, kind string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, path, err)
	}

	return nil
}

// readSchemaInput reads schema from file path or stdin and returns source marker.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read schema file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read schema from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner
	options.Example.runner = runner
	options.Template.runner = runner
	options.Version.runner = runner
	runner.verbose = &options.Verbose

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render data format JSON Schema (JSON or YAML) to markdown.
Sections are the root properties $schema, metadata and data unless --section is given.
With --tex the markdown is also converted to a LaTeX fragment through pandoc.

Examples:
> $ %s render format-1.0.json README.md
> $ %s render --tex docs/format.tex format-1.0.json README.md
> $ cat format.yaml | %s render --wrap 100 > README.md
`, programName, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate placeholder payload shaped like the schema.

Examples:
> $ %s example format-1.0.json
> $ %s example -m required -o yaml format-1.0.json example.yaml
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > document.gotmpl
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
}
