package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/treebridge/convert"
	"github.com/wippyai/treebridge/document"
	"github.com/wippyai/treebridge/errors"
	"github.com/wippyai/treebridge/schema"
	"github.com/wippyai/treebridge/tree"
)

type options struct {
	input       string
	format      string
	schema      bool
	interactive bool
	color       bool
	width       int
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code. Deferred
// cleanup, including the logger flush, runs before main exits.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("treeconv", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		format      = flags.StringP("format", "f", "auto", "Input format: auto, json, yaml or cbor")
		showSchema  = flags.BoolP("schema", "s", false, "Print the inferred WIT type")
		interactive = flags.BoolP("interactive", "i", false, "Browse the value in a TUI")
		verbose     = flags.BoolP("verbose", "v", false, "Log conversion details to stderr")
		noColor     = flags.Bool("no-color", false, "Disable styled output")
	)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: treeconv [flags] [file]")
		fmt.Fprintln(stderr, "       treeconv -s config.yaml")
		fmt.Fprintln(stderr, "       cat payload.cbor | treeconv -f cbor")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if flags.NArg() > 1 {
		flags.Usage()
		return 2
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger = l
	}
	defer logger.Sync()
	convert.SetLogger(logger)

	opts := options{
		input:       flags.Arg(0),
		format:      *format,
		schema:      *showSchema,
		interactive: *interactive,
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts.color = !*noColor
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			// leaves share the line with indentation and a label
			opts.width = w / 2
		}
	}

	data, err := readInput(opts.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.interactive {
		err = runInteractive(sourceName(opts.input), opts.format, data)
	} else {
		err = run(opts, data, stdout, logger)
	}
	if err != nil {
		logger.Debug("command failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

func run(opts options, data []byte, out io.Writer, logger *zap.Logger) error {
	format, err := resolveFormat(opts.format, opts.input, data)
	if err != nil {
		return err
	}
	logger.Debug("decoding input",
		zap.String("source", sourceName(opts.input)),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)))

	v, err := load(format, data)
	if err != nil {
		return err
	}

	r := renderer{styled: opts.color, width: opts.width}
	fmt.Fprintf(out, "%s %s\n\n", r.paint(titleStyle, "Tree"), sourceName(opts.input))
	fmt.Fprint(out, r.Render(v))

	if opts.schema {
		t, err := schema.Infer(v)
		if err != nil {
			return fmt.Errorf("schema: %w", err)
		}
		fmt.Fprintf(out, "\n%s %s\n", r.paint(titleStyle, "WIT"), r.paint(typeStyle, schema.Describe(t)))
	}
	return nil
}

func load(format document.Format, data []byte) (tree.Value, error) {
	doc, err := document.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	v, err := convert.Convert(doc)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	return v, nil
}

// resolveFormat honors an explicit format, then the file extension, then
// sniffs the content.
func resolveFormat(name, path string, data []byte) (document.Format, error) {
	if name != "" && name != "auto" {
		f, err := document.ParseFormat(name)
		if err != nil {
			return "", errors.Wrap(errors.PhaseCLI, errors.KindInvalidInput, err, "--format")
		}
		return f, nil
	}
	if f, ok := document.DetectFormat(path); ok {
		return f, nil
	}
	return sniffFormat(data), nil
}

// sniffFormat guesses JSON for text opening with '{' or '[', YAML for other
// valid UTF-8 and CBOR for everything else.
func sniffFormat(data []byte) document.Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return document.FormatJSON
	}
	if utf8.Valid(data) {
		return document.FormatYAML
	}
	return document.FormatCBOR
}
