package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/javac.go/internal/compiler"
	"gopkg.microglot.org/javac.go/internal/config"
	"gopkg.microglot.org/javac.go/internal/fs"
	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/names"
	"gopkg.microglot.org/javac.go/internal/source"
)

type opts struct {
	Roots        []string
	Source       string
	Encoding     string
	Config       string
	Format       string
	DumpComments bool
	LogLevel     string
	LogFile      string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

// run returns 0 on success, 1 when diagnostics were reported and 2 when the
// run could not complete.
func run(ctx context.Context, args []string, lookupEnv func(string) (string, bool), stdout io.Writer, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("javacscan", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for source files.")
	flags.StringVar(&op.Source, "source", config.DefaultSource.String(), "Provide source compatibility with the specified release.")
	flags.StringVar(&op.Encoding, "encoding", source.DefaultEncoding, "Specify character encoding used by source files.")
	flags.StringVar(&op.Config, "config", "", "Read settings from a TOML or YAML file. Flags override the file.")
	flags.StringVar(&op.Format, "format", "text", "Output format: text or yaml.")
	flags.BoolVar(&op.DumpComments, "dump-comments", false, "Include comments in the output.")
	flags.StringVar(&op.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error.")
	flags.StringVar(&op.LogFile, "log-file", "", "Also write JSON logs to this file.")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	targets := flags.Args()
	if len(targets) < 1 {
		fmt.Fprintln(stderr, "javacscan: no source files")
		return 2
	}
	if op.Format != "text" && op.Format != "yaml" {
		fmt.Fprintf(stderr, "javacscan: unknown format %q\n", op.Format)
		return 2
	}

	logger, closeLog, err := newLogger(stderr, op.LogLevel, op.LogFile)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	defer closeLog()

	settings, err := resolveSettings(op, flags)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	logger.Info("settings",
		slog.String("source", settings.Source.String()),
		slog.String("encoding", settings.Encoding),
		slog.Bool("hex_floats", settings.Features.HexFloats),
		slog.Bool("binary_literals", settings.Features.BinaryLiterals),
		slog.Bool("underscores_in_literals", settings.Features.UnderscoresInLiterals),
	)

	f, err := compiler.NewDefaultFS(lookupEnv)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			fmt.Fprintln(stderr, errAbs.Error())
			return 2
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 2
		}
		mf = append(mf, rf)
	}
	mf = append(mf, f)

	pool := names.NewPool(1)
	c, err := compiler.New(
		compiler.OptionWithLookupEnv(lookupEnv),
		compiler.OptionWithFS(mf),
		compiler.OptionWithLogger(logger),
		compiler.OptionWithSettings(settings),
		compiler.OptionWithNamePool(pool),
	)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	out, err := c.Tokenize(ctx, &idl.TokenizeRequest{
		Files:    targets,
		Comments: op.DumpComments,
	})
	var me compiler.MultiException
	if err != nil && !errors.As(err, &me) {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	defer pool.Put(out.Names)

	switch op.Format {
	case "yaml":
		err = writeYAML(stdout, out)
	default:
		err = writeText(stdout, out)
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	for _, e := range me {
		fmt.Fprintln(stderr, e.Error())
	}
	if len(me) > 0 {
		return 1
	}
	return 0
}

// resolveSettings layers the settings file over the defaults and the flags
// that were given explicitly over the file.
func resolveSettings(op *opts, flags *pflag.FlagSet) (config.Settings, error) {
	settings := config.Default()
	file := &config.File{}
	if op.Config != "" {
		loaded, err := config.Load(op.Config)
		if err != nil {
			return settings, err
		}
		file = loaded
	}
	if flags.Changed("source") {
		file.Source = op.Source
	}
	if flags.Changed("encoding") {
		file.Encoding = op.Encoding
	}
	return file.Apply(settings)
}

func newLogger(stderr io.Writer, level string, logFile string) (*slog.Logger, func(), error) {
	lv := new(slog.LevelVar)
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q", level)
	}
	lv.Set(l)

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lv}),
	}
	closeLog := func() {}
	if logFile != "" {
		fh, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(fh, &slog.HandlerOptions{Level: lv}))
		closeLog = func() {
			_ = fh.Close()
		}
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeLog, nil
}

type dumpFile struct {
	URI      string      `yaml:"uri"`
	Package  string      `yaml:"package,omitempty"`
	Tokens   []dumpToken `yaml:"tokens"`
	Comments []dumpToken `yaml:"comments,omitempty"`
}

type dumpToken struct {
	Type       string `yaml:"type"`
	Line       int32  `yaml:"line"`
	Column     int32  `yaml:"column"`
	Start      int    `yaml:"start"`
	End        int    `yaml:"end"`
	Raw        string `yaml:"raw,omitempty"`
	Name       string `yaml:"name,omitempty"`
	Value      string `yaml:"value,omitempty"`
	Radix      int    `yaml:"radix,omitempty"`
	Deprecated bool   `yaml:"deprecated,omitempty"`
}

func newDumpToken(buf *source.Buffer, kind string, span idl.Span) dumpToken {
	m := buf.LineMap()
	return dumpToken{
		Type:   kind,
		Line:   m.Line(span.Start),
		Column: m.Column(span.Start),
		Start:  span.Start,
		End:    span.End,
		Raw:    buf.Raw(span.Start, span.End),
	}
}

func dump(out *idl.TokenizeResponse) []dumpFile {
	title := cases.Title(language.English)
	files := make([]dumpFile, 0, len(out.Files))
	for _, tf := range out.Files {
		df := dumpFile{
			URI:     tf.URI,
			Package: tf.Package,
			Tokens:  make([]dumpToken, 0, len(tf.Tokens)),
		}
		for _, t := range tf.Tokens {
			dt := newDumpToken(tf.Source, t.Type.String(), t.Span)
			if t.Type == idl.TokenTypeIdentifier {
				dt.Name = t.Name.String()
			}
			dt.Value = t.Value
			dt.Radix = t.Radix
			dt.Deprecated = t.Deprecated
			df.Tokens = append(df.Tokens, dt)
		}
		for _, c := range tf.Comments {
			dt := newDumpToken(tf.Source, "Comment"+title.String(c.Style.String()), c.Span)
			dt.Deprecated = c.Deprecated
			df.Comments = append(df.Comments, dt)
		}
		files = append(files, df)
	}
	return files
}

func writeYAML(w io.Writer, out *idl.TokenizeResponse) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump(out)); err != nil {
		return err
	}
	return enc.Close()
}

// writeText prints one line per token, and per comment when requested, in
// source order: location, type, raw text and the literal value if any.
func writeText(w io.Writer, out *idl.TokenizeResponse) error {
	for _, df := range dump(out) {
		lines := append(df.Tokens, df.Comments...)
		sort.SliceStable(lines, func(i int, j int) bool {
			return lines[i].Start < lines[j].Start
		})
		for _, t := range lines {
			line := fmt.Sprintf("%s:%d:%d\t%s\t%s", df.URI, t.Line, t.Column, t.Type, t.Raw)
			if t.Value != "" || strings.HasSuffix(t.Type, "Literal") {
				line = line + fmt.Sprintf("\t%q", t.Value)
			}
			if t.Radix != 0 {
				line = line + fmt.Sprintf("\tradix=%d", t.Radix)
			}
			if t.Deprecated {
				line = line + "\tdeprecated"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
