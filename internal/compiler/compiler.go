// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.microglot.org/javac.go/internal/compiler/java"
	"gopkg.microglot.org/javac.go/internal/config"
	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/iter"
	"gopkg.microglot.org/javac.go/internal/names"
	"gopkg.microglot.org/javac.go/internal/target"
)

type Option func(c *compiler) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

func OptionWithLogger(logger *slog.Logger) Option {
	return func(c *compiler) error {
		c.Logger = logger
		return nil
	}
}

// OptionWithSettings selects the language version, literal features and
// source encoding.
func OptionWithSettings(settings config.Settings) Option {
	return func(c *compiler) error {
		c.Settings = settings
		return nil
	}
}

// OptionWithNamePool makes each run take its interning table from the pool.
// The table is handed to the caller in the response.
func OptionWithNamePool(pool *names.Pool) Option {
	return func(c *compiler) error {
		c.Pool = pool
		return nil
	}
}

func OptionWithMaxConcurrency(max int) Option {
	return func(c *compiler) error {
		if max < 0 {
			return exc.New(exc.Location{}, exc.CodeInvalidSettings, "max concurrency must not be negative")
		}
		c.MaxConcurrency = max
		return nil
	}
}

// OptionWithHooks installs scanner hooks shared by every file. They must be
// safe for concurrent use.
func OptionWithHooks(hooks java.Hooks) Option {
	return func(c *compiler) error {
		c.Hooks = hooks
		return nil
	}
}

func New(opts ...Option) (idl.Tokenizer, error) {
	c := &compiler{
		Settings: config.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = newSemaphore(c.MaxConcurrency)
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Pool == nil {
		c.Pool = names.NewPool(0)
	}
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             idl.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Logger         *slog.Logger
	Settings       config.Settings
	Pool           *names.Pool
	Hooks          java.Hooks
}

func (self *compiler) Tokenize(ctx context.Context, req *idl.TokenizeRequest) (*idl.TokenizeResponse, error) {
	files := make([]idl.File, 0, len(req.Files))
	for _, f := range req.Files {
		in, err := self.FS.Open(ctx, target.Normalize(f))
		if err != nil {
			return nil, err
		}
		known := iter.NewIteratorFilter(iter.NewSlice(in), iter.FilterFunc[idl.File](func(ctx context.Context, f idl.File) bool {
			return f.Kind(ctx) != idl.FileKindNone
		}))
		kept, err := iter.Collect(ctx, known)
		if err != nil {
			return nil, err
		}
		files = append(files, kept...)
	}

	table := self.Pool.Get()
	locked := names.NewLocked(table)
	lexer := java.NewLexerJava(&java.Config{
		Source:   self.Settings.Source,
		Features: self.Settings.Features,
		Encoding: self.Settings.Encoding,
		Names:    locked,
		Keywords: java.NewKeywords(locked),
		Reporter: self.Reporter,
		Logger:   self.Logger,
		Hooks:    self.Hooks,
	}, java.LexerJavaOptionComments(req.Comments))

	loaded := &sync.Map{}
	results := make(chan fileResult, len(files))
	for _, file := range files {
		go func(file idl.File) {
			tf, err := self.tokenizeFile(ctx, lexer, locked, file, loaded)
			results <- fileResult{tf, err}
		}(file)
	}

	out := &idl.TokenizeResponse{Names: table}
	for x := 0; x < len(files); x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				return nil, result.err
			}
			if result.file != nil {
				out.Files = append(out.Files, result.file)
			}
		}
	}
	sort.Slice(out.Files, func(i int, j int) bool {
		return out.Files[i].URI < out.Files[j].URI
	})

	caught := self.Reporter.Reported()
	if len(caught) > 0 {
		exc.Sort(caught)
		return out, MultiException(caught)
	}
	return out, nil
}

func (self *compiler) tokenizeFile(ctx context.Context, lexer idl.Lexer, locked *names.Locked, file idl.File, loaded *sync.Map) (*idl.TokenizedFile, error) {
	self.Semaphore.Lock()
	defer self.Semaphore.Unlock()
	path := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(path, true); ok {
		return nil, nil
	}
	lf, err := lexer.Lex(ctx, file)
	if err != nil {
		return nil, self.report(path, err)
	}
	buf, err := lf.Source(ctx)
	if err != nil {
		return nil, self.report(path, err)
	}
	tokens, err := lf.Tokens(ctx)
	if err != nil {
		return nil, self.report(path, err)
	}
	look := iter.NewLookahead(tokens, packageLookahead)
	result := &idl.TokenizedFile{
		URI:    path,
		Source: buf,
	}
	declared := false
	for v := look.Next(ctx); v.IsPresent(); v = look.Next(ctx) {
		t := v.Value()
		result.Tokens = append(result.Tokens, t)
		switch t.Type {
		case idl.TokenTypeKeywordPackage:
			if !declared {
				result.Package = qualifiedName(ctx, look, locked, &result.Tokens)
				declared = true
			}
		case idl.TokenTypeKeywordImport, idl.TokenTypeKeywordClass, idl.TokenTypeKeywordInterface, idl.TokenTypeKeywordEnum:
			declared = true
		}
	}
	if err := look.Close(ctx); err != nil {
		return nil, self.report(path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cs, ok := tokens.(java.CommentSource); ok {
		result.Comments = cs.Comments()
	}
	self.Logger.Debug("tokenized",
		slog.String("uri", path),
		slog.Int("tokens", len(result.Tokens)),
		slog.String("package", result.Package),
	)
	return result, nil
}

func (self *compiler) report(path string, err error) error {
	var e exc.Exception
	if !errors.As(err, &e) {
		e = exc.WrapUnknown(exc.Location{URI: path}, err)
	}
	return self.Reporter.Report(e)
}

const packageLookahead = 2

// qualifiedName consumes an Identifier ('.' Identifier)* sequence following
// the current token and returns it joined with dots.
func qualifiedName(ctx context.Context, look idl.Lookahead[*idl.Token], locked *names.Locked, consumed *[]*idl.Token) string {
	var b strings.Builder
	for {
		id := look.Lookahead(ctx, 1)
		if !id.IsPresent() || id.Value().Type != idl.TokenTypeIdentifier {
			return b.String()
		}
		*consumed = append(*consumed, look.Next(ctx).Value())
		b.WriteString(locked.String(id.Value().Name))
		dot := look.Lookahead(ctx, 1).ValueOr(nil)
		next := look.Lookahead(ctx, 2).ValueOr(nil)
		if dot == nil || next == nil || dot.Type != idl.TokenTypeDot || next.Type != idl.TokenTypeIdentifier {
			return b.String()
		}
		*consumed = append(*consumed, look.Next(ctx).Value())
		b.WriteByte('.')
	}
}

type fileResult struct {
	file *idl.TokenizedFile
	err  error
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}

func (self MultiException) Unwrap() []error {
	out := make([]error, 0, len(self))
	for _, e := range self {
		out = append(out, e)
	}
	return out
}
