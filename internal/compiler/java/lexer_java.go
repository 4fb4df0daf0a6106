// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"context"
	"errors"
	"fmt"

	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/fs"
	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/optional"
	"gopkg.microglot.org/javac.go/internal/source"
)

// CommentSource is implemented by token iterators that collect comments. The
// result is complete once the iterator has produced EOF.
type CommentSource interface {
	Comments() []idl.Comment
}

// LexerJava adapts Scanner to the idl.Lexer interface.
type LexerJava struct {
	cfg      *Config
	comments bool
}

type LexerJavaOption func(*LexerJava)

// LexerJavaOptionComments makes every token iterator implement CommentSource.
func LexerJavaOptionComments(v bool) LexerJavaOption {
	return func(l *LexerJava) {
		l.comments = v
	}
}

func NewLexerJava(cfg *Config, opts ...LexerJavaOption) *LexerJava {
	l := &LexerJava{cfg: cfg.withDefaults()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the effective configuration with defaults applied.
func (self *LexerJava) Config() *Config {
	return self.cfg
}

func (self *LexerJava) Lex(ctx context.Context, f idl.File) (idl.LexerFile, error) {
	if k := f.Kind(ctx); k != idl.FileKindJava {
		return nil, exc.New(exc.Location{URI: f.Path(ctx)}, exc.CodeUnsupportedFileFormat, fmt.Sprintf("cannot lex %s content", k))
	}
	return &lexerFileJava{
		File:     f,
		cfg:      self.cfg,
		comments: self.comments,
	}, nil
}

type lexerFileJava struct {
	idl.File
	cfg      *Config
	comments bool
	buf      *source.Buffer
}

func (self *lexerFileJava) Source(ctx context.Context) (*source.Buffer, error) {
	if self.buf != nil {
		return self.buf, nil
	}
	uri := self.File.Path(ctx)
	body, err := self.File.Body(ctx)
	if err != nil {
		return nil, err
	}
	r := fs.NewReader(ctx, body)
	defer r.Close()
	buf, err := source.Decode(r, self.cfg.Encoding)
	if err != nil {
		if errors.Is(err, source.ErrUnsupportedEncoding) {
			return nil, exc.Wrap(exc.Location{URI: uri}, exc.CodeUnsupportedEncoding, err)
		}
		return nil, exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	self.buf = buf
	return buf, nil
}

func (self *lexerFileJava) Tokens(ctx context.Context) (idl.Iterator[*idl.Token], error) {
	buf, err := self.Source(ctx)
	if err != nil {
		return nil, err
	}
	cfg := self.cfg
	var collector *CommentCollector
	if self.comments {
		collector = &CommentCollector{Next: cfg.Hooks}
		c := *cfg
		c.Hooks = collector
		cfg = &c
	}
	return &lexerFileJavaTokens{
		scanner:   NewScanner(cfg, self.File.Path(ctx), buf),
		collector: collector,
	}, nil
}

type lexerFileJavaTokens struct {
	scanner   *Scanner
	collector *CommentCollector
	done      bool
}

func (self *lexerFileJavaTokens) Next(ctx context.Context) optional.Optional[*idl.Token] {
	if self.done || ctx.Err() != nil {
		return optional.None[*idl.Token]()
	}
	t := self.scanner.NextToken()
	if t.Type == idl.TokenTypeEOF {
		self.done = true
	}
	return optional.Some(t)
}

func (self *lexerFileJavaTokens) Close(ctx context.Context) error {
	return nil
}

func (self *lexerFileJavaTokens) Comments() []idl.Comment {
	if self.collector == nil {
		return nil
	}
	return self.collector.Comments
}
