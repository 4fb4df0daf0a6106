// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"context"
	"fmt"

	"gopkg.microglot.org/javac.go/internal/names"
	"gopkg.microglot.org/javac.go/internal/optional"
	"gopkg.microglot.org/javac.go/internal/source"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindJava
)

func (k FileKind) String() string {
	switch k {
	case FileKindJava:
		return "java"
	case FileKindNone:
		return "none"
	default:
		return fmt.Sprintf("unkown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Tokenizer interface {
	Tokenize(ctx context.Context, req *TokenizeRequest) (*TokenizeResponse, error)
}

type TokenizeRequest struct {
	Files []string
	// Comments requests that comment spans be collected alongside tokens.
	Comments bool
}

type TokenizeResponse struct {
	Files []*TokenizedFile
	// Names is the table every token name was interned into. The caller owns
	// it and may return it to a pool once the names are no longer needed.
	Names *names.Table
}

// TokenizedFile is the complete token sequence of one compilation unit,
// ending with exactly one EOF token.
type TokenizedFile struct {
	URI      string
	Package  string
	Source   *source.Buffer
	Tokens   []*Token
	Comments []Comment
}

type LexerFile interface {
	File
	Source(ctx context.Context) (*source.Buffer, error)
	Tokens(ctx context.Context) (Iterator[*Token], error)
}

type Lexer interface {
	Lex(ctx context.Context, f File) (LexerFile, error)
}

type CommentStyle uint8

const (
	CommentStyleLine CommentStyle = iota
	CommentStyleBlock
	CommentStyleDoc
)

func (s CommentStyle) String() string {
	switch s {
	case CommentStyleLine:
		return "line"
	case CommentStyleBlock:
		return "block"
	case CommentStyleDoc:
		return "doc"
	default:
		return fmt.Sprintf("unknown-%d", s)
	}
}

// Comment describes one scanned comment. Deprecated is only ever set for
// documentation comments carrying the @deprecated marker.
type Comment struct {
	Style      CommentStyle
	Span       Span
	Deprecated bool
}
