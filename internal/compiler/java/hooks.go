// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"context"
	"log/slog"

	"gopkg.microglot.org/javac.go/internal/idl"
)

// Hooks observe the input a Scanner consumes without producing a token. They
// are called synchronously from NextToken.
type Hooks interface {
	Whitespace(s *Scanner, span idl.Span)
	LineTerminator(s *Scanner, span idl.Span)
	Comment(s *Scanner, c idl.Comment)
}

// LogHooks writes a debug record for every whitespace run, line terminator
// and comment to the scanner's logger.
type LogHooks struct{}

func (LogHooks) Whitespace(s *Scanner, span idl.Span) {
	s.debug("whitespace", span)
}

func (LogHooks) LineTerminator(s *Scanner, span idl.Span) {
	s.debug("line terminator", span)
}

func (LogHooks) Comment(s *Scanner, c idl.Comment) {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s.logger.Debug("comment",
		slog.String("uri", s.uri),
		slog.Int("pos", c.Span.Start),
		slog.Int("end", c.Span.End),
		slog.String("style", c.Style.String()),
		slog.Bool("deprecated", c.Deprecated),
		slog.String("raw", s.Raw(c.Span.Start, c.Span.End)),
	)
}

// CommentCollector records every comment and forwards all events to Next.
type CommentCollector struct {
	Next     Hooks
	Comments []idl.Comment
}

func (self *CommentCollector) Whitespace(s *Scanner, span idl.Span) {
	if self.Next != nil {
		self.Next.Whitespace(s, span)
	}
}

func (self *CommentCollector) LineTerminator(s *Scanner, span idl.Span) {
	if self.Next != nil {
		self.Next.LineTerminator(s, span)
	}
}

func (self *CommentCollector) Comment(s *Scanner, c idl.Comment) {
	self.Comments = append(self.Comments, c)
	if self.Next != nil {
		self.Next.Comment(s, c)
	}
}
