// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"log/slog"

	"gopkg.microglot.org/javac.go/internal/config"
	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/names"
	"gopkg.microglot.org/javac.go/internal/source"
)

// Config carries everything a Scanner needs. The same Config may be shared by
// scanners running on different goroutines as long as Names is safe for
// concurrent use.
type Config struct {
	// Source is the language version named in diagnostics.
	Source config.Source
	// Features is the starting state of the version gated literal forms. Each
	// scanner works on its own copy.
	Features config.Features
	// Encoding of file bodies read through LexerJava.
	Encoding string
	Names    names.Interner
	Keywords *Keywords
	Reporter exc.Reporter
	Logger   *slog.Logger
	Hooks    Hooks
}

// NewConfig builds a Config from resolved settings with a private interning
// table.
func NewConfig(settings config.Settings) *Config {
	return &Config{
		Source:   settings.Source,
		Features: settings.Features,
		Encoding: settings.Encoding,
	}
}

// withDefaults returns a copy with every unset collaborator filled in.
func (self *Config) withDefaults() *Config {
	c := &Config{}
	if self != nil {
		*c = *self
	}
	if c.Source == config.SourceNone {
		c.Source = config.DefaultSource
		c.Features = c.Source.Features()
	}
	if c.Encoding == "" {
		c.Encoding = source.DefaultEncoding
	}
	if c.Names == nil {
		c.Names = names.New()
	}
	if c.Keywords == nil {
		c.Keywords = NewKeywords(c.Names)
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Hooks == nil {
		c.Hooks = LogHooks{}
	}
	return c
}
