// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/source"
)

// Format of a settings file.
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Settings are the effective scanner settings for a run.
type Settings struct {
	Source   Source
	Features Features
	Encoding string
}

// Default returns the settings used without a settings file or flags.
func Default() Settings {
	return Settings{
		Source:   DefaultSource,
		Features: DefaultSource.Features(),
		Encoding: source.DefaultEncoding,
	}
}

// File is the on-disk form of the settings. Every field is optional.
//
//	source = "1.6"
//	encoding = "ISO-8859-1"
//
//	[features]
//	binary_literals = true
type File struct {
	Source   string           `toml:"source" yaml:"source"`
	Encoding string           `toml:"encoding" yaml:"encoding"`
	Features FeatureOverrides `toml:"features" yaml:"features"`
}

// FeatureOverrides replace the version derived value of a feature when set.
type FeatureOverrides struct {
	UnderscoresInLiterals *bool `toml:"underscores_in_literals" yaml:"underscores_in_literals"`
	BinaryLiterals        *bool `toml:"binary_literals" yaml:"binary_literals"`
	HexFloats             *bool `toml:"hex_floats" yaml:"hex_floats"`
}

// Load reads a settings file. The format is chosen from the extension: .yaml
// and .yml are YAML, everything else is TOML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exc.Wrap(exc.Location{URI: path}, exc.CodeFileNotFound, err)
	}
	f, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, exc.Wrap(exc.Location{URI: path}, exc.CodeInvalidSettings, err)
	}
	return f, nil
}

// Parse decodes settings content. FormatAuto is treated as TOML.
func Parse(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && err.Error() != "EOF" {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown setting %q", undecoded[0].String())
		}
	}
	return f, nil
}

// Apply layers the file over base. Choosing a source level resets the
// features to that level before the overrides apply.
func (f *File) Apply(base Settings) (Settings, error) {
	out := base
	if f.Source != "" {
		s, ok := Lookup(f.Source)
		if !ok {
			return base, exc.New(exc.Location{}, exc.CodeInvalidSettings, fmt.Sprintf("invalid source release: %s", f.Source))
		}
		out.Source = s
		out.Features = s.Features()
	}
	if f.Encoding != "" {
		if _, err := source.LookupEncoding(f.Encoding); err != nil {
			return base, exc.Wrap(exc.Location{}, exc.CodeInvalidSettings, err)
		}
		out.Encoding = f.Encoding
	}
	out.Features = f.Features.apply(out.Features)
	return out, nil
}

func (o FeatureOverrides) apply(f Features) Features {
	if o.UnderscoresInLiterals != nil {
		f.UnderscoresInLiterals = *o.UnderscoresInLiterals
	}
	if o.BinaryLiterals != nil {
		f.BinaryLiterals = *o.BinaryLiterals
	}
	if o.HexFloats != nil {
		f.HexFloats = *o.HexFloats
	}
	return f
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
