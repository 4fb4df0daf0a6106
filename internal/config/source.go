// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// Source is a language version selected with --source.
type Source uint8

const (
	SourceNone Source = iota
	Source1_2
	Source1_3
	Source1_4
	Source1_5
	Source1_6
	Source1_7
)

// DefaultSource is used when no version is requested.
const DefaultSource = Source1_7

var sourceNames = map[string]Source{
	"1.2": Source1_2,
	"1.3": Source1_3,
	"1.4": Source1_4,
	"1.5": Source1_5,
	"5":   Source1_5,
	"1.6": Source1_6,
	"6":   Source1_6,
	"1.7": Source1_7,
	"7":   Source1_7,
}

// Lookup resolves a version name. Both the "1.x" and short "x" spellings are
// accepted from 5 onwards.
func Lookup(name string) (Source, bool) {
	s, ok := sourceNames[name]
	return s, ok
}

func (s Source) String() string {
	switch s {
	case Source1_2:
		return "1.2"
	case Source1_3:
		return "1.3"
	case Source1_4:
		return "1.4"
	case Source1_5:
		return "1.5"
	case Source1_6:
		return "1.6"
	case Source1_7:
		return "1.7"
	default:
		return fmt.Sprintf("unknown-%d", uint8(s))
	}
}

func (s Source) AllowHexFloats() bool {
	return s >= Source1_5
}

func (s Source) AllowBinaryLiterals() bool {
	return s >= Source1_7
}

func (s Source) AllowUnderscoresInLiterals() bool {
	return s >= Source1_7
}

// Features returns the literal features enabled by the version.
func (s Source) Features() Features {
	return Features{
		UnderscoresInLiterals: s.AllowUnderscoresInLiterals(),
		BinaryLiterals:        s.AllowBinaryLiterals(),
		HexFloats:             s.AllowHexFloats(),
	}
}

// Features are the version gated literal forms. A scanner starts from these
// values and turns a feature on after reporting its first use.
type Features struct {
	UnderscoresInLiterals bool `toml:"underscores_in_literals" yaml:"underscores_in_literals"`
	BinaryLiterals        bool `toml:"binary_literals" yaml:"binary_literals"`
	HexFloats             bool `toml:"hex_floats" yaml:"hex_floats"`
}
