// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/javac.go/internal/exc"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected Source
		ok       bool
	}{
		{name: "1.2", expected: Source1_2, ok: true},
		{name: "1.4", expected: Source1_4, ok: true},
		{name: "5", expected: Source1_5, ok: true},
		{name: "1.6", expected: Source1_6, ok: true},
		{name: "7", expected: Source1_7, ok: true},
		{name: "4", ok: false},
		{name: "1.8", ok: false},
		{name: "", ok: false},
	}
	for _, testCase := range testCases {
		s, ok := Lookup(testCase.name)
		require.Equal(t, testCase.ok, ok, testCase.name)
		require.Equal(t, testCase.expected, s, testCase.name)
		if ok {
			back, _ := Lookup(s.String())
			require.Equal(t, s, back)
		}
	}
}

func TestFeatures(t *testing.T) {
	t.Parallel()

	require.Equal(t, Features{}, Source1_4.Features())
	require.Equal(t, Features{HexFloats: true}, Source1_5.Features())
	require.Equal(t, Features{HexFloats: true}, Source1_6.Features())
	require.Equal(t, Features{HexFloats: true, BinaryLiterals: true, UnderscoresInLiterals: true}, Source1_7.Features())
	require.Equal(t, DefaultSource.Features(), Default().Features)
}

func TestParse(t *testing.T) {
	t.Parallel()

	off := false
	on := true
	testCases := []struct {
		name     string
		content  string
		format   Format
		expected *File
		err      bool
	}{
		{
			name:     "toml",
			content:  "source = \"1.6\"\nencoding = \"ISO-8859-1\"\n\n[features]\nbinary_literals = true\n",
			format:   FormatTOML,
			expected: &File{Source: "1.6", Encoding: "ISO-8859-1", Features: FeatureOverrides{BinaryLiterals: &on}},
		},
		{
			name:     "yaml",
			content:  "source: \"7\"\nfeatures:\n  hex_floats: false\n",
			format:   FormatYAML,
			expected: &File{Source: "7", Features: FeatureOverrides{HexFloats: &off}},
		},
		{name: "empty toml", content: "", format: FormatTOML, expected: &File{}},
		{name: "empty yaml", content: "", format: FormatYAML, expected: &File{}},
		{name: "auto is toml", content: "source = \"5\"", format: FormatAuto, expected: &File{Source: "5"}},
		{name: "unknown toml key", content: "[features]\nlambdas = true\n", format: FormatTOML, err: true},
		{name: "unknown yaml key", content: "target: 7\n", format: FormatYAML, err: true},
		{name: "bad toml", content: "source = ", format: FormatTOML, err: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(testCase.content), testCase.format)
			if testCase.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.expected, f)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	on := true
	off := false

	out, err := (&File{}).Apply(Default())
	require.NoError(t, err)
	require.Equal(t, Default(), out)

	out, err = (&File{Source: "1.4", Features: FeatureOverrides{BinaryLiterals: &on}}).Apply(Default())
	require.NoError(t, err)
	require.Equal(t, Source1_4, out.Source)
	require.Equal(t, Features{BinaryLiterals: true}, out.Features)

	out, err = (&File{Features: FeatureOverrides{UnderscoresInLiterals: &off}}).Apply(Default())
	require.NoError(t, err)
	require.Equal(t, Source1_7, out.Source)
	require.Equal(t, Features{HexFloats: true, BinaryLiterals: true}, out.Features)

	out, err = (&File{Encoding: "UTF-16BE"}).Apply(Default())
	require.NoError(t, err)
	require.Equal(t, "UTF-16BE", out.Encoding)

	for _, f := range []*File{{Source: "1.9"}, {Encoding: "klingon"}} {
		_, err = f.Apply(Default())
		var e exc.Exception
		require.True(t, errors.As(err, &e))
		require.Equal(t, exc.CodeInvalidSettings, e.Code())
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := filepath.Join(dir, "scan.yml")
	require.NoError(t, os.WriteFile(yml, []byte("source: \"1.5\"\n"), 0o600))
	tml := filepath.Join(dir, "scan.toml")
	require.NoError(t, os.WriteFile(tml, []byte("source: \"1.5\"\n"), 0o600))

	f, err := Load(yml)
	require.NoError(t, err)
	require.Equal(t, "1.5", f.Source)

	_, err = Load(tml)
	var e exc.Exception
	require.True(t, errors.As(err, &e))
	require.Equal(t, exc.CodeInvalidSettings, e.Code())
	require.Equal(t, tml, e.Location().URI)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.True(t, errors.As(err, &e))
	require.Equal(t, exc.CodeFileNotFound, e.Code())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "toml", FormatTOML.String())
	require.Equal(t, "yaml", FormatYAML.String())
	require.Equal(t, "auto", FormatAuto.String())
	require.Equal(t, FormatYAML, formatOf("/etc/Scan.YAML"))
	require.Equal(t, FormatTOML, formatOf("scan.conf"))
}
