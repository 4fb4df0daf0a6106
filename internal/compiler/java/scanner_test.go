// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/javac.go/internal/config"
	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/names"
	"gopkg.microglot.org/javac.go/internal/source"
)

type scanned struct {
	Type  idl.TokenType
	Text  string
	Radix int
	Start int
	End   int
}

func newTestConfig(s config.Source) *Config {
	return &Config{
		Source:   s,
		Features: s.Features(),
		Reporter: exc.NewReporter(nil),
	}
}

func scanBuffer(t testing.TB, cfg *Config, buf *source.Buffer) ([]*idl.Token, *Scanner) {
	s := NewScanner(cfg, "Test.java", buf)
	var out []*idl.Token
	// Every call consumes input so the scan ends well within this bound.
	for x := 0; x <= buf.Len()+1; x = x + 1 {
		tok := s.NextToken()
		out = append(out, tok)
		if tok.Type == idl.TokenTypeEOF {
			return out, s
		}
	}
	t.Fatalf("no EOF after %d tokens", len(out))
	return nil, nil
}

func scanString(t testing.TB, cfg *Config, input string) ([]*idl.Token, *Scanner) {
	return scanBuffer(t, cfg, source.NewBufferString(input))
}

func describe(tokens []*idl.Token) []scanned {
	out := make([]scanned, 0, len(tokens))
	for _, tok := range tokens {
		text := tok.Value
		if !tok.Name.IsZero() {
			text = tok.Name.String()
		}
		out = append(out, scanned{
			Type:  tok.Type,
			Text:  text,
			Radix: tok.Radix,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	return out
}

func types(tokens []*idl.Token) []idl.TokenType {
	out := make([]idl.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func keys(r exc.Reporter) []string {
	out := []string{}
	for _, e := range r.Reported() {
		out = append(out, e.Code())
	}
	return out
}

func TestScannerStatement(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	tokens, _ := scanString(t, cfg, "int a = 0b1010_1;")
	require.Equal(t, []scanned{
		{Type: idl.TokenTypeKeywordInt, Text: "int", Start: 0, End: 3},
		{Type: idl.TokenTypeIdentifier, Text: "a", Start: 4, End: 5},
		{Type: idl.TokenTypeEqual, Text: "=", Start: 6, End: 7},
		{Type: idl.TokenTypeIntLiteral, Text: "10101", Radix: 2, Start: 8, End: 16},
		{Type: idl.TokenTypeSemicolon, Text: ";", Start: 16, End: 17},
		{Type: idl.TokenTypeEOF, Start: 17, End: 17},
	}, describe(tokens))
	require.Empty(t, cfg.Reporter.Reported())
}

func TestScannerEmpty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		end   int
	}{
		{name: "empty", input: "", end: 0},
		{name: "whitespace", input: " \t\f", end: 3},
		{name: "lines", input: "\n\r\n\r", end: 4},
		{name: "comments", input: "// a\n/* b */", end: 12},
		{name: "trailing substitute", input: "  \x1a", end: 3},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, s := scanString(t, cfg, testCase.input)
			require.Equal(t, []scanned{
				{Type: idl.TokenTypeEOF, Start: testCase.end, End: testCase.end},
			}, describe(tokens))
			require.Empty(t, cfg.Reporter.Reported())

			again := s.NextToken()
			require.Equal(t, idl.TokenTypeEOF, again.Type)
			require.Equal(t, testCase.end, again.Span.Start)
		})
	}
}

func TestScannerHexFloat(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(config.Source1_5)
		tokens, _ := scanString(t, cfg, "0x1.8p3f")
		require.Equal(t, []scanned{
			{Type: idl.TokenTypeFloatLiteral, Text: "1.8p3f", Radix: 16, Start: 0, End: 8},
			{Type: idl.TokenTypeEOF, Start: 8, End: 8},
		}, describe(tokens))
		require.Empty(t, cfg.Reporter.Reported())
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(config.Source1_4)
		tokens, s := scanString(t, cfg, "0x1.8p3f 0x1p1")
		require.Equal(t, []scanned{
			{Type: idl.TokenTypeFloatLiteral, Text: "1.8p3f", Radix: 16, Start: 0, End: 8},
			{Type: idl.TokenTypeDoubleLiteral, Text: "1p1", Radix: 16, Start: 9, End: 14},
			{Type: idl.TokenTypeEOF, Start: 14, End: 14},
		}, describe(tokens))
		reported := cfg.Reporter.Reported()
		require.Len(t, reported, 1)
		require.Equal(t, exc.KeyUnsupportedFpLit, reported[0].Code())
		require.Equal(t, 0, reported[0].Location().Offset)
		require.Contains(t, reported[0].Message(), "-source 1.4")
		require.True(t, s.Features().HexFloats)
		require.False(t, cfg.Features.HexFloats)
	})
}

func TestScannerMaximalMunch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected []idl.TokenType
	}{
		{input: ">>>=", expected: []idl.TokenType{idl.TokenTypeShiftRightUnsignedEqual}},
		{input: ">>>>", expected: []idl.TokenType{idl.TokenTypeShiftRightUnsigned, idl.TokenTypeAngleClose}},
		{input: ">>=", expected: []idl.TokenType{idl.TokenTypeShiftRightEqual}},
		{input: "<<=<", expected: []idl.TokenType{idl.TokenTypeShiftLeftEqual, idl.TokenTypeAngleOpen}},
		{input: "+++", expected: []idl.TokenType{idl.TokenTypePlusPlus, idl.TokenTypePlus}},
		{input: "-->", expected: []idl.TokenType{idl.TokenTypeMinusMinus, idl.TokenTypeAngleClose}},
		{input: "!==", expected: []idl.TokenType{idl.TokenTypeNotComparison, idl.TokenTypeEqual}},
		{input: "&&&", expected: []idl.TokenType{idl.TokenTypeBinAnd, idl.TokenTypeAmpersand}},
		{input: "||=", expected: []idl.TokenType{idl.TokenTypeBinOr, idl.TokenTypeEqual}},
		{input: "?:", expected: []idl.TokenType{idl.TokenTypeQuestion, idl.TokenTypeColon}},
		{input: "@=", expected: []idl.TokenType{idl.TokenTypeAt, idl.TokenTypeEqual}},
		{input: "~-", expected: []idl.TokenType{idl.TokenTypeTilde, idl.TokenTypeMinus}},
		{input: "%=^=|=", expected: []idl.TokenType{idl.TokenTypePercentEqual, idl.TokenTypeCaretEqual, idl.TokenTypePipeEqual}},
		{input: "*=*", expected: []idl.TokenType{idl.TokenTypeMultiplyEqual, idl.TokenTypeStar}},
		{input: "/=/", expected: []idl.TokenType{idl.TokenTypeDivideEqual, idl.TokenTypeSlash}},
		{input: "==", expected: []idl.TokenType{idl.TokenTypeComparison}},
		{input: "<=>=", expected: []idl.TokenType{idl.TokenTypeLesserEqual, idl.TokenTypeGreaterEqual}},
		{input: "a+=b", expected: []idl.TokenType{idl.TokenTypeIdentifier, idl.TokenTypePlusEqual, idl.TokenTypeIdentifier}},
		{input: "a.b", expected: []idl.TokenType{idl.TokenTypeIdentifier, idl.TokenTypeDot, idl.TokenTypeIdentifier}},
		{input: "f(...)", expected: []idl.TokenType{idl.TokenTypeIdentifier, idl.TokenTypeParenOpen, idl.TokenTypeEllipsis, idl.TokenTypeParenClose}},
		{input: "{[]},;", expected: []idl.TokenType{
			idl.TokenTypeCurlyOpen, idl.TokenTypeSquareOpen, idl.TokenTypeSquareClose,
			idl.TokenTypeCurlyClose, idl.TokenTypeComma, idl.TokenTypeSemicolon,
		}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanString(t, cfg, testCase.input)
			expected := append(append([]idl.TokenType{}, testCase.expected...), idl.TokenTypeEOF)
			require.Equal(t, expected, types(tokens))
			require.Empty(t, cfg.Reporter.Reported())
			for _, tok := range tokens[:len(tokens)-1] {
				spelling, ok := tok.Type.Spelling()
				if !ok {
					continue
				}
				require.Equal(t, spelling, tok.Name.String())
				require.Equal(t, len(spelling), tok.Span.Len())
			}
		})
	}
}

func TestScannerMalformedEllipsis(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	tokens, _ := scanString(t, cfg, "..x")
	require.Equal(t, []scanned{
		{Type: idl.TokenTypeError, Start: 0, End: 2},
		{Type: idl.TokenTypeIdentifier, Text: "x", Start: 2, End: 3},
		{Type: idl.TokenTypeEOF, Start: 3, End: 3},
	}, describe(tokens))
	require.Equal(t, []string{exc.KeyMalformedFpLit}, keys(cfg.Reporter))
}

func TestScannerKeywords(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	for _, tt := range idl.TokenTypes() {
		if !tt.IsKeyword() {
			continue
		}
		spelling, _ := tt.Spelling()
		tokens, _ := scanString(t, cfg, spelling)
		require.Equal(t, []idl.TokenType{tt, idl.TokenTypeEOF}, types(tokens), spelling)
		require.Equal(t, spelling, tokens[0].Name.String())
	}
	for _, ident := range []string{"Int", "classes", "_", "$x", "goto_", "nullptr"} {
		tokens, _ := scanString(t, cfg, ident)
		require.Equal(t, []idl.TokenType{idl.TokenTypeIdentifier, idl.TokenTypeEOF}, types(tokens), ident)
	}
	require.Empty(t, cfg.Reporter.Reported())
}

func TestScannerUnicodeEscape(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []scanned
	}{
		{
			name:  "identifier",
			input: `\u0041`,
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "A", Start: 0, End: 6},
				{Type: idl.TokenTypeEOF, Start: 6, End: 6},
			},
		},
		{
			name:  "repeated u",
			input: `\uuu0041 `,
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "A", Start: 0, End: 8},
				{Type: idl.TokenTypeEOF, Start: 9, End: 9},
			},
		},
		{
			name:  "keyword",
			input: `i\u006et`,
			expected: []scanned{
				{Type: idl.TokenTypeKeywordInt, Text: "int", Start: 0, End: 8},
				{Type: idl.TokenTypeEOF, Start: 8, End: 8},
			},
		},
		{
			name:  "operator",
			input: `\u003d\u003d`,
			expected: []scanned{
				{Type: idl.TokenTypeComparison, Text: "==", Start: 0, End: 12},
				{Type: idl.TokenTypeEOF, Start: 12, End: 12},
			},
		},
		{
			name:  "string",
			input: `"\u0041"`,
			expected: []scanned{
				{Type: idl.TokenTypeStringLiteral, Text: "A", Start: 0, End: 8},
				{Type: idl.TokenTypeEOF, Start: 8, End: 8},
			},
		},
		{
			name:  "escaped backslash in string",
			input: `"\\u0041"`,
			expected: []scanned{
				{Type: idl.TokenTypeStringLiteral, Text: `\u0041`, Start: 0, End: 9},
				{Type: idl.TokenTypeEOF, Start: 9, End: 9},
			},
		},
		{
			name:  "escaped backslash via escape",
			input: `"\u005cn"`,
			expected: []scanned{
				{Type: idl.TokenTypeStringLiteral, Text: "\n", Start: 0, End: 9},
				{Type: idl.TokenTypeEOF, Start: 9, End: 9},
			},
		},
		{
			name:  "line end in comment",
			input: `// a \u000a x`,
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "x", Start: 12, End: 13},
				{Type: idl.TokenTypeEOF, Start: 13, End: 13},
			},
		},
		{
			name:  "escaped backslash in comment",
			input: `// a \\u000a x`,
			expected: []scanned{
				{Type: idl.TokenTypeEOF, Start: 14, End: 14},
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanString(t, cfg, testCase.input)
			require.Equal(t, testCase.expected, describe(tokens))
			require.Empty(t, cfg.Reporter.Reported())
		})
	}
}

func TestScannerUnicodeEscapeIdentity(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	cfg.Names = names.New()
	escaped, _ := scanString(t, cfg, `\u0041bc`)
	plain, _ := scanString(t, cfg, `Abc`)
	require.Equal(t, plain[0].Type, escaped[0].Type)
	require.Equal(t, plain[0].Name, escaped[0].Name)
}

func TestScannerIllegalUnicodeEscape(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	tokens, s := scanString(t, cfg, `\u00G1`)
	require.Equal(t, []scanned{
		{Type: idl.TokenTypeIdentifier, Text: "G1", Start: 4, End: 6},
		{Type: idl.TokenTypeEOF, Start: 6, End: 6},
	}, describe(tokens))
	reported := cfg.Reporter.Reported()
	require.Len(t, reported, 1)
	require.Equal(t, exc.KeyIllegalUnicodeEsc, reported[0].Code())
	require.Equal(t, 4, reported[0].Location().Offset)
	require.Equal(t, 4, s.ErrPos())
}

func TestScannerNumbers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		source   config.Source
		expected scanned
		reported []string
	}{
		{input: "0", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "0", Radix: 10}},
		{input: "0L", expected: scanned{Type: idl.TokenTypeLongLiteral, Text: "0", Radix: 10}},
		{input: "07", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "07", Radix: 8}},
		{input: "091", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "091", Radix: 8}},
		{input: "089.0", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "089.0", Radix: 10}},
		{input: "0e1", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "0e1", Radix: 10}},
		{input: "0x1F", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "1F", Radix: 16}},
		{input: "0XffL", expected: scanned{Type: idl.TokenTypeLongLiteral, Text: "ff", Radix: 16}},
		{input: "0b101", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "101", Radix: 2}},
		{input: "0B1l", expected: scanned{Type: idl.TokenTypeLongLiteral, Text: "1", Radix: 2}},
		{input: "1_000", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "1000", Radix: 10}},
		{input: "1__2", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "12", Radix: 10}},
		{input: "0_7", expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "07", Radix: 8}},
		{input: "123l", expected: scanned{Type: idl.TokenTypeLongLiteral, Text: "123", Radix: 10}},
		{input: "1.5", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1.5", Radix: 10}},
		{input: "1.5f", expected: scanned{Type: idl.TokenTypeFloatLiteral, Text: "1.5f", Radix: 10}},
		{input: "1.", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1.", Radix: 10}},
		{input: "2d", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "2d", Radix: 10}},
		{input: "3F", expected: scanned{Type: idl.TokenTypeFloatLiteral, Text: "3F", Radix: 10}},
		{input: "1e10", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1e10", Radix: 10}},
		{input: "1E-5D", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1E-5D", Radix: 10}},
		{input: ".5", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: ".5", Radix: 10}},
		{input: "0x1p-2", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1p-2", Radix: 16}},
		{input: "0x.8p1", expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: ".8p1", Radix: 16}},
		{
			input:    "1e",
			expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1", Radix: 10},
			reported: []string{exc.KeyMalformedFpLit},
		},
		{
			input:    "0x1.8",
			expected: scanned{Type: idl.TokenTypeDoubleLiteral, Text: "1.8", Radix: 16},
			reported: []string{exc.KeyMalformedFpLit},
		},
		{
			input:    "0x",
			expected: scanned{Type: idl.TokenTypeError},
			reported: []string{exc.KeyInvalidHexNumber},
		},
		{
			input:    "0b",
			expected: scanned{Type: idl.TokenTypeError},
			reported: []string{exc.KeyInvalidBinaryNumber},
		},
		{
			input:    "1_",
			expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "1", Radix: 10},
			reported: []string{exc.KeyIllegalUnderscore},
		},
		{
			input:    "0x_1",
			expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "1", Radix: 16},
			reported: []string{exc.KeyIllegalUnderscore},
		},
		{
			input:    "1\u0663",
			expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "13", Radix: 10},
			reported: []string{exc.KeyIllegalNonASCIIDigit},
		},
		{
			input:    "0b1",
			source:   config.Source1_6,
			expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "1", Radix: 2},
			reported: []string{exc.KeyUnsupportedBinaryLit},
		},
		{
			input:    "1_0",
			source:   config.Source1_6,
			expected: scanned{Type: idl.TokenTypeIntLiteral, Text: "10", Radix: 10},
			reported: []string{exc.KeyUnsupportedUnderscoreLit},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			s := testCase.source
			if s == config.SourceNone {
				s = config.Source1_7
			}
			cfg := newTestConfig(s)
			tokens, _ := scanString(t, cfg, testCase.input)
			require.Len(t, tokens, 2)
			expected := testCase.expected
			expected.End = len([]rune(testCase.input))
			require.Equal(t, expected, describe(tokens)[0])
			require.Equal(t, idl.TokenTypeEOF, tokens[1].Type)
			reported := testCase.reported
			if reported == nil {
				reported = []string{}
			}
			require.Equal(t, reported, keys(cfg.Reporter))
		})
	}
}

func TestScannerStickyFeatures(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_6)
	_, s := scanString(t, cfg, "0b1 0b10 1_0 2_0")
	require.Equal(t, []string{exc.KeyUnsupportedBinaryLit, exc.KeyUnsupportedUnderscoreLit}, keys(cfg.Reporter))
	require.Equal(t, config.Features{UnderscoresInLiterals: true, BinaryLiterals: true, HexFloats: true}, s.Features())
}

func TestScannerLiterals(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected scanned
		reported []string
	}{
		{name: "char", input: `'a'`, expected: scanned{Type: idl.TokenTypeCharLiteral, Text: "a", End: 3}},
		{name: "char newline escape", input: `'\n'`, expected: scanned{Type: idl.TokenTypeCharLiteral, Text: "\n", End: 4}},
		{name: "char quote", input: `'\''`, expected: scanned{Type: idl.TokenTypeCharLiteral, Text: "'", End: 4}},
		{name: "char backslash", input: `'\\'`, expected: scanned{Type: idl.TokenTypeCharLiteral, Text: `\`, End: 4}},
		{name: "char octal", input: `'\101'`, expected: scanned{Type: idl.TokenTypeCharLiteral, Text: "A", End: 6}},
		{name: "char short octal", input: `'\7'`, expected: scanned{Type: idl.TokenTypeCharLiteral, Text: "\a", End: 4}},
		{name: "string", input: `"a\tb\"c"`, expected: scanned{Type: idl.TokenTypeStringLiteral, Text: "a\tb\"c", End: 9}},
		{name: "empty string", input: `""`, expected: scanned{Type: idl.TokenTypeStringLiteral, End: 2}},
		{name: "string octal", input: `"\0\377"`, expected: scanned{Type: idl.TokenTypeStringLiteral, Text: "\x00\u00ff", End: 8}},
		{
			name:     "empty char",
			input:    `''`,
			expected: scanned{Type: idl.TokenTypeError, End: 2},
			reported: []string{exc.KeyEmptyCharLit},
		},
		{
			name:     "unclosed string",
			input:    `"abc`,
			expected: scanned{Type: idl.TokenTypeError, End: 4},
			reported: []string{exc.KeyUnclosedStrLit},
		},
		{
			name:     "illegal escape",
			input:    `"\q"`,
			expected: scanned{Type: idl.TokenTypeStringLiteral, Text: "q", End: 4},
			reported: []string{exc.KeyIllegalEscChar},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanString(t, cfg, testCase.input)
			require.Len(t, tokens, 2)
			require.Equal(t, testCase.expected, describe(tokens)[0])
			reported := testCase.reported
			if reported == nil {
				reported = []string{}
			}
			require.Equal(t, reported, keys(cfg.Reporter))
		})
	}
}

func TestScannerUnclosed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		first    scanned
		reported string
		offset   int
	}{
		{name: "string at line end", input: "\"ab\ncd", first: scanned{Type: idl.TokenTypeError, End: 3}, reported: exc.KeyUnclosedStrLit},
		{name: "char", input: `'ab'`, first: scanned{Type: idl.TokenTypeError, End: 2}, reported: exc.KeyUnclosedCharLit},
		{name: "char line end", input: "'\n'", first: scanned{Type: idl.TokenTypeCharLiteral, Text: "\n", End: 3}, reported: exc.KeyIllegalLineEndInCharLit},
		{name: "comment", input: "/* abc", first: scanned{Type: idl.TokenTypeError, End: 6}, reported: exc.KeyUnclosedComment},
		{name: "doc comment", input: "/** abc\n * def", first: scanned{Type: idl.TokenTypeError, End: 14}, reported: exc.KeyUnclosedComment},
		{name: "char escape", input: `'\q'`, first: scanned{Type: idl.TokenTypeError, End: 2}, reported: exc.KeyIllegalEscChar, offset: 2},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanString(t, cfg, testCase.input)
			require.Equal(t, testCase.first, describe(tokens)[0])
			reported := cfg.Reporter.Reported()
			require.NotEmpty(t, reported)
			require.Equal(t, testCase.reported, reported[0].Code())
			require.Equal(t, testCase.offset, reported[0].Location().Offset)
		})
	}
}

func TestScannerDeprecated(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input      string
		deprecated bool
	}{
		{input: "/** @deprecated */ class", deprecated: true},
		{input: "/**@deprecated*/ class", deprecated: true},
		{input: "/**\n * Text.\n * @deprecated use B\n */\nclass", deprecated: true},
		{input: "/**\r\n *\t@deprecated\r\n */ class", deprecated: true},
		{input: "/** deprecated */ class", deprecated: false},
		{input: "/** @deprecatedX */ class", deprecated: false},
		{input: "/** see @deprecated */ class", deprecated: false},
		{input: "/* @deprecated */ class", deprecated: false},
		{input: "// @deprecated\nclass", deprecated: false},
		{input: "/** @deprecated */ /** other */ class", deprecated: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanString(t, cfg, testCase.input+" A")
			require.Equal(t, []idl.TokenType{idl.TokenTypeKeywordClass, idl.TokenTypeIdentifier, idl.TokenTypeEOF}, types(tokens))
			require.Equal(t, testCase.deprecated, tokens[0].Deprecated)
			require.False(t, tokens[1].Deprecated)
			require.Empty(t, cfg.Reporter.Reported())
		})
	}
}

func TestScannerComments(t *testing.T) {
	t.Parallel()

	collector := &CommentCollector{}
	cfg := newTestConfig(config.Source1_7)
	cfg.Hooks = collector
	tokens, _ := scanString(t, cfg, "// x\n/* y */ /** @deprecated z */\nint // tail")
	require.Equal(t, []idl.TokenType{idl.TokenTypeKeywordInt, idl.TokenTypeEOF}, types(tokens))
	require.Equal(t, []idl.Comment{
		{Style: idl.CommentStyleLine, Span: idl.Span{Start: 0, End: 4}},
		{Style: idl.CommentStyleBlock, Span: idl.Span{Start: 5, End: 12}},
		{Style: idl.CommentStyleDoc, Span: idl.Span{Start: 13, End: 33}, Deprecated: true},
		{Style: idl.CommentStyleLine, Span: idl.Span{Start: 38, End: 45}},
	}, collector.Comments)
}

func TestScannerSurrogates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []uint16
		expected []scanned
		reported []string
	}{
		{
			name:  "supplementary letter",
			input: []uint16{0xD835, 0xDC00, 'x'},
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "\U0001D400x", Start: 0, End: 3},
				{Type: idl.TokenTypeEOF, Start: 3, End: 3},
			},
		},
		{
			name:  "supplementary letter inside",
			input: []uint16{'a', 0xD835, 0xDC00},
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "a\U0001D400", Start: 0, End: 3},
				{Type: idl.TokenTypeEOF, Start: 3, End: 3},
			},
		},
		{
			name:  "supplementary symbol",
			input: []uint16{'a', 0xD83D, 0xDE00, 'b'},
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "a", Start: 0, End: 1},
				{Type: idl.TokenTypeError, Start: 1, End: 3},
				{Type: idl.TokenTypeIdentifier, Text: "b", Start: 3, End: 4},
				{Type: idl.TokenTypeEOF, Start: 4, End: 4},
			},
			reported: []string{exc.KeyIllegalChar},
		},
		{
			name:  "lone high surrogate",
			input: []uint16{'a', 0xD800, 'b'},
			expected: []scanned{
				{Type: idl.TokenTypeIdentifier, Text: "a", Start: 0, End: 1},
				{Type: idl.TokenTypeError, Start: 1, End: 2},
				{Type: idl.TokenTypeIdentifier, Text: "b", Start: 2, End: 3},
				{Type: idl.TokenTypeEOF, Start: 3, End: 3},
			},
			reported: []string{exc.KeyIllegalChar},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanBuffer(t, cfg, source.NewBuffer(testCase.input))
			require.Equal(t, testCase.expected, describe(tokens))
			reported := testCase.reported
			if reported == nil {
				reported = []string{}
			}
			require.Equal(t, reported, keys(cfg.Reporter))
		})
	}
}

func TestScannerIllegalChar(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	tokens, _ := scanString(t, cfg, "a#\x1a`b")
	require.Equal(t, []idl.TokenType{
		idl.TokenTypeIdentifier,
		idl.TokenTypeError,
		idl.TokenTypeError,
		idl.TokenTypeError,
		idl.TokenTypeIdentifier,
		idl.TokenTypeEOF,
	}, types(tokens))
	reported := cfg.Reporter.Reported()
	require.Len(t, reported, 3)
	require.Equal(t, "illegal character: \\35", reported[0].Message())
	require.Equal(t, int32(1), reported[0].Location().Line)
	require.Equal(t, int32(2), reported[0].Location().Column)
	for _, tok := range tokens[:len(tokens)-1] {
		require.Greater(t, tok.Span.End, tok.Span.Start)
	}
}

func TestScannerProgress(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`\`, `\u`, `\u12`, `'`, `'\`, `"\`, `0x`, `0b_`, `1e+`, `/*`, `/**`, `/** *`,
		"\x00\x01\x02", `\\\\`, `@@@`, `.....`, `'\u000a'`, "\"\\u005c\"",
	}
	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(config.Source1_7)
			tokens, _ := scanString(t, cfg, input)
			last := 0
			for _, tok := range tokens {
				require.GreaterOrEqual(t, tok.Span.Start, last)
				require.GreaterOrEqual(t, tok.Span.End, tok.Span.Start)
				last = tok.Span.End
			}
			require.Equal(t, len(input), tokens[len(tokens)-1].Span.Start)
		})
	}
}

func TestScannerPositions(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(config.Source1_7)
	s := NewScanner(cfg, "Test.java", source.NewBufferString("a  \\u0062\n c"))
	first := s.NextToken()
	require.Equal(t, 0, s.PrevEndPos())
	second := s.NextToken()
	require.Equal(t, 1, s.PrevEndPos())
	require.Equal(t, "b", second.Name.String())
	require.Equal(t, `\u0062`, s.Raw(second.Span.Start, second.Span.End))
	third := s.NextToken()
	require.Equal(t, 9, s.PrevEndPos())
	require.Equal(t, int32(2), s.LineMap().Line(third.Span.Start))
	require.Equal(t, int32(2), s.LineMap().Column(third.Span.Start))
	require.Equal(t, NoPos, s.ErrPos())
	require.Equal(t, "a", first.Name.String())
}

func TestScannerLogging(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := newTestConfig(config.Source1_7)
	cfg.Logger = slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, _ = scanString(t, cfg, "a /* c */\n")
	logged := out.String()
	require.Contains(t, logged, "msg=token")
	require.Contains(t, logged, "msg=whitespace")
	require.Contains(t, logged, "msg=comment")
	require.Contains(t, logged, `msg="line terminator"`)
	require.Contains(t, logged, `raw="/* c */"`)
}

var benchTokens int

func BenchmarkScanner(b *testing.B) {
	var src strings.Builder
	for x := 0; x < 200; x = x + 1 {
		src.WriteString("/** Doc. */\npublic static final long value")
		src.WriteString("_x = 0x7fff_ffffL + 1.5e3f * 'c' >>> 2; // done\n")
		src.WriteString("String s = \"text\\n\";\n")
	}
	buf := source.NewBufferString(src.String())
	cfg := &Config{Source: config.Source1_7, Features: config.Source1_7.Features()}
	cfg = cfg.withDefaults()
	b.ResetTimer()
	for n := 0; n < b.N; n = n + 1 {
		s := NewScanner(cfg, "Bench.java", buf)
		count := 0
		for s.NextToken().Type != idl.TokenTypeEOF {
			count = count + 1
		}
		benchTokens = count
	}
}
