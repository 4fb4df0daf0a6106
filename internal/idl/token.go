// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"fmt"

	"gopkg.microglot.org/javac.go/internal/names"
)

// Span is a half open range of UTF-16 code unit offsets into the raw source.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

type Token struct {
	Type TokenType
	Span Span
	// Name is the interned spelling of identifiers, keywords, operators and
	// separators. It is zero for literals, EOF and errors.
	Name names.Name
	// Value holds the text of literals with prefixes, long suffixes and
	// underscores removed, or the decoded characters of char and string
	// literals.
	Value string
	// Radix of numeric literals. Zero for every other token.
	Radix int
	// Deprecated reports that a documentation comment carrying the
	// @deprecated marker preceded this token.
	Deprecated bool
}

func (t *Token) String() string {
	switch {
	case t.Type.IsLiteral():
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	case t.Type == TokenTypeIdentifier:
		return fmt.Sprintf("%s(%s)", t.Type, t.Name)
	default:
		return t.Type.String()
	}
}

type TokenType uint16

const (
	TokenTypeEOF TokenType = iota
	TokenTypeError
	TokenTypeIdentifier
	TokenTypeKeywordAbstract
	TokenTypeKeywordAssert
	TokenTypeKeywordBoolean
	TokenTypeKeywordBreak
	TokenTypeKeywordByte
	TokenTypeKeywordCase
	TokenTypeKeywordCatch
	TokenTypeKeywordChar
	TokenTypeKeywordClass
	TokenTypeKeywordConst
	TokenTypeKeywordContinue
	TokenTypeKeywordDefault
	TokenTypeKeywordDo
	TokenTypeKeywordDouble
	TokenTypeKeywordElse
	TokenTypeKeywordEnum
	TokenTypeKeywordExtends
	TokenTypeKeywordFinal
	TokenTypeKeywordFinally
	TokenTypeKeywordFloat
	TokenTypeKeywordFor
	TokenTypeKeywordGoto
	TokenTypeKeywordIf
	TokenTypeKeywordImplements
	TokenTypeKeywordImport
	TokenTypeKeywordInstanceof
	TokenTypeKeywordInt
	TokenTypeKeywordInterface
	TokenTypeKeywordLong
	TokenTypeKeywordNative
	TokenTypeKeywordNew
	TokenTypeKeywordPackage
	TokenTypeKeywordPrivate
	TokenTypeKeywordProtected
	TokenTypeKeywordPublic
	TokenTypeKeywordReturn
	TokenTypeKeywordShort
	TokenTypeKeywordStatic
	TokenTypeKeywordStrictfp
	TokenTypeKeywordSuper
	TokenTypeKeywordSwitch
	TokenTypeKeywordSynchronized
	TokenTypeKeywordThis
	TokenTypeKeywordThrow
	TokenTypeKeywordThrows
	TokenTypeKeywordTransient
	TokenTypeKeywordTry
	TokenTypeKeywordVoid
	TokenTypeKeywordVolatile
	TokenTypeKeywordWhile
	TokenTypeKeywordTrue
	TokenTypeKeywordFalse
	TokenTypeKeywordNull
	TokenTypeIntLiteral
	TokenTypeLongLiteral
	TokenTypeFloatLiteral
	TokenTypeDoubleLiteral
	TokenTypeCharLiteral
	TokenTypeStringLiteral
	TokenTypeParenOpen
	TokenTypeParenClose
	TokenTypeCurlyOpen
	TokenTypeCurlyClose
	TokenTypeSquareOpen
	TokenTypeSquareClose
	TokenTypeSemicolon
	TokenTypeComma
	TokenTypeDot
	TokenTypeEllipsis
	TokenTypeAt
	TokenTypeEqual
	TokenTypeAngleClose
	TokenTypeAngleOpen
	TokenTypeExclamation
	TokenTypeTilde
	TokenTypeQuestion
	TokenTypeColon
	TokenTypeComparison
	TokenTypeLesserEqual
	TokenTypeGreaterEqual
	TokenTypeNotComparison
	TokenTypeBinAnd
	TokenTypeBinOr
	TokenTypePlusPlus
	TokenTypeMinusMinus
	TokenTypePlus
	TokenTypeMinus
	TokenTypeStar
	TokenTypeSlash
	TokenTypeAmpersand
	TokenTypePipe
	TokenTypeCaret
	TokenTypePercent
	TokenTypeShiftLeft
	TokenTypeShiftRight
	TokenTypeShiftRightUnsigned
	TokenTypePlusEqual
	TokenTypeMinusEqual
	TokenTypeMultiplyEqual
	TokenTypeDivideEqual
	TokenTypeAmpersandEqual
	TokenTypePipeEqual
	TokenTypeCaretEqual
	TokenTypePercentEqual
	TokenTypeShiftLeftEqual
	TokenTypeShiftRightEqual
	TokenTypeShiftRightUnsignedEqual
)

// TokenTypeKeywordFirst and TokenTypeKeywordLast bound the reserved words.
const (
	TokenTypeKeywordFirst = TokenTypeKeywordAbstract
	TokenTypeKeywordLast  = TokenTypeKeywordNull
)

var tokenTypeNames = [...]string{
	"EOF",
	"Error",
	"Identifier",
	"KeywordAbstract",
	"KeywordAssert",
	"KeywordBoolean",
	"KeywordBreak",
	"KeywordByte",
	"KeywordCase",
	"KeywordCatch",
	"KeywordChar",
	"KeywordClass",
	"KeywordConst",
	"KeywordContinue",
	"KeywordDefault",
	"KeywordDo",
	"KeywordDouble",
	"KeywordElse",
	"KeywordEnum",
	"KeywordExtends",
	"KeywordFinal",
	"KeywordFinally",
	"KeywordFloat",
	"KeywordFor",
	"KeywordGoto",
	"KeywordIf",
	"KeywordImplements",
	"KeywordImport",
	"KeywordInstanceof",
	"KeywordInt",
	"KeywordInterface",
	"KeywordLong",
	"KeywordNative",
	"KeywordNew",
	"KeywordPackage",
	"KeywordPrivate",
	"KeywordProtected",
	"KeywordPublic",
	"KeywordReturn",
	"KeywordShort",
	"KeywordStatic",
	"KeywordStrictfp",
	"KeywordSuper",
	"KeywordSwitch",
	"KeywordSynchronized",
	"KeywordThis",
	"KeywordThrow",
	"KeywordThrows",
	"KeywordTransient",
	"KeywordTry",
	"KeywordVoid",
	"KeywordVolatile",
	"KeywordWhile",
	"KeywordTrue",
	"KeywordFalse",
	"KeywordNull",
	"IntLiteral",
	"LongLiteral",
	"FloatLiteral",
	"DoubleLiteral",
	"CharLiteral",
	"StringLiteral",
	"ParenOpen",
	"ParenClose",
	"CurlyOpen",
	"CurlyClose",
	"SquareOpen",
	"SquareClose",
	"Semicolon",
	"Comma",
	"Dot",
	"Ellipsis",
	"At",
	"Equal",
	"AngleClose",
	"AngleOpen",
	"Exclamation",
	"Tilde",
	"Question",
	"Colon",
	"Comparison",
	"LesserEqual",
	"GreaterEqual",
	"NotComparison",
	"BinAnd",
	"BinOr",
	"PlusPlus",
	"MinusMinus",
	"Plus",
	"Minus",
	"Star",
	"Slash",
	"Ampersand",
	"Pipe",
	"Caret",
	"Percent",
	"ShiftLeft",
	"ShiftRight",
	"ShiftRightUnsigned",
	"PlusEqual",
	"MinusEqual",
	"MultiplyEqual",
	"DivideEqual",
	"AmpersandEqual",
	"PipeEqual",
	"CaretEqual",
	"PercentEqual",
	"ShiftLeftEqual",
	"ShiftRightEqual",
	"ShiftRightUnsignedEqual",
}

var tokenTypeSpellings = map[TokenType]string{
	TokenTypeKeywordAbstract:         "abstract",
	TokenTypeKeywordAssert:           "assert",
	TokenTypeKeywordBoolean:          "boolean",
	TokenTypeKeywordBreak:            "break",
	TokenTypeKeywordByte:             "byte",
	TokenTypeKeywordCase:             "case",
	TokenTypeKeywordCatch:            "catch",
	TokenTypeKeywordChar:             "char",
	TokenTypeKeywordClass:            "class",
	TokenTypeKeywordConst:            "const",
	TokenTypeKeywordContinue:         "continue",
	TokenTypeKeywordDefault:          "default",
	TokenTypeKeywordDo:               "do",
	TokenTypeKeywordDouble:           "double",
	TokenTypeKeywordElse:             "else",
	TokenTypeKeywordEnum:             "enum",
	TokenTypeKeywordExtends:          "extends",
	TokenTypeKeywordFinal:            "final",
	TokenTypeKeywordFinally:          "finally",
	TokenTypeKeywordFloat:            "float",
	TokenTypeKeywordFor:              "for",
	TokenTypeKeywordGoto:             "goto",
	TokenTypeKeywordIf:               "if",
	TokenTypeKeywordImplements:       "implements",
	TokenTypeKeywordImport:           "import",
	TokenTypeKeywordInstanceof:       "instanceof",
	TokenTypeKeywordInt:              "int",
	TokenTypeKeywordInterface:        "interface",
	TokenTypeKeywordLong:             "long",
	TokenTypeKeywordNative:           "native",
	TokenTypeKeywordNew:              "new",
	TokenTypeKeywordPackage:          "package",
	TokenTypeKeywordPrivate:          "private",
	TokenTypeKeywordProtected:        "protected",
	TokenTypeKeywordPublic:           "public",
	TokenTypeKeywordReturn:           "return",
	TokenTypeKeywordShort:            "short",
	TokenTypeKeywordStatic:           "static",
	TokenTypeKeywordStrictfp:         "strictfp",
	TokenTypeKeywordSuper:            "super",
	TokenTypeKeywordSwitch:           "switch",
	TokenTypeKeywordSynchronized:     "synchronized",
	TokenTypeKeywordThis:             "this",
	TokenTypeKeywordThrow:            "throw",
	TokenTypeKeywordThrows:           "throws",
	TokenTypeKeywordTransient:        "transient",
	TokenTypeKeywordTry:              "try",
	TokenTypeKeywordVoid:             "void",
	TokenTypeKeywordVolatile:         "volatile",
	TokenTypeKeywordWhile:            "while",
	TokenTypeKeywordTrue:             "true",
	TokenTypeKeywordFalse:            "false",
	TokenTypeKeywordNull:             "null",
	TokenTypeParenOpen:               "(",
	TokenTypeParenClose:              ")",
	TokenTypeCurlyOpen:               "{",
	TokenTypeCurlyClose:              "}",
	TokenTypeSquareOpen:              "[",
	TokenTypeSquareClose:             "]",
	TokenTypeSemicolon:               ";",
	TokenTypeComma:                   ",",
	TokenTypeDot:                     ".",
	TokenTypeEllipsis:                "...",
	TokenTypeAt:                      "@",
	TokenTypeEqual:                   "=",
	TokenTypeAngleClose:              ">",
	TokenTypeAngleOpen:               "<",
	TokenTypeExclamation:             "!",
	TokenTypeTilde:                   "~",
	TokenTypeQuestion:                "?",
	TokenTypeColon:                   ":",
	TokenTypeComparison:              "==",
	TokenTypeLesserEqual:             "<=",
	TokenTypeGreaterEqual:            ">=",
	TokenTypeNotComparison:           "!=",
	TokenTypeBinAnd:                  "&&",
	TokenTypeBinOr:                   "||",
	TokenTypePlusPlus:                "++",
	TokenTypeMinusMinus:              "--",
	TokenTypePlus:                    "+",
	TokenTypeMinus:                   "-",
	TokenTypeStar:                    "*",
	TokenTypeSlash:                   "/",
	TokenTypeAmpersand:               "&",
	TokenTypePipe:                    "|",
	TokenTypeCaret:                   "^",
	TokenTypePercent:                 "%",
	TokenTypeShiftLeft:               "<<",
	TokenTypeShiftRight:              ">>",
	TokenTypeShiftRightUnsigned:      ">>>",
	TokenTypePlusEqual:               "+=",
	TokenTypeMinusEqual:              "-=",
	TokenTypeMultiplyEqual:           "*=",
	TokenTypeDivideEqual:             "/=",
	TokenTypeAmpersandEqual:          "&=",
	TokenTypePipeEqual:               "|=",
	TokenTypeCaretEqual:              "^=",
	TokenTypePercentEqual:            "%=",
	TokenTypeShiftLeftEqual:          "<<=",
	TokenTypeShiftRightEqual:         ">>=",
	TokenTypeShiftRightUnsignedEqual: ">>>=",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("unknown-%d", t)
}

// Spelling returns the fixed source text of keywords, operators and
// separators. Other token types have no spelling.
func (t TokenType) Spelling() (string, bool) {
	s, ok := tokenTypeSpellings[t]
	return s, ok
}

func (t TokenType) IsKeyword() bool {
	return t >= TokenTypeKeywordFirst && t <= TokenTypeKeywordLast
}

func (t TokenType) IsLiteral() bool {
	return t >= TokenTypeIntLiteral && t <= TokenTypeStringLiteral
}

// TokenTypes returns every token type with a fixed spelling in declaration
// order.
func TokenTypes() []TokenType {
	out := make([]TokenType, 0, len(tokenTypeSpellings))
	for x := TokenType(0); int(x) < len(tokenTypeNames); x = x + 1 {
		if _, ok := tokenTypeSpellings[x]; ok {
			out = append(out, x)
		}
	}
	return out
}
