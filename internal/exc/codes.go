// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal                  = "M0000"
	CodeFileNotFound                  = "M0001"
	CodeUnsuportedFileSystemOperation = "M0002"
	CodePermissionDenied              = "M0003"
	CodeUnsupportedFileFormat         = "M0004"
	CodeUnexpectedEOF                 = "M0005"
	CodeUnsupportedEncoding           = "M0006"
	CodeInvalidSettings               = "M0007"
)

const (
	CodeEOF = "_EOF_"
)

// Lexical diagnostic keys.
const (
	KeyIllegalUnicodeEsc        = "illegal.unicode.esc"
	KeyIllegalEscChar           = "illegal.esc.char"
	KeyIllegalUnderscore        = "illegal.underscore"
	KeyUnsupportedUnderscoreLit = "unsupported.underscore.lit"
	KeyUnsupportedBinaryLit     = "unsupported.binary.lit"
	KeyUnsupportedFpLit         = "unsupported.fp.lit"
	KeyMalformedFpLit           = "malformed.fp.lit"
	KeyInvalidHexNumber         = "invalid.hex.number"
	KeyInvalidBinaryNumber      = "invalid.binary.number"
	KeyEmptyCharLit             = "empty.char.lit"
	KeyIllegalLineEndInCharLit  = "illegal.line.end.in.char.lit"
	KeyUnclosedCharLit          = "unclosed.char.lit"
	KeyUnclosedStrLit           = "unclosed.str.lit"
	KeyUnclosedComment          = "unclosed.comment"
	KeyIllegalChar              = "illegal.char"
	KeyIllegalNonASCIIDigit     = "illegal.nonascii.digit"
)

var messages = map[string]string{
	KeyIllegalUnicodeEsc:        "illegal unicode escape",
	KeyIllegalEscChar:           "illegal escape character",
	KeyIllegalUnderscore:        "illegal underscore",
	KeyUnsupportedUnderscoreLit: "underscores in literals are not supported in -source {0} (use -source 7 or higher to enable underscores in literals)",
	KeyUnsupportedBinaryLit:     "binary literals are not supported in -source {0} (use -source 7 or higher to enable binary literals)",
	KeyUnsupportedFpLit:         "hexadecimal floating point literals are not supported in -source {0} (use -source 5 or higher to enable hexadecimal floating point literals)",
	KeyMalformedFpLit:           "malformed floating point literal",
	KeyInvalidHexNumber:         "hexadecimal numbers must contain at least one hexadecimal digit",
	KeyInvalidBinaryNumber:      "binary numbers must contain at least one binary digit",
	KeyEmptyCharLit:             "empty character literal",
	KeyIllegalLineEndInCharLit:  "illegal line end in character literal",
	KeyUnclosedCharLit:          "unclosed character literal",
	KeyUnclosedStrLit:           "unclosed string literal",
	KeyUnclosedComment:          "unclosed comment",
	KeyIllegalChar:              "illegal character: \\{0}",
	KeyIllegalNonASCIIDigit:     "illegal non-ASCII digit",
}

var (
	defaultNonFatal = map[string]bool{
		KeyIllegalUnicodeEsc:        true,
		KeyIllegalEscChar:           true,
		KeyIllegalUnderscore:        true,
		KeyUnsupportedUnderscoreLit: true,
		KeyUnsupportedBinaryLit:     true,
		KeyUnsupportedFpLit:         true,
		KeyMalformedFpLit:           true,
		KeyInvalidHexNumber:         true,
		KeyInvalidBinaryNumber:      true,
		KeyEmptyCharLit:             true,
		KeyIllegalLineEndInCharLit:  true,
		KeyUnclosedCharLit:          true,
		KeyUnclosedStrLit:           true,
		KeyUnclosedComment:          true,
		KeyIllegalChar:              true,
		KeyIllegalNonASCIIDigit:     true,
	}
)
