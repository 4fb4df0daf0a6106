// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"context"
	"log/slog"
	"unicode/utf16"

	"gopkg.microglot.org/javac.go/internal/config"
	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/names"
	"gopkg.microglot.org/javac.go/internal/source"
)

// NoPos marks a position that was never set.
const NoPos = -1

// Scanner converts one source buffer into a sequence of tokens. Lexical
// errors are sent to the configured reporter and never stop the scan. A
// Scanner must not be used from more than one goroutine at a time.
type Scanner struct {
	uri      string
	buf      *source.Buffer
	buflen   int
	source   config.Source
	features config.Features
	names    names.Interner
	keywords *Keywords
	reporter exc.Reporter
	logger   *slog.Logger
	hooks    Hooks

	cursor
	sbuf []uint16

	token      idl.TokenType
	pos        int
	endPos     int
	prevEndPos int
	errPos     int
	name       names.Name
	radix      int
	deprecated bool
}

// cursor is the read position. bp is the raw index of the first code unit of
// the current character and next is the raw index following it, which is
// more than bp+1 when ch was produced by a unicode escape.
type cursor struct {
	bp        int
	next      int
	ch        uint16
	converted bool
}

// NewScanner prepares a scanner positioned on the first character of buf.
// The uri is only used to locate diagnostics.
func NewScanner(cfg *Config, uri string, buf *source.Buffer) *Scanner {
	c := cfg.withDefaults()
	s := &Scanner{
		uri:      uri,
		buf:      buf,
		buflen:   buf.Len(),
		source:   c.Source,
		features: c.Features,
		names:    c.Names,
		keywords: c.Keywords,
		reporter: c.Reporter,
		logger:   c.Logger,
		hooks:    c.Hooks,
		sbuf:     make([]uint16, 0, 128),
		errPos:   NoPos,
	}
	s.scanChar()
	return s
}

// NextToken scans and returns the next token. Whitespace, line terminators
// and comments are passed to the hooks and skipped. Once the end of input is
// reached every call returns an EOF token positioned at the end of the
// buffer.
func (self *Scanner) NextToken() *idl.Token {
	self.prevEndPos = self.endPos
	self.sbuf = self.sbuf[:0]
	self.token = idl.TokenTypeError
	self.name = names.Name{}
	self.radix = 0
	self.deprecated = false
	self.scanToken()
	self.endPos = self.bp
	t := self.emit()
	self.debug("token", t.Span, slog.String("type", t.Type.String()))
	return t
}

// PrevEndPos is the end of the token before the last one returned.
func (self *Scanner) PrevEndPos() int {
	return self.prevEndPos
}

// ErrPos is the position of the most recent lexical error or NoPos.
func (self *Scanner) ErrPos() int {
	return self.errPos
}

// Features returns the literal features in effect. A feature that was
// reported as unsupported is enabled from then on.
func (self *Scanner) Features() config.Features {
	return self.features
}

// Raw returns the source text between two positions without unicode escape
// translation.
func (self *Scanner) Raw(start int, end int) string {
	return self.buf.Raw(start, end)
}

func (self *Scanner) LineMap() *source.LineMap {
	return self.buf.LineMap()
}

func (self *Scanner) URI() string {
	return self.uri
}

func (self *Scanner) emit() *idl.Token {
	t := &idl.Token{
		Type:       self.token,
		Span:       idl.Span{Start: self.pos, End: self.endPos},
		Deprecated: self.deprecated,
	}
	switch {
	case self.token == idl.TokenTypeError || self.token == idl.TokenTypeEOF:
	case self.token.IsLiteral():
		t.Value = string(utf16.Decode(self.sbuf))
		switch self.token {
		case idl.TokenTypeIntLiteral, idl.TokenTypeLongLiteral, idl.TokenTypeFloatLiteral, idl.TokenTypeDoubleLiteral:
			t.Radix = self.radix
		}
	default:
		t.Name = self.name
		if t.Name.IsZero() {
			t.Name = self.keywords.Name(self.token)
		}
	}
	return t
}

func (self *Scanner) scanToken() {
	for {
		self.pos = self.bp
		switch c := self.ch; {
		case c == ' ' || c == '\t' || c == chFF:
			for {
				self.scanChar()
				if self.ch != ' ' && self.ch != '\t' && self.ch != chFF {
					break
				}
			}
			self.endPos = self.bp
			self.hooks.Whitespace(self, idl.Span{Start: self.pos, End: self.endPos})
		case c == chLF:
			self.scanChar()
			self.endPos = self.bp
			self.hooks.LineTerminator(self, idl.Span{Start: self.pos, End: self.endPos})
		case c == chCR:
			self.scanChar()
			if self.ch == chLF {
				self.scanChar()
			}
			self.endPos = self.bp
			self.hooks.LineTerminator(self, idl.Span{Start: self.pos, End: self.endPos})
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '$' || c == '_':
			self.scanIdent()
			return
		case c == '0':
			self.scanZero()
			return
		case c >= '1' && c <= '9':
			self.scanNumber(10)
			return
		case c == '.':
			self.scanDot()
			return
		case c == '/':
			if self.scanSlash() {
				return
			}
		case c == '\'':
			self.scanCharLiteral()
			return
		case c == '"':
			self.scanStringLiteral()
			return
		default:
			if t, ok := separators[c]; ok {
				self.scanChar()
				self.token = t
				return
			}
			self.scanOther()
			return
		}
	}
}

var separators = map[uint16]idl.TokenType{
	'(': idl.TokenTypeParenOpen,
	')': idl.TokenTypeParenClose,
	'{': idl.TokenTypeCurlyOpen,
	'}': idl.TokenTypeCurlyClose,
	'[': idl.TokenTypeSquareOpen,
	']': idl.TokenTypeSquareClose,
	';': idl.TokenTypeSemicolon,
	',': idl.TokenTypeComma,
}

// scanChar advances to the next character, translating unicode escapes.
func (self *Scanner) scanChar() {
	self.bp = self.next
	self.converted = false
	if self.bp >= self.buflen {
		self.bp = self.buflen
		self.next = self.buflen
		self.ch = chEOI
		return
	}
	self.next = self.bp + 1
	self.ch = self.buf.At(self.bp)
	if self.ch == '\\' {
		self.convertUnicode()
	}
}

// convertUnicode replaces a backslash, one or more 'u' and four hex digits
// with the character they encode. A malformed escape is reported and leaves
// the cursor on the first offending character.
func (self *Scanner) convertUnicode() {
	if self.ch != '\\' || self.converted {
		return
	}
	start := self.bp
	p := start + 1
	if self.buf.At(p) != 'u' {
		return
	}
	for self.buf.At(p) == 'u' {
		p = p + 1
	}
	limit := p + 3
	self.bp = p
	self.ch = self.buf.At(p)
	if limit < self.buflen {
		d := self.digit(16)
		code := d
		for self.bp < limit && d >= 0 {
			self.bp = self.bp + 1
			self.ch = self.buf.At(self.bp)
			d = self.digit(16)
			code = (code << 4) + d
		}
		if d >= 0 {
			self.ch = uint16(code)
			self.next = self.bp + 1
			self.bp = start
			self.converted = true
			return
		}
	}
	self.next = min(self.bp+1, self.buflen)
	self.lexError(self.bp, exc.KeyIllegalUnicodeEsc)
}

// scanCommentChar is scanChar for comment bodies where an escaped backslash
// pair is consumed as one character so it cannot start a unicode escape.
func (self *Scanner) scanCommentChar() {
	self.scanChar()
	if self.ch == '\\' && !self.converted && self.buf.At(self.next) == '\\' {
		self.next = self.next + 1
	}
}

func (self *Scanner) putChar(c uint16) {
	self.sbuf = append(self.sbuf, c)
}

func (self *Scanner) lexError(pos int, key string, args ...any) {
	_ = self.reporter.Report(exc.NewDiagnostic(self.location(pos), key, args...))
	self.token = idl.TokenTypeError
	self.errPos = pos
}

func (self *Scanner) location(pos int) exc.Location {
	m := self.buf.LineMap()
	return exc.Location{
		URI:    self.uri,
		Offset: pos,
		Line:   m.Line(pos),
		Column: m.Column(pos),
	}
}

// digit returns the value of the current character in base. Non-ASCII digits
// are reported and replaced by their ASCII form.
func (self *Scanner) digit(base int) int {
	c := self.ch
	result := digitValue(c, base)
	if result >= 0 && c > 0x7F {
		self.lexError(self.pos+1, exc.KeyIllegalNonASCIIDigit)
		self.ch = uint16("0123456789abcdef"[result])
	}
	return result
}

func (self *Scanner) debug(msg string, span idl.Span, attrs ...slog.Attr) {
	ctx := context.Background()
	if !self.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	all := make([]slog.Attr, 0, len(attrs)+4)
	all = append(all,
		slog.String("uri", self.uri),
		slog.Int("pos", span.Start),
		slog.Int("end", span.End),
		slog.String("raw", self.Raw(span.Start, span.End)),
	)
	all = append(all, attrs...)
	self.logger.LogAttrs(ctx, slog.LevelDebug, msg, all...)
}

func (self *Scanner) scanIdent() {
	for {
		self.putChar(self.ch)
		self.scanChar()
		c := self.ch
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '$' || c == '_':
			continue
		case c <= 0x08 || (c >= 0x0E && c <= 0x19) || c == 0x1B || c == 0x7F:
			continue
		case c == chEOI:
			if self.bp >= self.buflen {
				self.finishName()
				return
			}
			continue
		}
		part := false
		if c >= 0x80 {
			mark := self.cursor
			if high := self.scanSurrogates(); high != 0 {
				part = isIdentifierPart(toCodePoint(high, self.ch))
				if part {
					self.putChar(high)
				} else {
					self.cursor = mark
				}
			} else {
				part = isIdentifierPart(rune(self.ch))
			}
		}
		if !part {
			self.finishName()
			return
		}
	}
}

func (self *Scanner) finishName() {
	self.name = self.names.FromChars(self.sbuf)
	self.token = self.keywords.Key(self.name)
}

// scanSurrogates consumes a high surrogate and returns it when it is followed
// by a low surrogate. Otherwise the cursor is left unchanged and zero is
// returned.
func (self *Scanner) scanSurrogates() uint16 {
	if !isHighSurrogate(self.ch) {
		return 0
	}
	mark := self.cursor
	high := self.ch
	self.scanChar()
	if isLowSurrogate(self.ch) {
		return high
	}
	self.cursor = mark
	return 0
}

// scanOperator extends the operator one character at a time for as long as
// the longer spelling is still a known token.
func (self *Scanner) scanOperator() {
	for {
		self.putChar(self.ch)
		n := self.names.FromChars(self.sbuf)
		t := self.keywords.Key(n)
		if t == idl.TokenTypeIdentifier {
			self.sbuf = self.sbuf[:len(self.sbuf)-1]
			return
		}
		self.name = n
		self.token = t
		self.scanChar()
		if !isSpecial(self.ch) {
			return
		}
	}
}

func (self *Scanner) scanOther() {
	if isSpecial(self.ch) {
		self.scanOperator()
		return
	}
	start := false
	code := rune(self.ch)
	if self.ch >= 0x80 {
		if high := self.scanSurrogates(); high != 0 {
			code = toCodePoint(high, self.ch)
			start = isIdentifierStart(code)
			if start {
				self.putChar(high)
			}
		} else {
			start = isIdentifierStart(code)
		}
	}
	switch {
	case start:
		self.scanIdent()
	case self.bp == self.buflen || (self.ch == chEOI && self.bp+1 == self.buflen):
		self.token = idl.TokenTypeEOF
		self.bp = self.buflen
		self.next = self.buflen
		self.ch = chEOI
		self.converted = false
		self.pos = self.buflen
	default:
		self.lexError(self.pos, exc.KeyIllegalChar, int(code))
		self.scanChar()
	}
}

func (self *Scanner) scanDot() {
	self.scanChar()
	switch {
	case self.ch >= '0' && self.ch <= '9':
		self.putChar('.')
		self.scanFractionAndSuffix()
	case self.ch == '.':
		self.putChar('.')
		self.putChar('.')
		self.scanChar()
		if self.ch == '.' {
			self.scanChar()
			self.putChar('.')
			self.token = idl.TokenTypeEllipsis
		} else {
			self.lexError(self.pos, exc.KeyMalformedFpLit)
		}
	default:
		self.token = idl.TokenTypeDot
	}
}

// scanSlash handles division operators and comments. It returns false when a
// comment was consumed and scanning should continue.
func (self *Scanner) scanSlash() bool {
	self.scanChar()
	switch self.ch {
	case '/':
		for {
			self.scanCommentChar()
			if self.ch == chCR || self.ch == chLF || self.bp >= self.buflen {
				break
			}
		}
		self.endPos = self.bp
		self.hooks.Comment(self, idl.Comment{
			Style: idl.CommentStyleLine,
			Span:  idl.Span{Start: self.pos, End: self.endPos},
		})
		return false
	case '*':
		self.scanChar()
		style := idl.CommentStyleBlock
		deprecated := false
		if self.ch == '*' {
			style = idl.CommentStyleDoc
			deprecated = self.scanDocComment()
		} else {
			for self.bp < self.buflen {
				if self.ch == '*' {
					self.scanChar()
					if self.ch == '/' {
						break
					}
				} else {
					self.scanCommentChar()
				}
			}
		}
		if self.ch != '/' {
			self.lexError(self.pos, exc.KeyUnclosedComment)
			return true
		}
		self.scanChar()
		self.endPos = self.bp
		if deprecated {
			self.deprecated = true
		}
		self.hooks.Comment(self, idl.Comment{
			Style:      style,
			Span:       idl.Span{Start: self.pos, End: self.endPos},
			Deprecated: deprecated,
		})
		return false
	case '=':
		self.token = idl.TokenTypeDivideEqual
		self.scanChar()
	default:
		self.token = idl.TokenTypeSlash
	}
	return true
}

// scanDocComment skips the body of a documentation comment and reports
// whether a line of it starts with @deprecated followed by whitespace or the
// end of the comment. The cursor is left on the closing '/' when there is
// one.
func (self *Scanner) scanDocComment() bool {
	deprecated := false
	for self.bp < self.buflen {
		for self.bp < self.buflen && (self.ch == ' ' || self.ch == '\t' || self.ch == chFF) {
			self.scanCommentChar()
		}
		for self.bp < self.buflen && self.ch == '*' {
			self.scanCommentChar()
			if self.ch == '/' {
				return deprecated
			}
		}
		for self.bp < self.buflen && (self.ch == ' ' || self.ch == '\t' || self.ch == chFF) {
			self.scanCommentChar()
		}
		prefix := false
		if self.bp < self.buflen && self.ch == '@' && !deprecated {
			self.scanCommentChar()
			prefix = self.scanCommentWord("deprecated")
		}
		if prefix && self.bp < self.buflen {
			if isWhitespace(rune(self.ch)) {
				deprecated = true
			} else if self.ch == '*' {
				self.scanCommentChar()
				if self.ch == '/' {
					return true
				}
			}
		}
	line:
		for self.bp < self.buflen {
			switch self.ch {
			case '*':
				self.scanCommentChar()
				if self.ch == '/' {
					return deprecated
				}
			case chCR:
				self.scanCommentChar()
				if self.ch == chLF {
					self.scanCommentChar()
				}
				break line
			case chLF:
				self.scanCommentChar()
				break line
			default:
				self.scanCommentChar()
			}
		}
	}
	return deprecated
}

func (self *Scanner) scanCommentWord(word string) bool {
	for x := 0; x < len(word); x = x + 1 {
		if self.bp >= self.buflen || self.ch != uint16(word[x]) {
			return false
		}
		self.scanCommentChar()
	}
	return true
}

func (self *Scanner) scanCharLiteral() {
	self.scanChar()
	if self.ch == '\'' {
		self.lexError(self.pos, exc.KeyEmptyCharLit)
		self.scanChar()
		return
	}
	if self.ch == chCR || self.ch == chLF {
		self.lexError(self.pos, exc.KeyIllegalLineEndInCharLit)
	}
	self.scanLitChar()
	if self.ch == '\'' {
		self.scanChar()
		self.token = idl.TokenTypeCharLiteral
		return
	}
	self.lexError(self.pos, exc.KeyUnclosedCharLit)
}

func (self *Scanner) scanStringLiteral() {
	self.scanChar()
	for self.ch != '"' && self.ch != chCR && self.ch != chLF && self.bp < self.buflen {
		self.scanLitChar()
	}
	if self.ch == '"' {
		self.token = idl.TokenTypeStringLiteral
		self.scanChar()
		return
	}
	self.lexError(self.pos, exc.KeyUnclosedStrLit)
}

// scanLitChar copies one possibly escaped character of a char or string
// literal into the literal buffer.
func (self *Scanner) scanLitChar() {
	if self.ch != '\\' {
		if self.bp != self.buflen {
			self.putChar(self.ch)
			self.scanChar()
		}
		return
	}
	if !self.converted && self.buf.At(self.next) == '\\' {
		self.next = self.next + 1
		self.putChar('\\')
		self.scanChar()
		return
	}
	self.scanChar()
	switch self.ch {
	case '0', '1', '2', '3', '4', '5', '6', '7':
		lead := self.ch
		oct := self.digit(8)
		self.scanChar()
		if self.ch >= '0' && self.ch <= '7' {
			oct = oct*8 + self.digit(8)
			self.scanChar()
			if lead <= '3' && self.ch >= '0' && self.ch <= '7' {
				oct = oct*8 + self.digit(8)
				self.scanChar()
			}
		}
		self.putChar(uint16(oct))
	case 'b':
		self.putChar('\b')
		self.scanChar()
	case 't':
		self.putChar('\t')
		self.scanChar()
	case 'n':
		self.putChar('\n')
		self.scanChar()
	case 'f':
		self.putChar('\f')
		self.scanChar()
	case 'r':
		self.putChar('\r')
		self.scanChar()
	case '\'', '"', '\\':
		self.putChar(self.ch)
		self.scanChar()
	default:
		self.lexError(self.bp, exc.KeyIllegalEscChar)
	}
}
