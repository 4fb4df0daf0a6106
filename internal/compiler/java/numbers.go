// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/idl"
)

// scanZero dispatches on the character following a leading zero.
func (self *Scanner) scanZero() {
	self.scanChar()
	switch self.ch {
	case 'x', 'X':
		self.scanChar()
		self.skipIllegalUnderscores()
		switch {
		case self.ch == '.':
			self.scanHexFractionAndSuffix(false)
		case self.digit(16) < 0:
			self.lexError(self.pos, exc.KeyInvalidHexNumber)
		default:
			self.scanNumber(16)
		}
	case 'b', 'B':
		if !self.features.BinaryLiterals {
			self.lexError(self.pos, exc.KeyUnsupportedBinaryLit, self.source.String())
			self.features.BinaryLiterals = true
		}
		self.scanChar()
		self.skipIllegalUnderscores()
		if self.digit(2) < 0 {
			self.lexError(self.pos, exc.KeyInvalidBinaryNumber)
		} else {
			self.scanNumber(2)
		}
	default:
		self.putChar('0')
		if self.ch == '_' {
			savePos := self.bp
			for {
				self.scanChar()
				if self.ch != '_' {
					break
				}
			}
			if self.digit(10) < 0 {
				self.lexError(savePos, exc.KeyIllegalUnderscore)
			}
		}
		self.scanNumber(8)
		// A zero on its own is decimal.
		if self.radix == 8 && len(self.sbuf) == 1 &&
			(self.token == idl.TokenTypeIntLiteral || self.token == idl.TokenTypeLongLiteral) {
			self.radix = 10
		}
	}
}

// scanNumber reads the digits of a literal and its fraction, exponent or
// suffix. Octal candidates accept decimal digits in case they turn out to be
// floating point.
func (self *Scanner) scanNumber(radix int) {
	self.radix = radix
	digitRadix := radix
	if radix == 8 {
		digitRadix = 10
	}
	seendigit := false
	if self.digit(digitRadix) >= 0 {
		seendigit = true
		self.scanDigits(digitRadix)
	}
	switch {
	case radix == 16 && self.ch == '.':
		self.scanHexFractionAndSuffix(seendigit)
	case seendigit && radix == 16 && (self.ch == 'p' || self.ch == 'P'):
		self.scanHexExponentAndSuffix()
	case digitRadix == 10 && self.ch == '.':
		self.putChar(self.ch)
		self.scanChar()
		self.scanFractionAndSuffix()
	case digitRadix == 10 && (self.ch == 'e' || self.ch == 'E' ||
		self.ch == 'f' || self.ch == 'F' ||
		self.ch == 'd' || self.ch == 'D'):
		self.scanFractionAndSuffix()
	case self.ch == 'l' || self.ch == 'L':
		self.scanChar()
		self.token = idl.TokenTypeLongLiteral
	default:
		self.token = idl.TokenTypeIntLiteral
	}
}

// scanDigits copies a run of digits and underscores. Underscores are dropped
// from the literal text and may not end the run.
func (self *Scanner) scanDigits(digitRadix int) {
	var saveCh uint16
	savePos := 0
	for {
		if self.ch != '_' {
			self.putChar(self.ch)
		} else if !self.features.UnderscoresInLiterals {
			self.lexError(self.pos, exc.KeyUnsupportedUnderscoreLit, self.source.String())
			self.features.UnderscoresInLiterals = true
		}
		saveCh = self.ch
		savePos = self.bp
		self.scanChar()
		if self.digit(digitRadix) < 0 && self.ch != '_' {
			break
		}
	}
	if saveCh == '_' {
		self.lexError(savePos, exc.KeyIllegalUnderscore)
	}
}

func (self *Scanner) skipIllegalUnderscores() {
	if self.ch != '_' {
		return
	}
	self.lexError(self.bp, exc.KeyIllegalUnderscore)
	for self.ch == '_' {
		self.scanChar()
	}
}

// scanFraction reads the digits after the decimal point and an optional
// exponent. A malformed exponent is reported and dropped from the text.
func (self *Scanner) scanFraction() {
	self.skipIllegalUnderscores()
	if self.ch >= '0' && self.ch <= '9' {
		self.scanDigits(10)
	}
	sp := len(self.sbuf)
	if self.ch != 'e' && self.ch != 'E' {
		return
	}
	self.putChar(self.ch)
	self.scanChar()
	self.skipIllegalUnderscores()
	if self.ch == '+' || self.ch == '-' {
		self.putChar(self.ch)
		self.scanChar()
	}
	self.skipIllegalUnderscores()
	if self.ch >= '0' && self.ch <= '9' {
		self.scanDigits(10)
		return
	}
	self.lexError(self.pos, exc.KeyMalformedFpLit)
	self.sbuf = self.sbuf[:sp]
}

func (self *Scanner) scanFractionAndSuffix() {
	self.radix = 10
	self.scanFraction()
	self.scanFloatSuffix()
}

func (self *Scanner) scanFloatSuffix() {
	switch self.ch {
	case 'f', 'F':
		self.putChar(self.ch)
		self.scanChar()
		self.token = idl.TokenTypeFloatLiteral
	case 'd', 'D':
		self.putChar(self.ch)
		self.scanChar()
		self.token = idl.TokenTypeDoubleLiteral
	default:
		self.token = idl.TokenTypeDoubleLiteral
	}
}

// scanHexFractionAndSuffix is entered on the '.' of a hexadecimal literal.
func (self *Scanner) scanHexFractionAndSuffix(seendigit bool) {
	self.radix = 16
	self.putChar(self.ch)
	self.scanChar()
	self.skipIllegalUnderscores()
	if self.digit(16) >= 0 {
		seendigit = true
		self.scanDigits(16)
	}
	if !seendigit {
		self.lexError(self.pos, exc.KeyInvalidHexNumber)
		return
	}
	self.scanHexExponentAndSuffix()
}

// scanHexExponentAndSuffix requires the binary exponent of a hexadecimal
// floating point literal.
func (self *Scanner) scanHexExponentAndSuffix() {
	if self.ch == 'p' || self.ch == 'P' {
		self.putChar(self.ch)
		self.scanChar()
		self.skipIllegalUnderscores()
		if self.ch == '+' || self.ch == '-' {
			self.putChar(self.ch)
			self.scanChar()
		}
		self.skipIllegalUnderscores()
		if self.ch >= '0' && self.ch <= '9' {
			self.scanDigits(10)
			if !self.features.HexFloats {
				self.lexError(self.pos, exc.KeyUnsupportedFpLit, self.source.String())
				self.features.HexFloats = true
			}
		} else {
			self.lexError(self.pos, exc.KeyMalformedFpLit)
		}
	} else {
		self.lexError(self.pos, exc.KeyMalformedFpLit)
	}
	self.scanFloatSuffix()
}
