// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "UTF-8"

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// LookupEncoding resolves an IANA charset name such as "UTF-8", "UTF-16BE" or
// "ISO-8859-1".
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// Decode reads all of r in the named encoding and converts it to a Buffer. A
// leading byte order mark selects the matching UTF encoding and is dropped.
// Malformed input decodes to U+FFFD.
func Decode(r io.Reader, name string) (*Buffer, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	decoder := unicode.BOMOverride(enc.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, err
	}
	return NewBuffer(utf16.Encode([]rune(string(b)))), nil
}
