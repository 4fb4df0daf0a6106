// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic is a lexical problem identified by a message key. The key is the
// exception code and the message is rendered from the catalog only when it is
// requested.
type Diagnostic interface {
	Exception
	Key() string
	Args() []any
}

// NewDiagnostic records key and args without formatting them.
func NewDiagnostic(location Location, key string, args ...any) Diagnostic {
	return &diagnostic{location: location, key: key, args: args}
}

type diagnostic struct {
	location Location
	key      string
	args     []any
}

func (d *diagnostic) Error() string {
	return fmt.Sprintf("%s -- %s: %s", d.location, d.key, d.Message())
}

func (d *diagnostic) Code() string {
	return d.key
}

func (d *diagnostic) Key() string {
	return d.key
}

func (d *diagnostic) Args() []any {
	return d.args
}

func (d *diagnostic) Location() Location {
	return d.location
}

func (d *diagnostic) Message() string {
	return Render(d.key, d.args...)
}

// Render formats the catalog entry for key, substituting {N} with the Nth
// argument. Unknown keys render as the key followed by the arguments.
func Render(key string, args ...any) string {
	tmpl, ok := messages[key]
	if !ok {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf("%s %v", key, args)
	}
	if len(args) == 0 {
		return tmpl
	}
	var b strings.Builder
	for x := 0; x < len(tmpl); x = x + 1 {
		if tmpl[x] == '{' {
			end := strings.IndexByte(tmpl[x:], '}')
			if end > 1 {
				n, err := strconv.Atoi(tmpl[x+1 : x+end])
				if err == nil && n >= 0 && n < len(args) {
					fmt.Fprint(&b, args[n])
					x = x + end
					continue
				}
			}
		}
		b.WriteByte(tmpl[x])
	}
	return b.String()
}
