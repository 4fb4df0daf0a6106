// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package source

import "sort"

// LineMap translates buffer positions into 1-based line and column numbers.
// CR, LF and CRLF all end a line.
type LineMap struct {
	starts []int
}

func newLineMap(chars []uint16) *LineMap {
	starts := []int{0}
	for x := 0; x < len(chars); x = x + 1 {
		switch chars[x] {
		case '\r':
			if x+1 < len(chars) && chars[x+1] == '\n' {
				x = x + 1
			}
			starts = append(starts, x+1)
		case '\n':
			starts = append(starts, x+1)
		}
	}
	return &LineMap{starts: starts}
}

// Lines is the number of line starts. A trailing terminator opens an empty
// final line.
func (m *LineMap) Lines() int {
	return len(m.starts)
}

// Line returns the 1-based line containing pos.
func (m *LineMap) Line(pos int) int32 {
	return int32(sort.Search(len(m.starts), func(i int) bool {
		return m.starts[i] > pos
	}))
}

// Column returns the 1-based column of pos counted in code units.
func (m *LineMap) Column(pos int) int32 {
	line := m.Line(pos)
	if line < 1 {
		return int32(pos + 1)
	}
	return int32(pos-m.starts[line-1]) + 1
}

// LineStart returns the position of the first code unit of a 1-based line.
func (m *LineMap) LineStart(line int32) int {
	if line < 1 || int(line) > len(m.starts) {
		return -1
	}
	return m.starts[line-1]
}
