package ast

import "sort"

// Position is a human-facing source location.
type Position struct {
	Filename string
	Offset   int
	Line     int // 1-based
	Column   int // 1-based, in bytes
}

// LineIndex converts byte offsets into line/column positions.
type LineIndex struct {
	filename   string
	size       int
	lineStarts []int
}

func NewLineIndex(filename, source string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{filename: filename, size: len(source), lineStarts: starts}
}

func (li *LineIndex) Position(offset int) Position {
	offset = max(0, min(offset, li.size))
	line := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1
	return Position{
		Filename: li.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - li.lineStarts[line] + 1,
	}
}

// LineCount returns the number of lines, counting a trailing partial line.
func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}
