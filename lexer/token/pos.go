package token

import "fmt"

type Pos struct {
	Filename     string
	Offset       int
	Line, Column int
}

func NewPosition(filename string) Pos {
	return Pos{Filename: filename, Offset: 0, Line: 1, Column: 1}
}

func (pos *Pos) Move(character byte) {
	pos.Offset++
	if character == '\n' {
		pos.Column = 1
		pos.Line++
	} else {
		pos.Column++
	}
}

func (pos *Pos) SetPosition(newPos Pos) {
	pos.Filename = newPos.Filename
	pos.Offset = newPos.Offset
	pos.Line = newPos.Line
	pos.Column = newPos.Column
}

func (pos Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
}

// Span delimits a source region: Start is the first character of the
// construct, End the first character after it.
type Span struct {
	Start Pos
	End   Pos
}

func NewSpan(start, end Pos) Span {
	return Span{Start: start, End: end}
}

func (span Span) String() string {
	return fmt.Sprintf("%s..%d:%d", span.Start, span.End.Line, span.End.Column)
}
