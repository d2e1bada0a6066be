package bflang

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformed = errors.New("malformed program")

type Pos struct {
	Offset int // byte offset in the source
	Line   int // 1-based
	Column int // 1-based
}

type PosError struct {
	Err  error
	Pos  Pos
	Name string
	Line string // source line content, may be empty
}

func (p PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d", p.Err.Error(), p.Name, p.Pos.Line, p.Pos.Column))

	if p.Line != "" {
		sb.WriteString("\n")
		sb.WriteString(p.Line)
		sb.WriteString("\n")

		// Caret
		col := p.Pos.Column - 1
		if col > len(p.Line) {
			col = len(p.Line)
		}
		for _, b := range []byte(p.Line[:col]) {
			if b == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}
