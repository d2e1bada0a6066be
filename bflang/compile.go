package bflang

import (
	"fmt"
	"io"
	"strings"
)

// Compile scans the source in a single pass, discarding comment bytes and
// pairing loop brackets. Unbalanced programs are rejected here, before any
// execution.
func Compile(name string, src io.Reader) (*Program, error) {
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return compile(name, content)
}

func CompileString(name string, src string) (*Program, error) {
	return compile(name, []byte(src))
}

func MustCompile(src string) *Program {
	prog, err := CompileString("", src)
	if err != nil {
		panic(err)
	}
	return prog
}

type openBracket struct {
	index int
	pos   Pos
}

func compile(name string, source []byte) (*Program, error) {
	prog := &Program{
		Name: name,
	}

	var stack []openBracket
	line := 1
	lineStart := 0

	for offset, b := range source {
		if b == '\n' {
			line++
			lineStart = offset + 1
			continue
		}

		op := opTable[b]
		if op == 0 {
			continue
		}

		index := len(prog.Code)
		prog.Code = append(prog.Code, op)
		prog.Jumps = append(prog.Jumps, -1)

		pos := Pos{
			Offset: offset,
			Line:   line,
			Column: offset - lineStart + 1,
		}

		switch op {

		case OpLoopStart:
			stack = append(stack, openBracket{
				index: index,
				pos:   pos,
			})

		case OpLoopEnd:
			if len(stack) == 0 {
				return nil, posError(name, source, pos,
					fmt.Errorf("%w: unmatched ']'", ErrMalformed))
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			prog.Jumps[open.index] = index
			prog.Jumps[index] = open.index

		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, posError(name, source, open.pos,
			fmt.Errorf("%w: unmatched '['", ErrMalformed))
	}

	return prog, nil
}

func posError(name string, source []byte, pos Pos, err error) error {
	lines := strings.Split(string(source), "\n")
	var content string
	if idx := pos.Line - 1; idx >= 0 && idx < len(lines) {
		content = lines[idx]
	}
	return PosError{
		Err:  err,
		Pos:  pos,
		Name: name,
		Line: content,
	}
}
