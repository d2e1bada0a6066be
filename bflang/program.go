package bflang

import "strings"

type Program struct {
	Name string
	Code []Op
	// Jumps[i] is the index of the matching bracket for every OpLoopStart
	// and OpLoopEnd at i, and -1 elsewhere.
	Jumps []int
}

func (p *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Code))
	for _, op := range p.Code {
		sb.WriteString(op.String())
	}
	return sb.String()
}
