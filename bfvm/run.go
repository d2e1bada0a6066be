package bfvm

import (
	"fmt"
	"io"

	"github.com/reusee/bf/bflang"
)

// Run executes the program to completion. It is usable as an iterator:
//
//	for _, err := range vm.Run {
//	    ...
//	}
//
// Cell and pointer operations are total; the only yielded errors are
// configured limit violations and output writer failures, all fatal. A
// step hook may yield InterruptBreak, after which execution resumes.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	code := v.Prog.Code
	jumps := v.Prog.Jumps

	for {
		if v.IP < 0 || v.IP >= len(code) {
			return
		}

		op := code[v.IP]

		if v.hook != nil {
			if v.hook(v, op) {
				if !yield(InterruptBreak, nil) {
					return
				}
			}
		}

		v.IP++
		v.Steps++
		if v.stepLimit > 0 && v.Steps > v.stepLimit {
			yield(nil, fmt.Errorf("step limit exceeded: %d", v.stepLimit))
			return
		}

		switch op {

		case bflang.OpRight:
			v.DP++
			v.Tape.Reserve(v.DP)
			if v.tapeLimit > 0 && v.Tape.Len() > v.tapeLimit {
				yield(nil, fmt.Errorf("tape limit exceeded: %d cells", v.tapeLimit))
				return
			}

		case bflang.OpLeft:
			v.DP--
			v.Tape.Reserve(v.DP)
			if v.tapeLimit > 0 && v.Tape.Len() > v.tapeLimit {
				yield(nil, fmt.Errorf("tape limit exceeded: %d cells", v.tapeLimit))
				return
			}

		case bflang.OpInc:
			*v.Tape.Cell(v.DP)++

		case bflang.OpDec:
			*v.Tape.Cell(v.DP)--

		case bflang.OpOutput:
			if v.out != nil {
				v.writeBuf[0] = v.Tape.Get(v.DP)
				if _, err := v.out.Write(v.writeBuf[:]); err != nil {
					yield(nil, err)
					return
				}
			}

		case bflang.OpInput:
			if v.in == nil {
				v.readEOF()
				continue
			}
			b, err := v.in.ReadByte()
			if err == io.EOF {
				v.readEOF()
				continue
			}
			if err != nil {
				yield(nil, err)
				return
			}
			v.Tape.Set(v.DP, b)

		case bflang.OpLoopStart:
			if v.Tape.Get(v.DP) == 0 {
				v.IP = jumps[v.IP-1] + 1
			}

		case bflang.OpLoopEnd:
			if v.Tape.Get(v.DP) != 0 {
				v.IP = jumps[v.IP-1] + 1
			}

		}
	}
}

func (v *VM) readEOF() {
	switch v.eofMode {
	case EOFZero:
		v.Tape.Set(v.DP, 0)
	case EOFUnchanged:
		// keep the cell
	case EOFMinusOne:
		v.Tape.Set(v.DP, 255)
	}
}
