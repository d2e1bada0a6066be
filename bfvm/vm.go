package bfvm

import (
	"bufio"
	"io"

	"github.com/reusee/bf/bflang"
)

type EOFMode uint8

const (
	// EOFZero stores 0 on exhausted input.
	EOFZero EOFMode = iota
	// EOFUnchanged leaves the current cell as it is.
	EOFUnchanged
	// EOFMinusOne stores 255, the two's-complement -1 convention.
	EOFMinusOne
)

// StepHook observes each instruction before it executes. Returning true
// requests a breakpoint interrupt from the run loop.
type StepHook func(v *VM, op bflang.Op) bool

type VM struct {
	Prog  *bflang.Program
	Tape  *Tape
	DP    int
	IP    int
	Steps int

	in        io.ByteReader
	out       io.Writer
	hook      StepHook
	eofMode   EOFMode
	tapeLimit int
	stepLimit int

	writeBuf [1]byte
}

type Option func(*VM)

func WithInput(r io.Reader) Option {
	return func(v *VM) {
		if br, ok := r.(io.ByteReader); ok {
			v.in = br
		} else {
			v.in = bufio.NewReader(r)
		}
	}
}

func WithOutput(w io.Writer) Option {
	return func(v *VM) {
		v.out = w
	}
}

func WithEOFMode(mode EOFMode) Option {
	return func(v *VM) {
		v.eofMode = mode
	}
}

// WithTapeLimit caps the number of allocated cells. Zero means unlimited.
func WithTapeLimit(n int) Option {
	return func(v *VM) {
		v.tapeLimit = n
	}
}

// WithStepLimit caps the number of executed instructions. Zero means
// unlimited.
func WithStepLimit(n int) Option {
	return func(v *VM) {
		v.stepLimit = n
	}
}

func WithStepHook(hook StepHook) Option {
	return func(v *VM) {
		v.hook = hook
	}
}

func NewVM(prog *bflang.Program, options ...Option) *VM {
	v := &VM{
		Prog: prog,
		Tape: NewTape(),
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// Cell is the cell under the data pointer.
func (v *VM) Cell() byte {
	return v.Tape.Get(v.DP)
}

func (v *VM) SetCell(b byte) {
	v.Tape.Set(v.DP, b)
}

// Done reports whether the instruction pointer has passed the end of the
// program.
func (v *VM) Done() bool {
	return v.IP >= len(v.Prog.Code)
}
