package debugs

import (
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TraceScript drives a starlark script from the VM run loop. The script
// may define:
//
//	def on_step(ip, dp, op, cell, steps): ...  # return True to break
//	def on_output(b): ...
type TraceScript struct {
	thread   *starlark.Thread
	onStep   starlark.Callable
	onOutput starlark.Callable
	err      error
}

var traceFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// LoadTrace execs the script once and captures its hook functions. src may
// be nil to read from the named file, or a string / []byte.
func LoadTrace(name string, src any) (*TraceScript, error) {
	thread := &starlark.Thread{
		Name: name,
	}
	globals, err := starlark.ExecFileOptions(traceFileOptions, thread, name, src, nil)
	if err != nil {
		return nil, err
	}

	ret := &TraceScript{
		thread: thread,
	}
	if fn, ok := globals["on_step"].(starlark.Callable); ok {
		ret.onStep = fn
	}
	if fn, ok := globals["on_output"].(starlark.Callable); ok {
		ret.onOutput = fn
	}
	return ret, nil
}

// Hook adapts the script to a VM step hook. The first script error
// disables further calls and is reported by Err.
func (t *TraceScript) Hook() bfvm.StepHook {
	return func(v *bfvm.VM, op bflang.Op) bool {
		if t.err != nil {
			return false
		}

		var brk bool
		if t.onStep != nil {
			res, err := starlark.Call(t.thread, t.onStep, starlark.Tuple{
				starlark.MakeInt(v.IP),
				starlark.MakeInt(v.DP),
				starlark.String(op.String()),
				starlark.MakeInt(int(v.Cell())),
				starlark.MakeInt(v.Steps),
			}, nil)
			if err != nil {
				t.err = err
				return false
			}
			if b, ok := res.(starlark.Bool); ok && bool(b) {
				brk = true
			}
		}

		if t.onOutput != nil && op == bflang.OpOutput {
			if _, err := starlark.Call(t.thread, t.onOutput, starlark.Tuple{
				starlark.MakeInt(int(v.Cell())),
			}, nil); err != nil {
				t.err = err
				return false
			}
		}

		return brk
	}
}

func (t *TraceScript) Err() error {
	return t.err
}

// VMGlobals is the script's view of a machine, also used to seed the
// REPL tap.
func VMGlobals(v *bfvm.VM) map[string]any {
	right := make([]int, len(v.Tape.Right))
	for i, b := range v.Tape.Right {
		right[i] = int(b)
	}
	left := make([]int, len(v.Tape.Left))
	for i, b := range v.Tape.Left {
		left[i] = int(b)
	}
	return map[string]any{
		"ip":        v.IP,
		"dp":        v.DP,
		"steps":     v.Steps,
		"cell":      int(v.Cell()),
		"tape":      right,
		"tape_left": left,
		"program":   v.Prog.String(),
	}
}
