package main

import (
	"context"
	"os"
	"strings"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var (
	codeFlag  = cmds.Var[string]("-e")
	fileFlag  = cmds.Var[string]("-file")
	inputFlag = cmds.Var[string]("-in")
	traceFlag = cmds.Var[string]("-trace")
	tapFlag   = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(logs.Module),
		new(bfconfigs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		eofMode bfconfigs.EOFMode,
		tapeLimit bfconfigs.TapeLimit,
		stepLimit bfconfigs.StepLimit,
		tap debugs.Tap,
	) {

		var prog *bflang.Program
		var err error
		fromStdin := false
		switch {

		case *codeFlag != "":
			prog, err = bflang.CompileString("-e", *codeFlag)

		case *fileFlag != "":
			var f *os.File
			f, err = os.Open(*fileFlag)
			if err == nil {
				prog, err = bflang.Compile(*fileFlag, f)
				f.Close()
			}

		default:
			fromStdin = true
			prog, err = bflang.Compile("stdin", os.Stdin)

		}
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}

		options := []bfvm.Option{
			bfvm.WithOutput(os.Stdout),
			bfvm.WithEOFMode(bfvm.EOFMode(eofMode)),
			bfvm.WithTapeLimit(int(tapeLimit)),
			bfvm.WithStepLimit(int(stepLimit)),
		}
		if *inputFlag != "" {
			options = append(options, bfvm.WithInput(strings.NewReader(*inputFlag)))
		} else if !fromStdin {
			options = append(options, bfvm.WithInput(os.Stdin))
		}

		var script *debugs.TraceScript
		if *traceFlag != "" {
			script, err = debugs.LoadTrace(*traceFlag, nil)
			if err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				os.Exit(-1)
			}
			options = append(options, bfvm.WithStepHook(script.Hook()))
		}

		vm := bfvm.NewVM(prog, options...)
		for _, err := range vm.Run {
			if err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				os.Exit(1)
			}
		}

		// finish the output line
		os.Stdout.WriteString("\n")

		if script != nil && script.Err() != nil {
			logger.Warn("trace script failed", "error", script.Err())
		}
		logger.Debug("run complete",
			"steps", vm.Steps,
			"cells", vm.Tape.Len(),
		)

		if *tapFlag {
			tap(context.Background(), "vm", debugs.VMGlobals(vm))
		}
	})
}
