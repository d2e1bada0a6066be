package bfconfigs

import (
	"fmt"
	"os"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

// EOFMode decides what a read instruction stores on exhausted input.
type EOFMode bfvm.EOFMode

var eofModeFlag = cmds.Var[string]("-eof")

func (Module) EOFMode(
	loader configs.Loader,
) EOFMode {
	name := vars.FirstNonZero(
		*eofModeFlag,
		configs.First[string](loader, "eof_mode"),
	)
	mode, err := ParseEOFMode(name)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
	return mode
}

func ParseEOFMode(name string) (EOFMode, error) {
	switch name {
	case "", "zero":
		return EOFMode(bfvm.EOFZero), nil
	case "unchanged":
		return EOFMode(bfvm.EOFUnchanged), nil
	case "minus-one":
		return EOFMode(bfvm.EOFMinusOne), nil
	}
	return 0, fmt.Errorf("unknown eof mode: %s", name)
}
