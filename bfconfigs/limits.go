package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

// TapeLimit caps allocated cells. Zero means unlimited.
type TapeLimit int

var tapeLimitFlag = cmds.Var[int]("-tape-limit")

func (Module) TapeLimit(
	loader configs.Loader,
) TapeLimit {
	return TapeLimit(vars.FirstNonZero(
		*tapeLimitFlag,
		configs.First[int](loader, "tape_limit"),
	))
}

// StepLimit caps executed instructions. Zero means unlimited.
type StepLimit int

var stepLimitFlag = cmds.Var[int]("-step-limit")

func (Module) StepLimit(
	loader configs.Loader,
) StepLimit {
	return StepLimit(vars.FirstNonZero(
		*stepLimitFlag,
		configs.First[int](loader, "step_limit"),
	))
}
