package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap drops into a starlark REPL seeded with machine state.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "tap "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)

		predeclared := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			predeclared[name] = toStarlarkValue(value)
		}
		repl.REPLOptions(
			traceFileOptions,
			&starlark.Thread{Name: "tap"},
			predeclared,
		)

		logger.InfoContext(ctx, "tap end")
	}
}
