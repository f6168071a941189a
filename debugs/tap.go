package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/xioustic/bf-naive/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap runs an interactive starlark REPL on stdin with globals predeclared.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()
		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates a starlark expression with globals predeclared and returns its string form.
func Eval(globals map[string]any, expr string) (string, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	value, err := starlark.EvalOptions(fileOptions, thread, "<expr>", expr, toStringDict(globals))
	if err != nil {
		return "", fmt.Errorf("eval %q: %w", expr, err)
	}
	if s, ok := value.(starlark.String); ok {
		return string(s), nil
	}
	return value.String(), nil
}
