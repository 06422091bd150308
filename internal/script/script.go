// Package script runs Starlark programs with the lambda engine predeclared.
// Terms cross the boundary as their printed form.
package script

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/vic/lambdaviz/pkg/church"
	"github.com/vic/lambdaviz/pkg/lambda"
	"github.com/vic/lambdaviz/pkg/reduction"
	"github.com/vic/lambdaviz/pkg/tromp"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Runner executes scripts. Reductions started from a script use Reducer's bounds.
type Runner struct {
	Reducer reduction.Reducer
	Output  io.Writer // receives print output; nil discards it
}

// Run executes src (a string, []byte or io.Reader) and returns its globals.
func (r Runner) Run(ctx context.Context, filename string, src any) (starlark.StringDict, error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if r.Output != nil {
				fmt.Fprintln(r.Output, msg)
			}
		},
	}
	thread.SetLocal("context", ctx)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	return starlark.ExecFileOptions(fileOptions, thread, filename, src, r.predeclared())
}

func (r Runner) predeclared() starlark.StringDict {
	return starlark.StringDict{
		"parse":        starlark.NewBuiltin("parse", builtinParse),
		"church":       starlark.NewBuiltin("church", builtinChurch),
		"unchurch":     starlark.NewBuiltin("unchurch", builtinUnchurch),
		"compile":      starlark.NewBuiltin("compile", builtinCompile),
		"eval":         starlark.NewBuiltin("eval", builtinEval),
		"normalize":    starlark.NewBuiltin("normalize", r.builtinNormalize),
		"steps":        starlark.NewBuiltin("steps", r.builtinSteps),
		"diagram_size": starlark.NewBuiltin("diagram_size", builtinDiagramSize),
		"pretty":       starlarkutil.MakeFunc("pretty", pretty),
	}
}

func termArg(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (lambda.Term, error) {
	var text string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "term", &text); err != nil {
		return nil, err
	}
	t, err := lambda.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return t, nil
}

func builtinParse(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t, err := termArg(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(t.String()), nil
}

func builtinChurch(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "n", &n); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative numeral %d", b.Name(), n)
	}
	return starlark.String(church.Numeral(n).String()), nil
}

func builtinUnchurch(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t, err := termArg(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(church.Unchurch(t)), nil
}

func builtinCompile(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var expr string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "expr", &expr); err != nil {
		return nil, err
	}
	t, err := church.Compile(church.Normalize(expr))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.String(t.String()), nil
}

func builtinEval(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var expr string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "expr", &expr); err != nil {
		return nil, err
	}
	n, err := church.Eval(church.Normalize(expr))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.MakeInt(n), nil
}

func (r Runner) reduce(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (reduction.Result, error) {
	t, err := termArg(b, args, kwargs)
	if err != nil {
		return reduction.Result{}, err
	}
	ctx, ok := thread.Local("context").(context.Context)
	if !ok {
		ctx = context.Background()
	}
	res, err := r.Reducer.Reduce(ctx, t)
	if err != nil {
		return res, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return res, nil
}

func (r Runner) builtinNormalize(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	res, err := r.reduce(thread, b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(res.Term.String()), nil
}

func (r Runner) builtinSteps(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	res, err := r.reduce(thread, b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(res.Steps), nil
}

func builtinDiagramSize(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t, err := termArg(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	d := tromp.Layout(t)
	return starlark.Tuple{
		starlark.Float(d.Rightmost().X),
		starlark.Float(d.Bottommost().Y),
	}, nil
}

// pretty renames bound variables to a, b, c... so alpha-equivalent terms print alike.
// Text that does not parse is returned unchanged.
func pretty(text string) string {
	t, err := lambda.Parse(text)
	if err != nil {
		return text
	}
	return lambda.Canonical(t).String()
}
