// Package quiz draws random closed terms and checks answers against their normal form.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/vic/lambdaviz/pkg/lambda"
	"github.com/vic/lambdaviz/pkg/reduction"
)

const (
	DefaultMaxDepth = 6
	DefaultMaxSteps = 200
	DefaultMaxSize  = 5_000
	DefaultAttempts = 1_000
)

var ErrNoPuzzle = errors.New("no suitable puzzle found")

type Options struct {
	MaxDepth int
	MaxSteps int
	MinSteps int
	MaxSize  int
	Attempts int
}

// Puzzle is a term together with its normal form and the number of steps to reach it.
type Puzzle struct {
	Term   lambda.Term
	Normal lambda.Term
	Steps  int
}

// RandomTerm returns a closed term over the letters a to z whose tree has at most
// maxDepth+2 levels.
func RandomTerm(rng *rand.Rand, maxDepth int) lambda.Term {
	return randomTerm(rng, maxDepth, nil)
}

func randomTerm(rng *rand.Rand, depth int, scope []lambda.Ident) lambda.Term {
	if depth <= 0 {
		if len(scope) > 0 {
			return lambda.Var{ID: scope[rng.IntN(len(scope))]}
		}
		id := randomIdent(rng)
		return lambda.Abs{Arg: id, Body: lambda.Var{ID: id}}
	}

	choices := 2
	if len(scope) > 0 {
		choices = 3
	}
	switch rng.IntN(choices) {
	case 0:
		id := randomIdent(rng)
		return lambda.Abs{
			Arg:  id,
			Body: randomTerm(rng, depth-1, append(scope[:len(scope):len(scope)], id)),
		}
	case 1:
		return lambda.App{
			Fun: randomTerm(rng, depth-1, scope),
			Arg: randomTerm(rng, depth-1, scope),
		}
	default:
		return lambda.Var{ID: scope[rng.IntN(len(scope))]}
	}
}

func randomIdent(rng *rand.Rand) lambda.Ident {
	return lambda.Ident{Base: rune('a' + rng.IntN(26))}
}

// Generate draws random terms until one reaches a normal form within the bounds after
// at least MinSteps steps.
func Generate(ctx context.Context, rng *rand.Rand, opts Options) (Puzzle, error) {
	r := reduction.Reducer{
		MaxSteps: lo.CoalesceOrEmpty(opts.MaxSteps, DefaultMaxSteps),
		MaxSize:  lo.CoalesceOrEmpty(opts.MaxSize, DefaultMaxSize),
	}
	depth := lo.CoalesceOrEmpty(opts.MaxDepth, DefaultMaxDepth)
	attempts := lo.CoalesceOrEmpty(opts.Attempts, DefaultAttempts)

	for range attempts {
		term := RandomTerm(rng, depth)
		res, err := r.Reduce(ctx, term)
		switch {
		case errors.Is(err, reduction.ErrStepLimit), errors.Is(err, reduction.ErrSizeLimit):
			continue
		case err != nil:
			return Puzzle{}, err
		}
		if res.Steps < opts.MinSteps {
			continue
		}
		return Puzzle{
			Term:   term,
			Normal: res.Term,
			Steps:  res.Steps,
		}, nil
	}
	return Puzzle{}, fmt.Errorf("%w after %d attempts", ErrNoPuzzle, attempts)
}

// Check reports whether answer is the puzzle's normal form up to renaming of bound
// variables.
func (p Puzzle) Check(answer string) (bool, error) {
	t, err := lambda.Parse(answer)
	if err != nil {
		return false, err
	}
	return lambda.AlphaEqual(t, p.Normal), nil
}
