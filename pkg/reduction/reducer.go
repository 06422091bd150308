package reduction

import (
	"context"
	"errors"
	"fmt"

	"github.com/vic/lambdaviz/pkg/lambda"
)

const (
	DefaultMaxSteps = 10_000
	DefaultMaxSize  = 1 << 22
)

var (
	// ErrStepLimit means no normal form was reached within the step bound.
	ErrStepLimit = errors.New("step limit exceeded")
	// ErrSizeLimit means the term grew past the size bound.
	ErrSizeLimit = errors.New("term size limit exceeded")
)

// Reducer drives Step to a fixed point under step and size bounds.
// The zero value uses the default bounds and keeps no trace.
type Reducer struct {
	MaxSteps  int
	MaxSize   int
	KeepTrace bool
	Stats     *Stats
}

// Result describes a reduction run. When Reduce fails, Term is the last term reached.
type Result struct {
	Term         lambda.Term
	Trace        []lambda.Term // input first, last entry equals Term
	Steps        int
	Contractions int
	PeakSize     int
}

// Reduce steps t until it is in normal form.
func (r Reducer) Reduce(ctx context.Context, t lambda.Term) (Result, error) {
	maxSteps := r.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	maxSize := r.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	res := Result{
		Term:     t,
		PeakSize: lambda.SizeAtMost(t, maxSize),
	}
	if r.KeepTrace {
		res.Trace = []lambda.Term{t}
	}
	defer func() {
		r.Stats.record(res)
	}()

	if res.PeakSize > maxSize {
		return res, fmt.Errorf("%w: more than %d nodes", ErrSizeLimit, maxSize)
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		next, n := step(res.Term)
		if n == 0 {
			return res, nil
		}
		if res.Steps >= maxSteps {
			return res, fmt.Errorf("%w: %d steps", ErrStepLimit, maxSteps)
		}
		res.Term = next
		res.Steps++
		res.Contractions += n
		if r.KeepTrace {
			res.Trace = append(res.Trace, next)
		}
		size := lambda.SizeAtMost(next, maxSize)
		res.PeakSize = max(res.PeakSize, size)
		if size > maxSize {
			return res, fmt.Errorf("%w: more than %d nodes after %d steps", ErrSizeLimit, maxSize, res.Steps)
		}
	}
}

// Normalize reduces t to normal form under the default bounds.
func Normalize(t lambda.Term) (lambda.Term, error) {
	res, err := Reducer{}.Reduce(context.Background(), t)
	return res.Term, err
}

// Trace reduces t under the default bounds and returns every intermediate term,
// starting with t itself and ending with its normal form.
func Trace(t lambda.Term) ([]lambda.Term, error) {
	res, err := Reducer{KeepTrace: true}.Reduce(context.Background(), t)
	return res.Trace, err
}
