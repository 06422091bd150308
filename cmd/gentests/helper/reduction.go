package gentests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vic/lambdaviz/pkg/lambda"
	"github.com/vic/lambdaviz/pkg/reduction"
)

// Bounds for terms expected to diverge.
const (
	divergenceSteps = 200
	divergenceSize  = 1 << 16
)

func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(inputStr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	start := time.Now()
	res, err := reduction.Reducer{}.Reduce(context.Background(), term)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: reduction failed after %d steps: %v", testName, res.Steps, err)
	}

	// Bound variable names depend on the substitution history, compare up to renaming.
	if !lambda.AlphaEqual(res.Term, expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s",
			testName, inputStr, lambda.Canonical(expectedTerm), lambda.Canonical(res.Term))
	}

	// A normal form is a fixed point.
	if next, progressed := reduction.Step(res.Term); progressed || !lambda.Equal(next, res.Term) {
		t.Errorf("%s: normal form %s stepped to %s", testName, res.Term, next)
	}

	t.Logf("%s: %d steps, %d contractions, peak size %d in %v",
		testName, res.Steps, res.Contractions, res.PeakSize, elapsed)
}

func CheckLambdaDivergence(t *testing.T, testName string, inputStr string) {
	term, err := lambda.Parse(inputStr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	res, err := reduction.Reducer{
		MaxSteps: divergenceSteps,
		MaxSize:  divergenceSize,
	}.Reduce(context.Background(), term)
	switch {
	case errors.Is(err, reduction.ErrStepLimit), errors.Is(err, reduction.ErrSizeLimit):
		t.Logf("%s: stopped after %d steps at size %d: %v", testName, res.Steps, lambda.Size(res.Term), err)
	case err != nil:
		t.Fatalf("%s: unexpected error: %v", testName, err)
	default:
		t.Errorf("%s: reached normal form %s after %d steps", testName, res.Term, res.Steps)
	}
}
