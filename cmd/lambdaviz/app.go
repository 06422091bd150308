package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vic/lambdaviz/internal/config"
	"github.com/vic/lambdaviz/internal/logs"
	"github.com/vic/lambdaviz/internal/script"
	"github.com/vic/lambdaviz/pkg/anim"
	"github.com/vic/lambdaviz/pkg/ask"
	"github.com/vic/lambdaviz/pkg/church"
	"github.com/vic/lambdaviz/pkg/lambda"
	"github.com/vic/lambdaviz/pkg/quiz"
	"github.com/vic/lambdaviz/pkg/reduction"
	"github.com/vic/lambdaviz/pkg/tromp"
)

type options struct {
	expr     string
	term     string
	question string
	trace    bool
	svgDir   string
	play     bool
	quiz     bool
	script   string
}

type app struct {
	logger   logs.Logger
	settings config.Settings
	reducer  reduction.Reducer
	stats    *reduction.Stats
	client   *ask.Client
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func (a *app) run(ctx context.Context, opts options) error {
	ctx, run := logs.NewRun(ctx)
	a.logger.DebugContext(ctx, "run", "id", run)

	switch {
	case opts.script != "":
		return a.runScript(ctx, opts.script)
	case opts.quiz:
		return a.runQuiz(ctx)
	}

	term, expr, err := a.input(ctx, opts)
	if err != nil {
		return err
	}
	return a.reduce(ctx, term, expr, opts)
}

// input returns the term to reduce and, when it came from arithmetic, the normalized
// expression.
func (a *app) input(ctx context.Context, opts options) (lambda.Term, string, error) {
	if opts.term != "" {
		term, err := lambda.Parse(opts.term)
		return term, "", err
	}

	expr := opts.expr
	if expr == "" {
		question := opts.question
		if question == "" {
			content, err := io.ReadAll(a.stdin)
			if err != nil {
				return nil, "", fmt.Errorf("read question: %w", err)
			}
			question = strings.TrimSpace(string(content))
		}
		if question == "" {
			return nil, "", errors.New("no question, expression or term given")
		}
		var err error
		expr, err = a.client.Translate(ctx, question)
		if err != nil {
			return nil, "", err
		}
	}
	expr = church.Normalize(expr)
	a.logger.InfoContext(ctx, "expression", "expr", expr)

	// x / 0 has no normal form, refuse it before reducing
	if _, err := church.Eval(expr); errors.Is(err, church.ErrDivisionByZero) {
		return nil, "", fmt.Errorf("%s: %w", expr, err)
	}
	term, err := church.Compile(expr)
	if err != nil {
		return nil, "", fmt.Errorf("compile %q: %w", expr, err)
	}
	return term, expr, nil
}

func (a *app) reduce(ctx context.Context, term lambda.Term, expr string, opts options) error {
	r := a.reducer
	r.KeepTrace = opts.trace || opts.svgDir != "" || opts.play

	start := time.Now()
	res, err := r.Reduce(ctx, term)
	elapsed := time.Since(start)
	if err != nil {
		a.logger.ErrorContext(ctx, "reduction stopped",
			"steps", res.Steps,
			"peak_size", res.PeakSize,
			"error", err,
		)
		return err
	}

	if opts.trace {
		for i, t := range res.Trace {
			fmt.Fprintf(a.stdout, "%4d  %s\n", i, t)
		}
	}
	fmt.Fprintln(a.stdout, res.Term)

	result := ""
	if expr != "" {
		n := church.Unchurch(res.Term)
		result = fmt.Sprintf(" = %d", n)
		fmt.Fprintf(a.stdout, "%s%s\n", expr, result)
		if want, err := church.Eval(expr); err == nil && want != n {
			a.logger.WarnContext(ctx, "numeral disagrees with integer evaluation",
				"expr", expr,
				"numeral", n,
				"integer", want,
			)
		}
	}

	if opts.play {
		if err := a.play(ctx, res.Trace, result); err != nil {
			return err
		}
	}

	if opts.svgDir != "" {
		if err := a.writeFrames(ctx, opts.svgDir, res.Trace, result); err != nil {
			return err
		}
	}

	a.printStats(res, elapsed)
	return nil
}

// play prints the label of every animation frame, one per line, paced by the configured
// frame delay.
func (a *app) play(ctx context.Context, trace []lambda.Term, result string) error {
	opts := anim.Options{
		Delay:  a.settings.FrameDelay,
		Cutoff: a.settings.TextCutoff,
	}
	for ev := range anim.Play(ctx, trace, result, opts) {
		if ev.Cue != anim.CueNone {
			a.logger.DebugContext(ctx, "cue", "cue", ev.Cue)
			continue
		}
		fmt.Fprintln(a.stdout, ev.Frame.Label)
	}
	return ctx.Err()
}

func (a *app) writeFrames(ctx context.Context, dir string, trace []lambda.Term, result string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var frames int
	for ev := range anim.Play(ctx, trace, result, anim.Options{Cutoff: a.settings.TextCutoff}) {
		if ev.Cue != anim.CueNone {
			a.logger.DebugContext(ctx, "cue", "cue", ev.Cue)
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.svg", frames))
		if err := writeSVG(path, ev.Frame); err != nil {
			return err
		}
		frames++
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "frames written", "dir", dir, "count", frames)
	return nil
}

func writeSVG(path string, frame anim.Frame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	opts := tromp.SVGOptions{Label: frame.Label}
	if frame.Final {
		opts.Stroke = "steelblue"
	}
	return tromp.WriteSVG(f, frame.Diagram, opts)
}

func (a *app) printStats(res reduction.Result, elapsed time.Duration) {
	seconds := elapsed.Seconds()
	fmt.Fprintf(a.stderr, "\nStats:\n")
	fmt.Fprintf(a.stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(a.stderr, "Steps: %d\n", res.Steps)
	fmt.Fprintf(a.stderr, "Contractions: %d", res.Contractions)
	if seconds > 0 {
		fmt.Fprintf(a.stderr, " (%.2f ops/sec)", float64(res.Contractions)/seconds)
	}
	fmt.Fprintf(a.stderr, "\n")
	fmt.Fprintf(a.stderr, "Peak size: %d\n", res.PeakSize)
}

func (a *app) runScript(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	runner := script.Runner{
		Reducer: a.reducer,
		Output:  a.stdout,
	}
	if _, err := runner.Run(ctx, path, src); err != nil {
		return err
	}
	snap := a.stats.Snapshot()
	a.logger.InfoContext(ctx, "script done",
		"reductions", snap.Runs,
		"steps", snap.Steps,
	)
	return nil
}

func (a *app) runQuiz(ctx context.Context) error {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	p, err := quiz.Generate(ctx, rng, quiz.Options{
		MaxDepth: a.settings.QuizDepth,
		MinSteps: 1,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Reduce: %s\n> ", p.Term)

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	ok, err := p.Check(line)
	if err != nil {
		fmt.Fprintf(a.stdout, "Not a term: %v\n", err)
	}
	if ok {
		fmt.Fprintf(a.stdout, "Correct, %d steps.\n", p.Steps)
	} else {
		fmt.Fprintf(a.stdout, "The normal form is %s (%d steps).\n", p.Normal, p.Steps)
	}
	return nil
}
