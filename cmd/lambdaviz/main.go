package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"

	"github.com/vic/lambdaviz/internal/config"
	"github.com/vic/lambdaviz/internal/logs"
	"github.com/vic/lambdaviz/pkg/ask"
	"github.com/vic/lambdaviz/pkg/reduction"
)

type configPaths []string

func (c *configPaths) String() string {
	return strings.Join(*c, ",")
}

func (c *configPaths) Set(path string) error {
	*c = append(*c, path)
	return nil
}

func main() {
	var opts options
	var paths configPaths
	flag.StringVar(&opts.expr, "expr", "", "arithmetic expression to compile, bypassing the model")
	flag.StringVar(&opts.term, "term", "", "lambda term to reduce, bypassing the compiler")
	flag.BoolVar(&opts.trace, "trace", false, "print every intermediate term")
	flag.StringVar(&opts.svgDir, "svg", "", "write one SVG per animation frame into this directory")
	flag.BoolVar(&opts.play, "play", false, "print the animation frame by frame, paced by frame_delay_ms")
	flag.BoolVar(&opts.quiz, "quiz", false, "play one quiz round, reading the answer from stdin")
	flag.StringVar(&opts.script, "script", "", "run a Starlark script")
	flag.Var(&paths, "config", "CUE configuration file, may be repeated")
	logs.RegisterFlags(flag.CommandLine)
	flag.Parse()
	opts.question = strings.Join(flag.Args(), " ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := config.NewLoader(append(paths, config.Discover()...), config.Schema)
	loaded, err := loader.Paths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	scope := dscope.New(
		new(Module),
		dscope.Provide(loader),
	)

	scope.Call(func(
		logger logs.Logger,
		settings config.Settings,
		reducer reduction.Reducer,
		stats *reduction.Stats,
		client *ask.Client,
	) {
		if len(loaded) > 0 {
			logger.Info("config file", "paths", loaded)
		}
		if err = settings.Validate(); err != nil {
			return
		}
		a := &app{
			logger:   logger,
			settings: settings,
			reducer:  reducer,
			stats:    stats,
			client:   client,
			stdin:    os.Stdin,
			stdout:   os.Stdout,
			stderr:   os.Stderr,
		}
		err = a.run(ctx, opts)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
