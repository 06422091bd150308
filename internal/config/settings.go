package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"

	"github.com/vic/lambdaviz/pkg/anim"
	"github.com/vic/lambdaviz/pkg/quiz"
	"github.com/vic/lambdaviz/pkg/reduction"
)

//go:embed schema.cue
var Schema string

const (
	DefaultEndpoint   = "http://localhost:11434/v1"
	DefaultModel      = "llama3:latest"
	DefaultFrameDelay = 150 * time.Millisecond
)

type Settings struct {
	Model      string
	Endpoint   string
	APIKey     string
	ProxyAddr  string
	MaxSteps   int
	MaxSize    int
	FrameDelay time.Duration
	TextCutoff int
	QuizDepth  int
}

// Load reads every setting, falling back to the environment and then to defaults.
func Load(loader Loader) Settings {
	delay := DefaultFrameDelay
	if ms, err := firstInt(loader, "frame_delay_ms"); err == nil {
		delay = time.Duration(ms) * time.Millisecond
	} else if !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}

	return Settings{
		Model: lo.CoalesceOrEmpty(
			First[string](loader, "model"),
			os.Getenv("LAMBDAVIZ_MODEL"),
			DefaultModel,
		),
		Endpoint: lo.CoalesceOrEmpty(
			First[string](loader, "endpoint"),
			os.Getenv("LAMBDAVIZ_ENDPOINT"),
			DefaultEndpoint,
		),
		APIKey: lo.CoalesceOrEmpty(
			First[string](loader, "api_key"),
			os.Getenv("OPENAI_API_KEY"),
		),
		ProxyAddr:  First[string](loader, "proxy_addr"),
		MaxSteps:   lo.CoalesceOrEmpty(First[int](loader, "max_steps"), reduction.DefaultMaxSteps),
		MaxSize:    lo.CoalesceOrEmpty(First[int](loader, "max_size"), reduction.DefaultMaxSize),
		FrameDelay: delay,
		TextCutoff: lo.CoalesceOrEmpty(First[int](loader, "text_cutoff"), anim.DefaultCutoff),
		QuizDepth:  lo.CoalesceOrEmpty(First[int](loader, "quiz_depth"), quiz.DefaultMaxDepth),
	}
}

// frame_delay_ms may legitimately be zero, so it cannot go through CoalesceOrEmpty.
func firstInt(loader Loader, path string) (int, error) {
	var v int
	err := loader.AssignFirst(path, &v)
	return v, err
}

// Validate reports every out-of-range setting.
func (s Settings) Validate() error {
	var errs []error
	if s.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("max_steps must be positive, got %d", s.MaxSteps))
	}
	if s.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("max_size must be positive, got %d", s.MaxSize))
	}
	if s.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame delay must not be negative, got %v", s.FrameDelay))
	}
	if s.TextCutoff <= 0 {
		errs = append(errs, fmt.Errorf("text_cutoff must be positive, got %d", s.TextCutoff))
	}
	if s.Endpoint == "" {
		errs = append(errs, errors.New("endpoint is empty"))
	}
	return errors.Join(errs...)
}

// Discover returns the configuration files that exist in the working directory and
// the user config directory, in that order.
func Discover() []string {
	filenames := []string{
		"lambdaviz.cue",
		".lambdaviz.cue",
	}
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}
