package logs

import (
	"bytes"
	"context"
	"flag"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	if underSystemd() {
		t.Skip("terminal handler is disabled under systemd")
	}
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx, run := NewRun(context.Background())
		logger.InfoContext(ctx, "reduced", "steps", 5)
		line := buf.String()
		if !strings.Contains(line, "msg=reduced") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "logs.run="+string(run)) {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "steps=5") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestLevelFlags(t *testing.T) {
	if underSystemd() {
		t.Skip("terminal handler is disabled under systemd")
	}
	defer SetLevel(slog.LevelInfo)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"-log-warn"}); err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		logger.Warn("shown")
		out := buf.String()
		if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
			t.Fatalf("got %v", out)
		}
	})
}

func TestJournalKey(t *testing.T) {
	if got := journalKey("logs.run"); got != "LOGS_RUN" {
		t.Fatalf("got %s", got)
	}
}
