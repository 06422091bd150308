// Package anim turns a reduction trace into a paced stream of diagram frames and
// sound cues for a presentation loop.
package anim

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/vic/lambdaviz/pkg/lambda"
	"github.com/vic/lambdaviz/pkg/tromp"
)

// DefaultCutoff is the number of runes of a printed term shown in a label.
const DefaultCutoff = 3000

// Cue marks moments a presentation loop may want to accompany with sound.
type Cue int

const (
	CueNone Cue = iota
	// CueReducing is sent once before the first frame.
	CueReducing
	// CueNormalForm is sent when the final term is about to be shown.
	CueNormalForm
)

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueReducing:
		return "reducing"
	case CueNormalForm:
		return "normal-form"
	default:
		return "unknown"
	}
}

// Frame is one picture of the animation.
type Frame struct {
	Index   int // position in the trace
	Term    lambda.Term
	Diagram tromp.Diagram
	Label   string
	Final   bool // the term is the normal form
}

// Event is either a cue (Cue != CueNone) or a frame.
type Event struct {
	Cue   Cue
	Frame Frame
}

type Options struct {
	Delay  time.Duration // pause before each frame; zero emits as fast as the reader consumes
	Cutoff int           // zero means DefaultCutoff
}

// Label prints term, truncated to cutoff runes with "...", followed by revealed.
func Label(term lambda.Term, cutoff int, revealed string) string {
	s := term.String()
	if lo.RuneLength(s) > cutoff {
		s = lo.Substring(s, 0, uint(cutoff)) + "..."
	}
	return s + revealed
}

// Play emits a cue, one frame per intermediate term of trace, then the final term once
// per revealed rune of result. The channel is closed when everything has been sent or
// ctx is done.
func Play(ctx context.Context, trace []lambda.Term, result string, opts Options) <-chan Event {
	events := make(chan Event)
	cutoff := opts.Cutoff
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}

	go func() {
		defer close(events)
		if len(trace) == 0 {
			return
		}

		var tick <-chan time.Time
		if opts.Delay > 0 {
			ticker := time.NewTicker(opts.Delay)
			defer ticker.Stop()
			tick = ticker.C
		}
		send := func(ev Event) bool {
			select {
			case events <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}
		wait := func() bool {
			if tick == nil {
				return ctx.Err() == nil
			}
			select {
			case <-tick:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send(Event{Cue: CueReducing}) {
			return
		}
		last := len(trace) - 1
		for i, term := range trace[:last] {
			if !wait() {
				return
			}
			if !send(Event{Frame: Frame{
				Index:   i,
				Term:    term,
				Diagram: tromp.Layout(term),
				Label:   Label(term, cutoff, ""),
			}}) {
				return
			}
		}

		final := trace[last]
		diagram := tromp.Layout(final)
		if !send(Event{Cue: CueNormalForm}) {
			return
		}
		runes := []rune(result)
		for n := min(1, len(runes)); n <= len(runes); n++ {
			if !wait() {
				return
			}
			if !send(Event{Frame: Frame{
				Index:   last,
				Term:    final,
				Diagram: diagram,
				Label:   Label(final, cutoff, string(runes[:n])),
				Final:   true,
			}}) {
				return
			}
		}
	}()

	return events
}
