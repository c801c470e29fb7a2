// Package runctx provides the pipeline's build/run logger and timer,
// grounded on recast.Context / recast.BuildContext (arl-go-detour's
// context.go, buildcontext.go): an optionally-enabled message log plus a
// set of named accumulating timers, with no external logging framework.
package runctx

import (
	"fmt"
	"time"
)

// LogCategory classifies a logged message.
type LogCategory int

const (
	// Progress reports forward progress through a pipeline stage.
	Progress LogCategory = iota
	// Warning reports a recoverable anomaly (e.g. an all-NaN ray).
	Warning
	// Error reports a condition the caller should know about even though
	// the run completed.
	Error
)

func (c LogCategory) String() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	case Error:
		return "ERR"
	default:
		return "?"
	}
}

// TimerLabel names one of the pipeline's accumulating timers.
type TimerLabel int

const (
	TimerExtract TimerLabel = iota
	TimerVisibility
	TimerRoads
	TimerScore
	TimerTotal

	timerCount
)

func (l TimerLabel) String() string {
	switch l {
	case TimerExtract:
		return "extract"
	case TimerVisibility:
		return "visibility"
	case TimerRoads:
		return "roads"
	case TimerScore:
		return "score"
	case TimerTotal:
		return "total"
	default:
		return "unknown"
	}
}

// Message is one recorded log entry.
type Message struct {
	Category LogCategory
	Text     string
}

// RunContext accumulates log messages and per-stage timings for a single
// pipeline invocation. The zero value is not usable; construct with New.
type RunContext struct {
	logEnabled   bool
	timerEnabled bool

	messages []Message

	start   [timerCount]time.Time
	running [timerCount]bool
	accum   [timerCount]time.Duration
}

// New constructs a RunContext. When enabled is false, logging and timing
// calls are no-ops, matching the teacher's Context(state bool) contract.
func New(enabled bool) *RunContext {
	return &RunContext{logEnabled: enabled, timerEnabled: enabled}
}

// Progressf records a progress message.
func (c *RunContext) Progressf(format string, v ...interface{}) { c.log(Progress, format, v...) }

// Warningf records a warning message.
func (c *RunContext) Warningf(format string, v ...interface{}) { c.log(Warning, format, v...) }

// Errorf records an error message. It does not itself abort the run; the
// caller decides whether the condition is fatal.
func (c *RunContext) Errorf(format string, v ...interface{}) { c.log(Error, format, v...) }

func (c *RunContext) log(cat LogCategory, format string, v ...interface{}) {
	if !c.logEnabled {
		return
	}
	c.messages = append(c.messages, Message{Category: cat, Text: fmt.Sprintf(format, v...)})
}

// Messages returns the accumulated log, in the order recorded.
func (c *RunContext) Messages() []Message {
	return c.messages
}

// StartTimer starts (or resumes accumulating into) the named timer.
func (c *RunContext) StartTimer(label TimerLabel) {
	if !c.timerEnabled {
		return
	}
	c.start[label] = time.Now()
	c.running[label] = true
}

// StopTimer stops the named timer and adds the elapsed time to its total.
func (c *RunContext) StopTimer(label TimerLabel) {
	if !c.timerEnabled || !c.running[label] {
		return
	}
	c.accum[label] += time.Since(c.start[label])
	c.running[label] = false
}

// Elapsed returns the accumulated duration for label, or 0 if timers are
// disabled or the timer was never started.
func (c *RunContext) Elapsed(label TimerLabel) time.Duration {
	return c.accum[label]
}
