// Package buildctx provides optional logging and timing for region
// operations, in the style of Recast's build context: a no-op by default,
// cheap to thread through call chains, and never required for correctness.
package buildctx

import (
	"fmt"
	"time"
)

// LogCategory classifies a logged message.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

func (c LogCategory) String() string {
	switch c {
	case LogProgress:
		return "PROGRESS"
	case LogWarning:
		return "WARNING"
	case LogError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// TimerLabel names a phase of region work that can be timed independently.
type TimerLabel int

const (
	TimerCombine TimerLabel = iota
	TimerCoalesce
	TimerCollapse
	numTimers
)

func (l TimerLabel) String() string {
	switch l {
	case TimerCombine:
		return "combine"
	case TimerCoalesce:
		return "coalesce"
	case TimerCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// Message is a single logged entry.
type Message struct {
	Category LogCategory
	Text     string
}

// Context tracks log messages and per-label accumulated durations for a
// sequence of region operations. The zero value has both logging and timing
// disabled; New returns one with both enabled, and EnableLog/EnableTimers
// turn either on or off.
//
// A Context is not safe for concurrent use; give each goroutine its own.
type Context struct {
	logEnabled   bool
	timerEnabled bool
	logDisabled  bool // set once EnableLog(false) is called, to distinguish from the zero value
	timerSet     bool

	messages []Message
	start    [numTimers]time.Time
	running  [numTimers]bool
	acc      [numTimers]time.Duration
}

// New returns a Context with logging and timers enabled.
func New() *Context {
	return &Context{logEnabled: true, timerEnabled: true}
}

// EnableLog turns logging on or off.
func (c *Context) EnableLog(state bool) {
	c.logEnabled = state
	c.logDisabled = !state
}

// EnableTimers turns the performance timers on or off.
func (c *Context) EnableTimers(state bool) {
	c.timerEnabled = state
	c.timerSet = true
}

// ResetLog discards all logged messages.
func (c *Context) ResetLog() {
	c.messages = c.messages[:0]
}

// Messages returns the log entries recorded so far, oldest first.
func (c *Context) Messages() []Message {
	return c.messages
}

func (c *Context) log(category LogCategory, format string, args ...interface{}) {
	if !c.logEnabled {
		return
	}
	c.messages = append(c.messages, Message{Category: category, Text: fmt.Sprintf(format, args...)})
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, args ...interface{}) { c.log(LogProgress, format, args...) }

// Warningf logs a warning message.
func (c *Context) Warningf(format string, args ...interface{}) { c.log(LogWarning, format, args...) }

// Errorf logs an error message.
func (c *Context) Errorf(format string, args ...interface{}) { c.log(LogError, format, args...) }

// ResetTimers clears all accumulated durations.
func (c *Context) ResetTimers() {
	for i := range c.acc {
		c.acc[i] = 0
		c.running[i] = false
	}
}

// StartTimer begins timing label. A no-op if timers are disabled or label is
// already running.
func (c *Context) StartTimer(label TimerLabel) {
	if !c.timerEnabled || c.running[label] {
		return
	}
	c.start[label] = time.Now()
	c.running[label] = true
}

// StopTimer accumulates the elapsed time since the matching StartTimer call.
// A no-op if timers are disabled or label isn't running.
func (c *Context) StopTimer(label TimerLabel) {
	if !c.timerEnabled || !c.running[label] {
		return
	}
	c.acc[label] += time.Since(c.start[label])
	c.running[label] = false
}

// AccumulatedTime returns the total time spent in label's Start/Stop
// brackets, or -1 if timers are disabled or the label was never started.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return -1
	}
	if c.acc[label] == 0 && !c.running[label] {
		return -1
	}
	return c.acc[label]
}

// DumpLog returns every logged message as one "[CATEGORY] text" line each,
// oldest first; callers with richer logging needs should read Messages()
// directly and format it themselves.
func (c *Context) DumpLog() string {
	var s string
	for _, m := range c.messages {
		s += fmt.Sprintf("[%s] %s\n", m.Category, m.Text)
	}
	return s
}
