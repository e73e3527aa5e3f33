// Package session implements the typing-test state machine.
//
// A Session owns the target words, the sealed words typed so far and the
// in-progress buffer. Key events are applied synchronously; View and the
// metric accessors never mutate state. A Session is not safe for concurrent
// use: callers serialize Apply and View on one goroutine (the Bubble Tea
// update loop does this).
package session

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/wpmtest/internal/diff"
	"github.com/verte-zerg/wpmtest/internal/model"
	"github.com/verte-zerg/wpmtest/internal/stats"
)

var (
	// ErrNotStarted is returned by metrics when no key was ever processed.
	ErrNotStarted = errors.New("session has not started")
	// ErrNotCompleted is returned by final metrics before the last word is sealed.
	ErrNotCompleted = errors.New("session has not completed")
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Completed
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Done reports whether the phase is terminal.
func (p Phase) Done() bool {
	return p == Completed || p == Cancelled
}

// WordView is the render-ready state of one target slot.
type WordView struct {
	Index  int
	Target string
	Role   diff.Role
	Runs   []diff.Run
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session holds the state of one typing test.
type Session struct {
	target  []string
	typed   []string
	current []rune
	phase   Phase

	started   bool
	startedAt time.Time
	endedAt   time.Time
	// marks[i] is when typed[i] was sealed.
	marks []time.Time

	now func() time.Time
}

// New creates a session over target. An empty target is already Completed.
func New(target []string, opts ...Option) *Session {
	s := &Session{
		target: append([]string(nil), target...),
		typed:  make([]string, 0, len(target)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.target) == 0 {
		s.phase = Completed
	}
	return s
}

// Apply processes one key event and reports whether state changed.
// Events after Completed or Cancelled are ignored.
func (s *Session) Apply(k Key) bool {
	if s.phase.Done() {
		return false
	}
	switch k.Kind {
	case KeyCancel:
		s.phase = Cancelled
		return true
	case KeyAppend:
		s.start()
		s.current = append(s.current, k.Rune)
		return true
	case KeyBackspace:
		if len(s.current) == 0 {
			return false
		}
		s.current = s.current[:len(s.current)-1]
		return true
	case KeyBoundary:
		s.start()
		s.seal()
		return true
	default:
		return false
	}
}

func (s *Session) start() {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.now()
	s.phase = InProgress
}

// seal moves the buffer into typed, even when the buffer is empty.
func (s *Session) seal() {
	at := s.now()
	s.typed = append(s.typed, string(s.current))
	s.marks = append(s.marks, at)
	s.current = s.current[:0]
	if len(s.typed) == len(s.target) {
		s.phase = Completed
		s.endedAt = at
	}
}

// View classifies every target slot for rendering.
func (s *Session) View() []WordView {
	views := make([]WordView, len(s.target))
	active := len(s.typed)
	for i, word := range s.target {
		role := diff.Pending
		observed := ""
		switch {
		case i < active:
			role = diff.Sealed
			observed = s.typed[i]
		case i == active && s.phase != Completed:
			role = diff.Active
			observed = string(s.current)
		}
		views[i] = WordView{
			Index:  i,
			Target: word,
			Role:   role,
			Runs:   diff.ClassifyRuns(word, observed, role),
		}
	}
	return views
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Target returns a copy of the target words.
func (s *Session) Target() []string {
	return append([]string(nil), s.target...)
}

// Typed returns a copy of the sealed words.
func (s *Session) Typed() []string {
	return append([]string(nil), s.typed...)
}

// Current returns the in-progress buffer.
func (s *Session) Current() string {
	return string(s.current)
}

// StartedAt returns the first-key instant, if any.
func (s *Session) StartedAt() (time.Time, bool) {
	return s.startedAt, s.started
}

// EndedAt returns the completion instant, if completed.
func (s *Session) EndedAt() (time.Time, bool) {
	return s.endedAt, s.phase == Completed && s.started
}

// Marks returns the instant each sealed word was submitted.
func (s *Session) Marks() []time.Time {
	return append([]time.Time(nil), s.marks...)
}

// Elapsed is the time since the first key, frozen at completion.
func (s *Session) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	if s.phase == Completed {
		return s.endedAt.Sub(s.startedAt)
	}
	return s.now().Sub(s.startedAt)
}

// Progress is the fraction of target words sealed.
func (s *Session) Progress() float64 {
	if len(s.target) == 0 {
		return 1
	}
	return float64(len(s.typed)) / float64(len(s.target))
}

// WPM is the final words-per-minute over all sealed characters.
func (s *Session) WPM() (float64, error) {
	if !s.started {
		return 0, ErrNotStarted
	}
	if s.phase != Completed {
		return 0, ErrNotCompleted
	}
	return stats.WPM(s.typedChars(len(s.typed)), s.Elapsed()), nil
}

// LiveWPM estimates WPM mid-test, counting the in-progress buffer.
func (s *Session) LiveWPM() float64 {
	if !s.started {
		return 0
	}
	return stats.WPM(s.typedChars(len(s.typed))+len(s.current), s.Elapsed())
}

// Result summarizes a completed session.
func (s *Session) Result() (model.Result, error) {
	wpm, err := s.WPM()
	if err != nil {
		return model.Result{}, err
	}
	res := model.Result{
		StartedAt:  s.startedAt,
		EndedAt:    s.endedAt,
		Elapsed:    s.Elapsed(),
		WPM:        wpm,
		Chars:      s.typedChars(len(s.typed)),
		Words:      len(s.typed),
		PerWordWPM: make([]float64, len(s.marks)),
	}
	var correct, total int
	for i, typed := range s.typed {
		counts := diff.Count(diff.Classify(s.target[i], typed, diff.Sealed))
		for _, n := range counts {
			total += n
		}
		correct += counts[diff.Correct]
		if typed == s.target[i] {
			res.CorrectWords++
		}
	}
	if total > 0 {
		res.Accuracy = float64(correct) / float64(total)
	}
	for i, mark := range s.marks {
		res.PerWordWPM[i] = stats.WPM(s.typedChars(i+1), mark.Sub(s.startedAt))
	}
	return res, nil
}

func (s *Session) typedChars(n int) int {
	total := 0
	for _, w := range s.typed[:n] {
		total += utf8.RuneCountInString(w)
	}
	return total
}
