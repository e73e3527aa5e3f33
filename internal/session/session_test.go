package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wpmtest/internal/diff"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(target ...string) (*Session, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	return New(target, WithClock(clock.now)), clock
}

func applyAll(s *Session, keys []Key) {
	for _, k := range keys {
		s.Apply(k)
	}
}

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	typed := len(s.Typed())
	assert.GreaterOrEqual(t, typed, 0)
	assert.LessOrEqual(t, typed, len(s.Target()))
	if s.Phase() == Completed {
		assert.Empty(t, s.Current())
	}
}

func TestFirstKeyStartsClock(t *testing.T) {
	s, clock := newTestSession("the", "cat")
	assert.Equal(t, NotStarted, s.Phase())
	_, ok := s.StartedAt()
	assert.False(t, ok)

	start := clock.t
	s.Apply(Append('t'))
	assert.Equal(t, InProgress, s.Phase())
	got, ok := s.StartedAt()
	require.True(t, ok)
	assert.Equal(t, start, got)

	clock.advance(time.Second)
	s.Apply(Append('h'))
	got, _ = s.StartedAt()
	assert.Equal(t, start, got, "start instant must not move")
}

func TestBackspaceFloor(t *testing.T) {
	s, _ := newTestSession("the", "cat")
	applyAll(s, Type("the "))
	for i := 0; i < 5; i++ {
		assert.False(t, s.Apply(Backspace()))
	}
	assert.Equal(t, []string{"the"}, s.Typed())
	assert.Equal(t, "", s.Current())

	applyAll(s, Type("cx"))
	assert.True(t, s.Apply(Backspace()))
	assert.Equal(t, "c", s.Current())
	checkInvariants(t, s)
}

func TestBackspaceBeforeStart(t *testing.T) {
	s, _ := newTestSession("a")
	assert.False(t, s.Apply(Backspace()))
	assert.Equal(t, NotStarted, s.Phase())
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	s, _ := newTestSession("naïve")
	applyAll(s, Type("naï"))
	s.Apply(Backspace())
	assert.Equal(t, "na", s.Current())
}

func TestCompletionTrigger(t *testing.T) {
	s, _ := newTestSession("the", "cat")
	keys := Type("the cat")
	applyAll(s, keys)
	assert.Equal(t, InProgress, s.Phase(), "final word is not sealed yet")
	checkInvariants(t, s)

	s.Apply(Boundary())
	assert.Equal(t, Completed, s.Phase())
	assert.Equal(t, []string{"the", "cat"}, s.Typed())
	checkInvariants(t, s)

	assert.False(t, s.Apply(Append('x')), "completed sessions ignore input")
	assert.False(t, s.Apply(Cancel()))
	assert.Equal(t, Completed, s.Phase())
}

func TestEmptyBoundarySealsWord(t *testing.T) {
	s, _ := newTestSession("one", "two")
	s.Apply(Boundary())
	assert.Equal(t, InProgress, s.Phase())
	assert.Equal(t, []string{""}, s.Typed())
	_, ok := s.StartedAt()
	assert.True(t, ok)

	s.Apply(Boundary())
	assert.Equal(t, Completed, s.Phase())
	assert.Equal(t, []string{"", ""}, s.Typed())
}

func TestFinalWordContentIsSealed(t *testing.T) {
	s, _ := newTestSession("cat")
	applyAll(s, Type("cats "))
	require.Equal(t, Completed, s.Phase())
	assert.Equal(t, []string{"cats"}, s.Typed())
}

func TestCancel(t *testing.T) {
	s, _ := newTestSession("cat", "dog")
	s.Apply(Cancel())
	assert.Equal(t, Cancelled, s.Phase())

	s, _ = newTestSession("cat", "dog")
	applyAll(s, Type("ca"))
	s.Apply(Cancel())
	assert.Equal(t, Cancelled, s.Phase())
	assert.False(t, s.Apply(Append('t')))
	assert.Equal(t, "ca", s.Current())
	assert.True(t, s.Phase().Done())
}

func TestEmptyTargetIsCompleted(t *testing.T) {
	s, _ := newTestSession()
	assert.Equal(t, Completed, s.Phase())
	assert.Empty(t, s.View())
	_, err := s.WPM()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestWPMScenario(t *testing.T) {
	s, clock := newTestSession("the", "cat")
	applyAll(s, Type("the ca"))
	clock.advance(12 * time.Second)
	applyAll(s, Type("t "))

	require.Equal(t, Completed, s.Phase())
	wpm, err := s.WPM()
	require.NoError(t, err)
	assert.InDelta(t, 6.0, wpm, 1e-9)
	assert.Equal(t, 12*time.Second, s.Elapsed())
}

func TestWPMGuards(t *testing.T) {
	s, _ := newTestSession("the", "cat")
	_, err := s.WPM()
	assert.ErrorIs(t, err, ErrNotStarted)

	applyAll(s, Type("th"))
	_, err = s.WPM()
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = s.Result()
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestElapsedFrozenAtCompletion(t *testing.T) {
	s, clock := newTestSession("a")
	s.Apply(Append('a'))
	clock.advance(3 * time.Second)
	s.Apply(Boundary())
	clock.advance(time.Hour)
	assert.Equal(t, 3*time.Second, s.Elapsed())
}

func TestLiveWPM(t *testing.T) {
	s, clock := newTestSession("hello", "world")
	assert.Zero(t, s.LiveWPM())
	applyAll(s, Type("hello wor"))
	clock.advance(6 * time.Second)
	// 8 chars in 0.1 minute
	assert.InDelta(t, 16.0, s.LiveWPM(), 1e-9)
}

func TestViewRoles(t *testing.T) {
	s, _ := newTestSession("the", "cat", "sat")
	applyAll(s, Type("th ca"))
	views := s.View()
	require.Len(t, views, 3)

	assert.Equal(t, diff.Sealed, views[0].Role)
	assert.Equal(t, []diff.Run{
		{Class: diff.Correct, Text: "th", Start: 0, End: 2},
		{Class: diff.Extra, Text: "e", Start: 2, End: 3},
	}, views[0].Runs)

	assert.Equal(t, diff.Active, views[1].Role)
	assert.Equal(t, []diff.Run{
		{Class: diff.Correct, Text: "ca", Start: 0, End: 2},
		{Class: diff.Missing, Text: "t", Start: 2, End: 3},
	}, views[1].Runs)

	assert.Equal(t, diff.Pending, views[2].Role)
	assert.Equal(t, []diff.Run{{Class: diff.Missing, Text: "sat", Start: 0, End: 3}}, views[2].Runs)
}

func TestViewAfterCompletionHasNoActiveWord(t *testing.T) {
	s, _ := newTestSession("a", "b")
	applyAll(s, Type("a b "))
	for _, v := range s.View() {
		assert.Equal(t, diff.Sealed, v.Role)
	}
}

func TestViewIsReadOnly(t *testing.T) {
	s, _ := newTestSession("the", "cat")
	applyAll(s, Type("the c"))
	before := s.View()
	for i := 0; i < 3; i++ {
		s.View()
	}
	assert.Equal(t, before, s.View())
	assert.Equal(t, "c", s.Current())
	assert.Equal(t, []string{"the"}, s.Typed())
}

func TestResult(t *testing.T) {
	s, clock := newTestSession("the", "cat")
	s.Apply(Append('t'))
	applyAll(s, Type("he "))
	clock.advance(6 * time.Second)
	applyAll(s, Type("cot"))
	clock.advance(6 * time.Second)
	s.Apply(Boundary())

	res, err := s.Result()
	require.NoError(t, err)
	assert.InDelta(t, 6.0, res.WPM, 1e-9)
	assert.Equal(t, 6, res.Chars)
	assert.Equal(t, 2, res.Words)
	assert.Equal(t, 1, res.CorrectWords)
	assert.InDelta(t, 5.0/6.0, res.Accuracy, 1e-9)
	require.Len(t, res.PerWordWPM, 2)
	assert.Zero(t, res.PerWordWPM[0], "first word sealed at the start instant")
	assert.InDelta(t, 6.0, res.PerWordWPM[1], 1e-9)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}

func TestMarks(t *testing.T) {
	s, clock := newTestSession("a", "b", "c")
	applyAll(s, Type("a "))
	clock.advance(time.Second)
	applyAll(s, Type("b "))
	marks := s.Marks()
	require.Len(t, marks, 2)
	assert.Equal(t, time.Second, marks[1].Sub(marks[0]))
}
