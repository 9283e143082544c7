package editwindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPolicyRejectsNegativeGrace(t *testing.T) {
	_, err := NewPolicy(-1)
	assert.Error(t, err)
}

func TestAllowOnEventDay(t *testing.T) {
	p, err := NewPolicy(1)
	require.NoError(t, err)

	eventDate := date(2026, time.March, 15)
	assert.True(t, p.Allow(eventDate, eventDate))
}

func TestAllowWithinAndPastGraceDay(t *testing.T) {
	p, err := NewPolicy(1)
	require.NoError(t, err)

	eventDate := date(2026, time.March, 15)

	// 2026-03-16 23:59 is still inside the one-day grace window
	assert.True(t, p.Allow(time.Date(2026, time.March, 16, 23, 59, 0, 0, time.UTC), eventDate))

	// 2026-03-17 00:01 is past it
	assert.False(t, p.Allow(time.Date(2026, time.March, 17, 0, 1, 0, 0, time.UTC), eventDate))
}

func TestAllowIsMonotonicallyFalseAfterDeadline(t *testing.T) {
	p, err := NewPolicy(2)
	require.NoError(t, err)

	eventDate := date(2026, time.June, 1)
	deadline := p.Deadline(eventDate)

	assert.True(t, p.Allow(deadline.Add(-time.Second), eventDate))
	assert.False(t, p.Allow(deadline, eventDate))
	for _, step := range []time.Duration{time.Minute, time.Hour, 24 * time.Hour, 30 * 24 * time.Hour} {
		assert.False(t, p.Allow(deadline.Add(step), eventDate))
	}
}

func TestZeroGraceEndsAtMidnightAfterEvent(t *testing.T) {
	p, err := NewPolicy(0)
	require.NoError(t, err)

	eventDate := date(2026, time.March, 15)
	assert.True(t, p.Allow(time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC), eventDate))
	assert.False(t, p.Allow(date(2026, time.March, 16), eventDate))
}
