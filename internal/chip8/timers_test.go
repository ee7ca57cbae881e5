package chip8

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimersDecrementAtSixtyHertz(t *testing.T) {
	s := &State{DT: 5, ST: 2}
	var tm Timers

	tm.Advance(s, timerInterval*3)
	require.EqualValues(t, 2, s.DT)
	require.EqualValues(t, 0, s.ST, "ST saturates at zero instead of wrapping negative")
}

func TestTimersDoNotDecrementBeforeAnIntervalElapses(t *testing.T) {
	s := &State{DT: 5}
	var tm Timers

	tm.Advance(s, timerInterval/2)
	require.EqualValues(t, 5, s.DT)
}

func TestTimersAccumulatePartialIntervalsAcrossCalls(t *testing.T) {
	s := &State{DT: 5}
	var tm Timers

	tm.Advance(s, timerInterval/2)
	tm.Advance(s, timerInterval/2+time.Nanosecond)
	require.EqualValues(t, 4, s.DT)
}
