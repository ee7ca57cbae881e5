package chip8

import "time"

const timerInterval = time.Second / ticksPerSecond60

// Timers advances the 60Hz delay/sound countdown independently of the CPU tick rate. It tracks
// a monotonic accumulator of elapsed wall time and saturate-subtracts from DT/ST one step per
// 1/60s that has elapsed, so a slow or fast CPU clock never changes how quickly DT/ST count down.
type Timers struct {
	accumulated time.Duration
}

// Advance steps s.DT and s.ST down by as many 1/60s increments as elapsed covers. It must never
// reset DT/ST to zero outright - only ever decrement by one per elapsed interval while positive.
func (t *Timers) Advance(s *State, elapsed time.Duration) {
	t.accumulated += elapsed

	for t.accumulated >= timerInterval {
		t.accumulated -= timerInterval
		if s.DT > 0 {
			s.DT--
		}
		if s.ST > 0 {
			s.ST--
		}
	}
}
