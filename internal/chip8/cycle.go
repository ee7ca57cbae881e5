package chip8

import (
	"math/rand"
	"time"
)

// Engine is the cycle driver: it owns the VM State, Framebuffer, and Keypad exclusively during
// a Tick, performs one fetch-decode-execute, and advances the 60Hz timers against wall time.
type Engine struct {
	State  *State
	FB     *Framebuffer
	Keypad *Keypad

	// LegacyShift selects the legacy Vy-sourced SHR/SHL quirk instead of the modern default.
	LegacyShift bool

	// ShutdownRequested is checked at the top of every Tick; once set, the driver is expected
	// to stop calling Tick at the next cycle boundary rather than mid-instruction.
	ShutdownRequested bool

	// SoundBeep pulses (non-blocking) the instant the sound timer is about to expire, so a host
	// audio goroutine can trigger a tone that naturally ends around when ST reaches zero.
	SoundBeep chan struct{}

	timers   Timers
	rng      *rand.Rand
	lastTick time.Time
	dirty    bool
}

// NewEngine builds a cycle driver around a freshly loaded State with its own Framebuffer,
// Keypad and random source.
func NewEngine(s *State) *Engine {
	return &Engine{
		State:     s,
		FB:        &Framebuffer{},
		Keypad:    &Keypad{},
		SoundBeep: make(chan struct{}, 1),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		lastTick:  time.Now(),
	}
}

// Dirty reports whether the last Tick performed a CLS or DRW, i.e. whether the host should
// re-present the framebuffer.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// Tick performs one fetch-decode-execute cycle: samples the keypad snapshot, advances timers by
// elapsed wall time, fetches the opcode at PC, advances PC by 2, decodes, executes, and updates
// the dirty flag. Errors (illegal instruction, stack over/underflow, out-of-bounds memory
// access, invalid sprite height) are fatal and returned to the caller without partial repair.
func (e *Engine) Tick(keys uint16) error {
	if e.ShutdownRequested {
		return nil
	}

	e.Keypad.SetKeys(keys)

	now := time.Now()
	e.timers.Advance(e.State, now.Sub(e.lastTick))
	e.lastTick = now

	if e.State.ST == 1 {
		select {
		case e.SoundBeep <- struct{}{}:
		default:
		}
	}

	s := e.State
	if !s.PCValid() {
		return &MemoryOutOfBoundsError{Addr: uint32(s.PC)}
	}

	fetchPC := s.PC
	op := uint16(s.Memory[s.PC])<<8 | uint16(s.Memory[s.PC+1])
	s.Opcode = op
	s.PC += 2

	instr := Decode(op)
	if instr.Op == OpInvalid {
		return &IllegalInstructionError{Op: op, PC: fetchPC}
	}

	e.dirty = instr.Op == OpCLS || instr.Op == OpDRW

	return Execute(s, e.FB, e.Keypad, e.rng, e.LegacyShift, instr)
}
