package chip8

// DebugState is one of the three states of the Debugger's control FSM.
type DebugState int

const (
	// Run executes a tick every cycle, as if there were no debugger at all.
	Run DebugState = iota
	// Step executes exactly one tick, then falls back to Pause.
	Step
	// Pause executes no ticks; the driver idles.
	Pause
)

// Debugger wraps an Engine with a {Run, Step, Pause} finite state machine, driven by button
// clicks from the host UI and by the main loop's per-frame Tick call.
type Debugger struct {
	Engine *Engine
	State  DebugState
}

// NewDebugger wraps engine with a Debugger starting in Run (normal launch) or Pause (--debug).
func NewDebugger(engine *Engine, startPaused bool) *Debugger {
	d := &Debugger{Engine: engine, State: Run}
	if startPaused {
		d.State = Pause
	}
	return d
}

// OnPauseClicked handles a PAUSE button click: Run and Step both move to Pause; Pause is a no-op.
func (d *Debugger) OnPauseClicked() {
	if d.State == Run || d.State == Step {
		d.State = Pause
	}
}

// OnStepClicked handles a STEP button click: only valid from Pause, where it arms one tick.
func (d *Debugger) OnStepClicked() {
	if d.State == Pause {
		d.State = Step
	}
}

// OnRunClicked handles a RUN button click: Pause and Step both move to Run; Run is a no-op.
func (d *Debugger) OnRunClicked() {
	if d.State == Pause || d.State == Step {
		d.State = Run
	}
}

// Tick is called once per host frame. In Run it executes a tick every call. In Step it executes
// exactly one tick and then falls back to Pause. In Pause it executes nothing. ticked reports
// whether a tick actually ran, so the host knows whether to re-present the framebuffer.
func (d *Debugger) Tick(keys uint16) (ticked bool, err error) {
	switch d.State {
	case Run:
		err = d.Engine.Tick(keys)
		ticked = true
	case Step:
		err = d.Engine.Tick(keys)
		ticked = true
		d.State = Pause
	case Pause:
		// idle; the host is expected to sleep briefly before calling again.
	}
	return ticked, err
}
