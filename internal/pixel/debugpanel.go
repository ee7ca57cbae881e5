package pixel

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/bradford-hamilton/chippy/internal/chip8"
)

// Button identifies one of the three debugger control buttons the panel draws.
type Button int

// The three buttons the debug panel exposes, in one row near the top of the panel,
// left-to-right: Pause, Step, Run.
const (
	ButtonNone Button = iota
	ButtonPause
	ButtonStep
	ButtonRun
)

const (
	buttonSize = 28.0
	buttonGap  = 10.0
)

// DebugPanel renders PC/I/DT/ST/SP/opcode/registers/stack/disassembly alongside the framebuffer,
// plus RUN/STEP/PAUSE buttons wired to a *chip8.Debugger's state transitions.
type DebugPanel struct {
	origin pixel.Vec
	txt    *text.Text
	pause  pixel.Rect
	step   pixel.Rect
	run    pixel.Rect
}

// NewDebugPanel builds a panel anchored at the top-left of the debug strip, which begins at
// screenWidth and is DebugPanelWidth wide.
func NewDebugPanel() *DebugPanel {
	origin := pixel.V(screenWidth+12, screenHeight-24)
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	buttonY := screenHeight - 20
	pause := pixel.R(screenWidth+12, buttonY-buttonSize, screenWidth+12+buttonSize, buttonY)
	step := pixel.R(pause.Max.X+buttonGap, buttonY-buttonSize, pause.Max.X+buttonGap+buttonSize, buttonY)
	run := pixel.R(step.Max.X+buttonGap, buttonY-buttonSize, step.Max.X+buttonGap+buttonSize, buttonY)

	return &DebugPanel{
		origin: origin,
		txt:    text.New(origin, atlas),
		pause:  pause,
		step:   step,
		run:    run,
	}
}

// HitTest returns which button (if any) contains pos, for the host's mouse-click handler to
// translate into Debugger.OnPauseClicked / OnStepClicked / OnRunClicked calls.
func (p *DebugPanel) HitTest(pos pixel.Vec) Button {
	switch {
	case p.pause.Contains(pos):
		return ButtonPause
	case p.step.Contains(pos):
		return ButtonStep
	case p.run.Contains(pos):
		return ButtonRun
	default:
		return ButtonNone
	}
}

// Draw renders the full panel: buttons, register/timer/stack dump, and the disassembly of the
// most recently fetched opcode (State.Opcode).
func (p *DebugPanel) Draw(target pixel.Target, d *chip8.Debugger) {
	imd := imdraw.New(nil)
	p.drawButton(imd, p.pause, colornames.Firebrick, d.State == chip8.Pause)
	p.drawButton(imd, p.step, colornames.Goldenrod, d.State == chip8.Step)
	p.drawButton(imd, p.run, colornames.Forestgreen, d.State == chip8.Run)
	imd.Draw(target)

	p.txt.Clear()
	p.txt.Orig = p.origin
	p.txt.Dot = p.origin
	fmt.Fprintln(p.txt, formatRegisters(d.Engine.State))
	p.txt.Draw(target, pixel.IM)
}

func (p *DebugPanel) drawButton(imd *imdraw.IMDraw, r pixel.Rect, fill color.Color, active bool) {
	imd.Color = pixel.RGB(0.2, 0.2, 0.2)
	if active {
		imd.Color = pixel.ToRGBA(fill)
	}
	imd.Push(r.Min, r.Max)
	imd.Rectangle(0)

	imd.Color = pixel.RGB(1, 1, 1)
	imd.Push(r.Min, r.Max)
	imd.Rectangle(2)
}

// formatRegisters renders PC/I/DT/ST/SP/opcode/V0-VF/stack/disassembly in the fixed-width
// column layout the debug panel's monospace font expects.
func formatRegisters(s *chip8.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PC:%03X  I:%03X  OP:%04X\n", s.PC, s.I, s.Opcode)
	fmt.Fprintf(&b, "DT:%02X   ST:%02X   SP:%X\n\n", s.DT, s.ST, s.SP)
	fmt.Fprintln(&b, chip8.Decode(s.Opcode).Disassembly())
	fmt.Fprintln(&b)

	for row := 0; row < 8; row++ {
		fmt.Fprintf(&b, "V%X:%02X  V%X:%02X\n", row, s.V[row], row+8, s.V[row+8])
	}

	fmt.Fprintln(&b, "\nStack:")
	for i := len(s.Stack) - 1; i >= 0; i-- {
		marker := " "
		if uint16(i) == s.SP {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s%X: %03X\n", marker, i, s.Stack[i])
	}

	return b.String()
}

// DumpState writes a full structural dump of a freshly loaded VM state to stdout, for a
// developer watching the terminal alongside the debug window.
func DumpState(s *chip8.State) {
	fmt.Println(spew.Sdump(s))
}
