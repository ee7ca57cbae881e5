// Package pixel wraps a pixelgl window: the 64x32 framebuffer blit, the hex keypad mapping,
// and (when enabled) the on-screen debug overlay panel.
package pixel

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/bradford-hamilton/chippy/internal/chip8"
)

// The GetGraphics system: the CHIP-8 has one instruction that draws a sprite to the screen.
// Drawing is done in XOR mode and if a pixel is turned off as a result of drawing, the VF
// register is set. This is used for collision detection.

const (
	chip8Width   float64 = 64
	chip8Height  float64 = 32
	screenWidth  float64 = 1024
	screenHeight float64 = 768

	// DebugPanelWidth is the width, in pixels, reserved alongside the framebuffer for the
	// debug overlay panel when it is enabled.
	DebugPanelWidth float64 = 400
)

// Window embeds a pixelgl window, holds a keymapping of hex -> pixelgl.Button, and an array of
// tickers for key-repeat tracking.
type Window struct {
	*pixelgl.Window
	KeyMap   map[byte]pixelgl.Button
	KeysDown [16]*time.Ticker
	Debug    bool
}

// NewWindow creates a new pixelgl window config, initializes the window, and returns a Window
// with an embedded *pixelgl.Window. When debug is true, the window is widened to make room for
// the debug overlay panel.
func NewWindow(debug bool) (*Window, error) {
	width := screenWidth
	if debug {
		width += DebugPanelWidth
	}

	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, width, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}

	km := map[byte]pixelgl.Button{
		0x1: pixelgl.Key1, 0x2: pixelgl.Key2,
		0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
		0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW,
		0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
		0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS,
		0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
		0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX,
		0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
	}
	return &Window{
		Window: w,
		KeyMap: km,
		Debug:  debug,
	}, nil
}

// DrawGraphics blits the CHIP-8 framebuffer, scaled to fill the window's non-debug region.
func (w *Window) DrawGraphics(fb *chip8.Framebuffer) {
	w.Clear(colornames.Black)
	imDraw := imdraw.New(nil)
	imDraw.Color = pixel.RGB(1, 1, 1)
	tileW, tileH := screenWidth/chip8Width, screenHeight/chip8Height

	pixels := fb.Pixels()
	for i := 0; i < 64; i++ {
		for j := 0; j < 32; j++ {
			if pixels[(31-j)*64+i] == 1 {
				imDraw.Push(pixel.V(tileW*float64(i), tileH*float64(j)))
				imDraw.Push(pixel.V(tileW*float64(i)+tileW, tileH*float64(j)+tileH))
				imDraw.Rectangle(0)
			}
		}
	}

	imDraw.Draw(w)
}

const keyRepeatDur = time.Second / 5

// PollKeys samples every mapped key this frame and returns a 16-bit CHIP-8 keypad snapshot,
// handling the key-repeat tickers the same way a real keyboard auto-repeats a held key.
func (w *Window) PollKeys() uint16 {
	var bits uint16

	for chip8Key, button := range w.KeyMap {
		if w.JustReleased(button) && w.KeysDown[chip8Key] != nil {
			w.KeysDown[chip8Key].Stop()
			w.KeysDown[chip8Key] = nil
		} else if w.JustPressed(button) {
			if w.KeysDown[chip8Key] == nil {
				w.KeysDown[chip8Key] = time.NewTicker(keyRepeatDur)
			}
			bits |= 1 << chip8Key
		}

		if w.KeysDown[chip8Key] == nil {
			continue
		}

		select {
		case <-w.KeysDown[chip8Key].C:
			bits |= 1 << chip8Key
		default:
		}

		if w.Pressed(button) {
			bits |= 1 << chip8Key
		}
	}

	return bits
}
