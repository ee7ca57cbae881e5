package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/bradford-hamilton/chippy/internal/pixel"
)

var (
	flagDebug       bool
	flagTickRate    int
	flagROMsDir     string
	flagLegacyShift bool
	flagVolume      float64
)

// runCmd runs the chippy virtual machine and waits for the window to close
var runCmd = &cobra.Command{
	Use:   "run [path/to/rom]",
	Short: "run the chippy emulator",
	Long:  "Run `chippy run path/to/rom`, or omit the path to pick a ROM from a file dialog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChippy,
}

func init() {
	runCmd.Flags().BoolVar(&flagDebug, "debug", false, "show the debug overlay panel")
	runCmd.Flags().IntVar(&flagTickRate, "tick-rate", 600, "CPU cycles per second")
	runCmd.Flags().StringVar(&flagROMsDir, "roms-dir", "Roms/", "directory ROM names are resolved under")
	runCmd.Flags().BoolVar(&flagLegacyShift, "legacy-shift", false, "use the legacy COSMAC VIP SHR/SHL semantics (source Vy instead of Vx)")
	runCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "beep playback volume, 0 to 1")
}

func runChippy(cmd *cobra.Command, args []string) error {
	romPath, err := resolveROMPath(args)
	if err != nil {
		return errors.Wrap(err, "resolving rom path")
	}

	raw, err := os.ReadFile(romPath)
	if err != nil {
		return errors.Wrap(err, "reading rom")
	}

	state, err := chip8.Load(raw)
	if err != nil {
		return errors.Wrap(err, "loading rom")
	}

	engine := chip8.NewEngine(state)
	engine.LegacyShift = flagLegacyShift
	debugger := chip8.NewDebugger(engine, flagDebug)

	win, err := pixel.NewWindow(flagDebug)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}

	var panel *pixel.DebugPanel
	if flagDebug {
		panel = pixel.NewDebugPanel()
		pixel.DumpState(state)
	}

	go pixel.ManageAudio(engine.SoundBeep, flagVolume)

	ticker := time.NewTicker(time.Second / time.Duration(flagTickRate))
	defer ticker.Stop()

	for range ticker.C {
		if win.Closed() {
			engine.ShutdownRequested = true
			fmt.Println("exit signal detected, gracefully shutting down...")
			return nil
		}

		if flagDebug && win.JustPressed(pixelgl.MouseButtonLeft) {
			switch panel.HitTest(win.MousePosition()) {
			case pixel.ButtonPause:
				debugger.OnPauseClicked()
			case pixel.ButtonStep:
				debugger.OnStepClicked()
			case pixel.ButtonRun:
				debugger.OnRunClicked()
			}
		}

		keys := win.PollKeys()
		if _, err := debugger.Tick(keys); err != nil {
			return errors.Wrap(err, "emulation cycle")
		}

		if engine.Dirty() {
			win.DrawGraphics(engine.FB)
		}
		if flagDebug {
			panel.Draw(win, debugger)
		}
		win.Update()
	}

	return nil
}

// resolveROMPath resolves the ROM name (explicit argument, or chosen via a native file-picker
// dialog when none is given) under --roms-dir.
func resolveROMPath(args []string) (string, error) {
	if len(args) == 1 {
		return filepath.Join(flagROMsDir, args[0]), nil
	}

	path, err := dialog.File().
		Title("Choose a chip-8 ROM").
		Filter("chip-8 ROM", "ch8", "rom", "c8").
		SetStartDir(filepath.Clean(flagROMsDir)).
		Load()
	if err != nil {
		return "", errors.Wrap(err, "no rom selected")
	}

	return path, nil
}
