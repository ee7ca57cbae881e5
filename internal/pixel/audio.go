package pixel

import (
	"math"
	"os"
	"time"

	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// ManageAudio reads and decodes assets/beep.mp3, initializes the speaker, and plays a beep
// every time a value arrives on beeps (the Engine's SoundBeep channel). It returns once beeps
// is closed.
func ManageAudio(beeps <-chan struct{}, volume float64) {
	f, err := os.Open("assets/beep.mp3")
	if err != nil {
		return
	}
	defer f.Close()

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return
	}

	for range beeps {
		_ = streamer.Seek(0)
		// effects.Volume gains by Base^Volume, so map the linear 0-1 setting onto that exponent.
		vol := &effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(volume), Silent: volume <= 0}
		speaker.Play(vol)
	}
}
