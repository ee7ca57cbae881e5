package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/bradford-hamilton/chippy/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so cobra's command tree runs inside it.
	pixelgl.Run(cmd.Execute)
}
