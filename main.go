package main

import (
	"errors"
	"flag"
	"log"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/splash/internal/audio"
	"github.com/iburimskiy/splash/internal/config"
	"github.com/iburimskiy/splash/internal/game"
	"github.com/iburimskiy/splash/internal/palette"
)

func main() {
	mute := flag.Bool("mute", false, "disable the collapse sound cue")
	debug := flag.Bool("debug", false, "overlay the splash phase and elapsed time")
	fullscreen := flag.Bool("fullscreen", false, "fill the whole screen like a mobile display")
	flag.Parse()

	pal, err := palette.Default()
	if err != nil {
		fatal(err)
	}

	opts := game.Options{Debug: *debug}
	if !*mute {
		cue, err := audio.NewCue(beep.SampleRate(config.SampleRate), config.CueFrequency, config.CueDuration)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			opts.Cue = cue
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Splash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	g := game.NewGame(pal, opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err in a native dialog before exiting.
func fatal(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title("Splash")); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	log.Fatal(err)
}
