package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/space-commander/audio"
	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/game"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

var (
	configFlag = flag.String("config", "", "YAML file with tuning overrides")
	seedFlag   = flag.Uint64("seed", 0, "spawn seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "start without audio")
)

func main() {
	flag.Parse()

	tuning := config.Default()
	if *configFlag != "" {
		t, err := config.Load(*configFlag)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sim, err := game.New(tuning, seed)
	if err != nil {
		log.Fatal(err)
	}

	a := newApp(sim, ebitenInput{})

	cfg := audio.LoadConfig()
	cfg.Enabled = cfg.Enabled && !*muteFlag
	if p, err := audio.NewCuePlayer(cfg); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		sim.AddListener(p)
		defer p.Close()
		a.mute = p.SetMuted
		a.muted = p.Muted
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Space Commander")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
