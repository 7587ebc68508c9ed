package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-commander/audio"
	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/game"
	"github.com/lixenwraith/space-commander/parameter"
)

const (
	logDir      = "logs"
	logFileName = "space-commander.log"
	maxLogSize  = 10 << 20

	frameInterval = 33 * time.Millisecond
)

var (
	configFlag = flag.String("config", "", "YAML file with tuning overrides")
	debugFlag  = flag.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	seedFlag   = flag.Uint64("seed", 0, "spawn seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "start without audio")
)

// setupLogging routes the log package to a file in debug mode, otherwise discards it
// The terminal owns stdout, so nothing may be printed there while running
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	path := filepath.Join(logDir, logFileName)
	rotateLog(path)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logFileName)
	stem := strings.TrimSuffix(logFileName, ext)
	rotated := filepath.Join(logDir, stem+"-"+time.Now().Format("20060102-150405")+ext)
	_ = os.Rename(path, rotated)
}

// loadTuning reads overrides from path, defaults when empty
func loadTuning(path string) (config.Tuning, error) {
	if path == "" {
		return config.Default(), nil
	}
	t, err := config.Load(path)
	if err != nil {
		return config.Tuning{}, err
	}
	log.Printf("config: loaded %s", path)
	return t, nil
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "space-commander: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := loadTuning(*configFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("main: seed %d", seed)

	sim, err := game.New(tuning, seed)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashHook(screen.Fini)

	// Non-fatal, the game runs silent without a device
	var player *audio.CuePlayer
	cfg := audio.LoadConfig()
	cfg.Enabled = cfg.Enabled && !*muteFlag
	if p, err := audio.NewCuePlayer(cfg); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		player = p
		sim.AddListener(player)
		defer player.Close()
	}

	runner := game.NewRunner(sim, nil, parameter.TickInterval)
	runner.Start()
	defer runner.Stop()

	u := newUI(screen, sim, runner)
	if player != nil {
		u.mute = player.SetMuted
		u.muted = player.Muted
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	u.draw()
	for {
		select {
		case ev := <-events:
			if u.handle(ev) {
				return nil
			}
		case <-frame.C:
			u.draw()
		}
	}
}
