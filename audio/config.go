package audio

import (
	"os"
	"strconv"
)

// Config holds volume and format settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	Volumes      [cueCount]float64
}

// DefaultConfig returns the stock mix
func DefaultConfig() Config {
	cfg := Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
	for c := range cfg.Volumes {
		cfg.Volumes[c] = 0.8
	}
	cfg.Volumes[CueSpawn] = 0.4
	cfg.Volumes[CueRejected] = 0.6
	cfg.Volumes[CueGameOver] = 1.0
	return cfg
}

// LoadConfig applies environment overrides to the defaults
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SPACE_COMMANDER_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}

	// 0-100
	if v := os.Getenv("SPACE_COMMANDER_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100, 0), 1)
		}
	}

	if v := os.Getenv("SPACE_COMMANDER_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}
	return cfg
}
