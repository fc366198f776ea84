package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config holds presentation audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns audio settings with every cue at full volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes:   make(map[Cue]float64, CueCount),
	}
	for c := Cue(1); c < CueCount; c++ {
		cfg.CueVolumes[c] = 1.0
	}
	return cfg
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-cue volumes as a JSON object keyed by cue name
	if cueVols := os.Getenv("ARENA_SFX_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if c, ok := ParseCue(name); ok {
					cfg.CueVolumes[c] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("ARENA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume is the effective gain of cue c
func (cfg *Config) volume(c Cue) float64 {
	v, ok := cfg.CueVolumes[c]
	if !ok {
		v = 1.0
	}
	return v * cfg.MasterVolume
}
