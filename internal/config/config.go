package config

import (
	"encoding/json"
	"os"
)

// Options carries the runtime knobs for the command-line driver. The card
// vocabulary and board layout are fixed by the rules and live in their own
// packages; only tuning lives here.
type Options struct {
	Seed       int64  `json:"seed"`        // 0 means seed from the clock
	TurnLimit  int    `json:"turn_limit"`  // safety cap for simulated games
	BotDelayMS int    `json:"bot_delay_ms"`
	LogLevel   string `json:"log_level"`
}

// Default returns the options used when no config file is given.
func Default() *Options {
	return &Options{
		TurnLimit:  200,
		BotDelayMS: 50,
		LogLevel:   "info",
	}
}

// Load reads options from a JSON file, filling in defaults for absent
// fields.
func Load(path string) (*Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}
