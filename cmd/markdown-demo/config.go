package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// knobs are the documented configuration knobs of the popup; everything else
// keeps its library default.
type knobs struct {
	MaxItems      int `yaml:"max_items"`
	SettleDelayMS int `yaml:"settle_delay_ms"`
	MaxWidth      int `yaml:"max_width"`
}

func loadKnobs(path string) (knobs, error) {
	if path == "" {
		return knobs{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return knobs{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var k knobs
	if err := yaml.Unmarshal(data, &k); err != nil {
		return knobs{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if k.MaxItems < 0 || k.SettleDelayMS < 0 || k.MaxWidth < 0 {
		return knobs{}, fmt.Errorf("config %s: knobs must be non-negative", path)
	}
	return k, nil
}
