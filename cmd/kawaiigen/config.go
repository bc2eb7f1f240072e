package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ajanata/kawaiigen"
)

const configFile = "kawaiigen.yaml"

type demoConfig struct {
	FaceSize int `yaml:"faceSize"`
	Scale    int `yaml:"scale"`
	TickMs   int `yaml:"tickMs"`
	BlinkMs  int `yaml:"blinkMs"`
	HoldMs   int `yaml:"holdMs"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		FaceSize: 240,
		Scale:    2,
		TickMs:   30,
		BlinkMs:  3000,
		HoldMs:   2500,
	}
}

// loadConfig reads kawaiigen.yaml from the working directory. A missing
// file is not an error; the defaults apply.
func loadConfig(log zerolog.Logger) demoConfig {
	cfg := defaultDemoConfig()
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("config file unreadable, using defaults")
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Msg("config file invalid, using defaults")
		return defaultDemoConfig()
	}
	return cfg
}

const (
	stateObject   = "demo"
	stateProperty = "state"
)

// savedState is what the demo persists between runs.
type savedState struct {
	Emotion   uint8 `yaml:"emotion"`
	AutoBlink bool  `yaml:"autoBlink"`
}

func defaultState() savedState {
	return savedState{Emotion: uint8(kawaiigen.EmotionNeutral), AutoBlink: true}
}

func loadState(m *gdata.Manager, log zerolog.Logger) savedState {
	st := defaultState()
	if m == nil || !m.ObjectPropExists(stateObject, stateProperty) {
		return st
	}
	data, err := m.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		log.Warn().Err(err).Msg("saved state unreadable")
		return st
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		log.Warn().Err(err).Msg("saved state invalid")
		return defaultState()
	}
	if int(st.Emotion) >= kawaiigen.NumEmotions {
		st.Emotion = uint8(kawaiigen.EmotionNeutral)
	}
	return st
}

func saveState(m *gdata.Manager, st savedState, log zerolog.Logger) {
	if m == nil {
		return
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		log.Warn().Err(err).Msg("state marshal failed")
		return
	}
	if err := m.SaveObjectProp(stateObject, stateProperty, data); err != nil {
		log.Warn().Err(err).Msg("state save failed")
	}
}
