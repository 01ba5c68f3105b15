package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`
	// COLOURS enables coloured team headings and warnings
	Colours bool `envconfig:"COLOURS" default:"true"`
	// TEAM_RATIO uses the ROLE:WEIGHT list form, e.g. ATT:2,MID:3,DEF:2
	TeamRatio          string `envconfig:"TEAM_RATIO"`
	MaxTeamSize        int    `envconfig:"MAX_TEAM_SIZE" default:"7"`
	EnforceComposition bool   `envconfig:"ENFORCE_COMPOSITION" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
