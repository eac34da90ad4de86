package test

import "github.com/kelseyhightower/envconfig"

// Config drives the optional parts of the integration suite.
type Config struct {
	// FixturePath points at a real (large) chat export. Empty skips the
	// smoke run over it.
	FixturePath string `envconfig:"CHATSCOPE_FIXTURE_PATH"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
