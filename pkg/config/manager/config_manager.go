// Package manager holds the global kkrtestctl config for the process.
package manager

import (
	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
)

var c *cfg.Config

func init() {
	Reset()
}

// Init loads the global config from the active viper instance.
func Init() error {
	return c.Load()
}

// Config returns the global config.
func Config() *cfg.Config {
	return c
}

// Reset replaces the global config with a fresh one.
func Reset() {
	c = cfg.NewConfig()
}
