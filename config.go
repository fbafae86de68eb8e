// config.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config maps panel names to their serial ports:
//
//	panels:
//	  eventsim:
//	    port: COM3
//	  airspeed:
//	    port: COM4
type Config struct {
	Panels map[string]PanelConfig `yaml:"panels"`
}

type PanelConfig struct {
	Port string `yaml:"port"`
}

// LoadConfig reads the configuration file. A missing file is not an
// error: the port can also be given on the command line.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	} else if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &c, nil
}

func (c *Config) SetPanelPort(name, port string) {
	if c.Panels == nil {
		c.Panels = make(map[string]PanelConfig)
	}
	c.Panels[name] = PanelConfig{Port: port}
}
