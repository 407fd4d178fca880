package configloader

import (
	"github.com/hyp3rd/devconsole"
)

type rawConfig struct {
	Name        string `mapstructure:"name"         yaml:"name"`
	Level       string `mapstructure:"level"        yaml:"level"`
	Capacity    *int   `mapstructure:"capacity"     yaml:"capacity"`
	HistorySize *int   `mapstructure:"history_size" yaml:"history_size"`
	TimeFormat  string `mapstructure:"time_format"  yaml:"time_format"`
	Color       struct {
		Enable   *bool `mapstructure:"enable"    yaml:"enable"`
		ForceTTY *bool `mapstructure:"force_tty" yaml:"force_tty"`
	} `mapstructure:"color" yaml:"color"`
}

func applyRaw(raw rawConfig) (*devconsole.Config, error) {
	cfg := devconsole.DefaultConfig()

	if raw.Name != "" {
		cfg.Name = raw.Name
	}

	if raw.Level != "" {
		level, err := devconsole.ParseLevel(raw.Level)
		if err != nil {
			return nil, err
		}

		cfg.Level = level
	}

	if raw.Capacity != nil {
		cfg.Capacity = *raw.Capacity
	}

	if raw.HistorySize != nil {
		cfg.HistorySize = *raw.HistorySize
	}

	if raw.TimeFormat != "" {
		cfg.TimeFormat = raw.TimeFormat
	}

	if raw.Color.Enable != nil {
		cfg.Color.Enable = *raw.Color.Enable
	}

	if raw.Color.ForceTTY != nil {
		cfg.Color.ForceTTY = *raw.Color.ForceTTY
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"name",
		"level",
		"capacity",
		"history_size",
		"time_format",
		"color.enable",
		"color.force_tty",
	}
}
