package configloader

import (
	"github.com/spf13/viper"

	"github.com/hyp3rd/devconsole"
)

// ViperSettings implements the console's Settings boundary on top of a Viper
// instance, so persisted host configuration (whatever its format) is exposed
// to console consumers as an opaque key-value store.
type ViperSettings struct {
	viper *viper.Viper
}

// Compile-time interface check.
var _ devconsole.Settings = (*ViperSettings)(nil)

// NewViperSettings wraps the given Viper instance. A nil instance gets a
// fresh one.
func NewViperSettings(viperInstance *viper.Viper) *ViperSettings {
	if viperInstance == nil {
		viperInstance = viper.New()
	}

	return &ViperSettings{viper: viperInstance}
}

// Get implements devconsole.Settings.
func (s *ViperSettings) Get(key string, fallback any) any {
	if !s.viper.IsSet(key) {
		return fallback
	}

	return s.viper.Get(key)
}

// Set implements devconsole.Settings.
func (s *ViperSettings) Set(key string, value any) {
	s.viper.Set(key, value)
}
