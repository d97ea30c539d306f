// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/key"
	"github.com/spf13/viper"
)

// ListOptions translates the configured allocation limits into list options.
func ListOptions() []arraylist.Option {
	return []arraylist.Option{
		arraylist.WithMaxCapacity(viper.GetInt(key.ListMaxCapacity)),
		arraylist.WithMaxBytes(viper.GetInt(key.ListMaxBytes)),
	}
}

// InitialCapacity returns the configured starting capacity for new lists.
func InitialCapacity() int {
	return viper.GetInt(key.ListInitialCapacity)
}
