package configs

import (
	"github.com/spf13/viper"
)

// EnvConfig holds the settings read straight from the environment, before any properties file.
type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "todo-tracker"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/todo-tracker"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
