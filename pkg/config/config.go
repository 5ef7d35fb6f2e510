package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "PROCIDENTITY"

type Config struct {
	ProcRoot string `mapstructure:"procRoot"`
	InitPID  int    `mapstructure:"initPid"`
	Workers  int    `mapstructure:"workers"`
	LogLevel string `mapstructure:"logLevel"`
}

// LoadConfig reads config.json from path, overlaid with PROCIDENTITY_* environment variables.
// A missing config file leaves the defaults in place.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault("procRoot", "/proc")
	v.SetDefault("initPid", 1)
	v.SetDefault("workers", 4)
	v.SetDefault("logLevel", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var config Config
	err := v.Unmarshal(&config)
	return config, err
}
