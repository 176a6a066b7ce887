package config

import "github.com/spf13/viper"

type Config struct {
	Server ServerConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level       string
	Development bool
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("HOST", "127.0.0.1")
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEV_LOGGING", false)

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("HOST"),
			Port: viper.GetInt("PORT"),
		},
		Log: LogConfig{
			Level:       viper.GetString("LOG_LEVEL"),
			Development: viper.GetBool("DEV_LOGGING"),
		},
	}

	return cfg, nil
}
