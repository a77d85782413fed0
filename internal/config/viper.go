package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	// DSADOJO_DATABASE_HOST overrides database.host and so on.
	config.SetEnvPrefix("dsadojo")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	SetDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "dsadojo-be")
	config.SetDefault("api.port", 8080)
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", "*")
	config.SetDefault("log.level", "info")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
	config.SetDefault("identity.session_ttl", "168h")
	config.SetDefault("identity.timeout", "10s")
	config.SetDefault("llm.provider", "none")
	config.SetDefault("llm.explain_timeout", "20s")
	config.SetDefault("events.queue", "dsadojo.events")
}
