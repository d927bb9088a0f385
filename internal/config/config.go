package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + optional .env file).
type Config struct {
	Env               string
	Port              string
	DatabaseURL       string
	RedisURL          string
	SupabaseURL       string // project URL, used for storage uploads and public URLs
	SupabaseSecretKey string // service_role key; the anon key cannot write buckets
	FrontendSuffix    string // allowed CORS origin suffix, e.g. ".recyklat.pl"
}

// Load reads config from the environment, with .env as a development fallback.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL")
	switch env {
	case "production":
		if u := viper.GetString("DATABASE_URL_PROD"); u != "" {
			dbURL = u
		}
	case "test":
		if u := viper.GetString("DATABASE_URL_TEST"); u != "" {
			dbURL = u
		}
	}

	return &Config{
		Env:               env,
		Port:              port,
		DatabaseURL:       dbURL,
		RedisURL:          viper.GetString("REDIS_URL"),
		SupabaseURL:       viper.GetString("SUPABASE_URL"),
		SupabaseSecretKey: viper.GetString("SUPABASE_SECRET_KEY"),
		FrontendSuffix:    viper.GetString("FRONTEND_URL_ENDS_WITH"),
	}, nil
}

// IsProduction reports whether the app runs with production cookie/TLS flags.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
