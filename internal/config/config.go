package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del servicio. Se carga desde .env y
// variables de entorno; en dev puede faltar DATABASE_URL (repos in-memory).
type Config struct {
	Port        string `mapstructure:"PORT"`
	Env         string `mapstructure:"ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	AuthSecret   string `mapstructure:"AUTH_SECRET"`
	TokenTTLMin  int    `mapstructure:"TOKEN_TTL_MINUTES"`
	ResetTTLMin  int    `mapstructure:"RESET_TTL_MINUTES"`

	StorageBucket string `mapstructure:"STORAGE_BUCKET"`
	StorageRegion string `mapstructure:"STORAGE_REGION"`

	SeedFile string `mapstructure:"SEED_FILE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("TOKEN_TTL_MINUTES", 480)
	v.SetDefault("RESET_TTL_MINUTES", 15)
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("SEED_FILE", "server/data/vet_data.json")

	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("TOKEN_TTL_MINUTES")
	v.BindEnv("RESET_TTL_MINUTES")
	v.BindEnv("STORAGE_BUCKET")
	v.BindEnv("STORAGE_REGION")
	v.BindEnv("SEED_FILE")

	// .env es opcional, no fallar si no existe
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// RequireDatabase valida DATABASE_URL para los comandos que no tienen
// fallback in-memory (migrate, seed).
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}
