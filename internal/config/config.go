// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Valores padrão quando nenhuma variável de ambiente é definida.
const (
	DefaultPort         = 3000
	DefaultDatabasePath = "./test.db"
)

// Config agrupa tudo que o processo lê do ambiente.
type Config struct {
	Port         int    `env:"PORT" envDefault:"3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./test.db"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode      string `env:"GIN_MODE" envDefault:"release"`
	GopsAgent    bool   `env:"GOPS_AGENT" envDefault:"false"`
	SeedDesserts bool   `env:"SEED_DESSERTS" envDefault:"false"`
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse lê somente as variáveis de ambiente, sem tocar no .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}
	if cfg.DatabasePath == "" {
		return Config{}, errors.New("DATABASE_PATH is required")
	}
	return cfg, nil
}

// Addr retorna o endereço de escuta do servidor HTTP.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// URL é o endereço exibido na linha de inicialização.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
