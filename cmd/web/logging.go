package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ericoliveiras/dessert-api/internal/config"
)

// configureLogging aplica LOG_LEVEL ao logrus e direciona a saída para out.
func configureLogging(cfg config.Config, out io.Writer) (log.Level, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetOutput(out)
	return level, nil
}
