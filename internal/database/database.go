// /internal/database/database.go
package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/ericoliveiras/dessert-api/internal/database/schema"
)

// driverName é o nome registrado pelo modernc.org/sqlite (Go puro, sem cgo).
const driverName = "sqlite"

// Connect abre (ou cria) o arquivo SQLite em path e garante que a tabela exista.
// O handle retornado deve ser compartilhado pelo processo inteiro.
func Connect(path string, debug bool) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path is required")
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: driverName,
		DSN:        dsn(path),
	}), &gorm.Config{
		Logger:                 newLogger(debug),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// Uma única conexão: o SQLite serializa as escritas no arquivo.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := db.Exec(schema.Desserts).Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure desserts table: %w", err)
	}

	log.WithField("path", path).Debug("Database ready")
	return db, nil
}

// Close fecha a conexão subjacente do GORM.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	clean := filepath.Clean(path)
	if strings.Contains(clean, "?") {
		return clean
	}
	return clean + "?_pragma=busy_timeout(5000)"
}

// newLogger silencia o GORM, exceto em modo debug, quando o SQL vai para o logrus.
func newLogger(debug bool) logger.Interface {
	if !debug {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.New(log.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Info,
		IgnoreRecordNotFoundError: true,
	})
}
