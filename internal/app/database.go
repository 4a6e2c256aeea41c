package app

import (
	"fmt"
	"os"
	"path"

	"github.com/itlabra/xmlcatalog/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// getDatabase opens the configured database. Storage connectivity
// errors at startup are fatal; there is no retry.
func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	switch cfg.Type {
	case "sqlite":
		dbdir := path.Join(workdir, "data")
		if err := os.MkdirAll(dbdir, 0o755); err != nil {
			zap.S().Fatalf("failed to create sqlite dir: %v", err)
		}
		dbfile := path.Join(dbdir, cfg.Name+".db")
		db, err := gorm.Open(sqlite.Open(dbfile), gormCfg)
		if err != nil {
			zap.S().Fatalf("failed to open sqlite database: %v", err)
		}
		return db
	case "postgres", "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port)
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			zap.S().Fatalf("failed to connect postgres database: %v", err)
		}
		return db
	default:
		zap.S().Fatalf("unsupported database type: %s", cfg.Type)
		return nil
	}
}
