// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/models"
)

// DB wraps the gorm handle and provides data access methods.
type DB struct {
	orm *gorm.DB
	cfg *config.DatabaseConfig
}

// New opens a PostgreSQL connection, applies pool settings and, when
// configured, runs schema migration.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	dialector := postgres.Open(cfg.URL)
	return Open(dialector, cfg)
}

// Open builds the store on an explicit dialector. Production uses the
// postgres dialector; tests pass sqlite.
func Open(dialector gorm.Dialector, cfg *config.DatabaseConfig) (*DB, error) {
	orm, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newGormLogger(),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	db := &DB{orm: orm, cfg: cfg}

	if cfg.AutoMigrate {
		if err := db.Migrate(); err != nil {
			return nil, err
		}
	}

	logger := logging.WithComponent("database")
	logger.Info().
		Bool("auto_migrate", cfg.AutoMigrate).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Database connection established")

	return db, nil
}

// Migrate creates or updates the schema for all entities.
func (db *DB) Migrate() error {
	err := db.orm.AutoMigrate(
		&models.Tenant{},
		&models.ThemeTemplate{},
		&models.ThemePurchase{},
		&models.Event{},
		&models.TicketType{},
		&models.EventSession{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping verifies the connection is alive. Used by the readiness probe.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.orm.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.orm.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	return sqlDB.Close()
}
