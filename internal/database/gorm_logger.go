// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tessera-hq/tessera/internal/logging"
)

// gormLogger routes gorm's logging through zerolog so query diagnostics
// carry the request's correlation fields.
type gormLogger struct {
	slowThreshold time.Duration
}

func newGormLogger() gormlogger.Interface {
	return &gormLogger{slowThreshold: 200 * time.Millisecond}
}

// LogMode is a no-op: level filtering happens in zerolog.
func (l *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface { return l }

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	logging.Ctx(ctx).Info().Str("component", "database").Msgf(msg, data...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	logging.Ctx(ctx).Warn().Str("component", "database").Msgf(msg, data...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	logging.Ctx(ctx).Error().Str("component", "database").Msgf(msg, data...)
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Ctx(ctx).Error().
			Str("component", "database").
			Err(err).
			Str("sql", sql).
			Int64("rows", rows).
			Dur("elapsed", elapsed).
			Msg("Query failed")
	case elapsed > l.slowThreshold:
		logging.Ctx(ctx).Warn().
			Str("component", "database").
			Str("sql", sql).
			Int64("rows", rows).
			Dur("elapsed", elapsed).
			Msg("Slow query")
	default:
		logging.Ctx(ctx).Debug().
			Str("component", "database").
			Int64("rows", rows).
			Dur("elapsed", elapsed).
			Msg("Query executed")
	}
}
