package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Dosada05/roster-graphql/lib/logger/sl"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm's logging into slog. Statements are logged at debug
// level, slow statements at warn and failed statements at error.
type gormLogger struct {
	log   *slog.Logger
	level logger.LogLevel
}

func NewGormLogger(log *slog.Logger) logger.Interface {
	return &gormLogger{
		log:   log.With(slog.String("component", "gorm")),
		level: logger.Info,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		l.log.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		l.log.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		l.log.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query, rows := fc()
	attrs := []any{
		slog.String("sql", query),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.log.ErrorContext(ctx, "query failed", append(attrs, sl.Err(err))...)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.log.WarnContext(ctx, "slow query", attrs...)
	case l.level >= logger.Info:
		l.log.DebugContext(ctx, "query executed", attrs...)
	}
}
