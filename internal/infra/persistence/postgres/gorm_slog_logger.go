package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"brewlog/config"
	"brewlog/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger sends GORM output to slog. Bind values are withheld outside
// debug mode because they include sealed keys and address hashes.
type gormSlogLogger struct {
	base       *slog.Logger
	level      gormlogger.LogLevel
	slowAfter  time.Duration
	bindValues bool
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	debug := cfg != nil && cfg.Env.Debug

	l := &gormSlogLogger{
		base:       base,
		level:      gormlogger.Warn,
		slowAfter:  slowQueryThreshold,
		bindValues: debug,
	}
	if debug {
		l.level = gormlogger.Info
	}

	return l
}

// ParamsFilter keeps placeholders in logged SQL unless bind values are allowed.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if !l.bindValues {
		return sql, nil
	}

	return sql, params
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.base.LogAttrs(ctx, level, "GORM message", slog.String("message", fmt.Sprintf(format, args...)))
}

// Trace logs failed statements, slow statements and, at Info, everything else.
// Missing rows are a normal outcome for lookups and are not logged as failures.
// Statements cut short by a cancelled request are logged at warn.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case failed && l.level >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "Query failed", slog.String("error", err.Error())
		if errors.IsContextDone(err) {
			level, msg = slog.LevelWarn, "Query abandoned"
		}
	case l.slowAfter > 0 && elapsed > l.slowAfter && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow query", slog.Duration("threshold", l.slowAfter)
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelInfo, "Query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.base.LogAttrs(ctx, level, msg, attrs...)
}
