package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlowThreshold applies when GormConfig leaves SlowThreshold unset
const DefaultSlowThreshold = 200 * time.Millisecond

// GormConfig tunes the SQL logger
type GormConfig struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
	// RedactParams logs statements with placeholders instead of bound values,
	// keeping donor names and amounts out of the logs.
	RedactParams bool
}

// GormLogger writes GORM statements to zap under the "sql" name
type GormLogger struct {
	logger *zap.Logger
	cfg    GormConfig
}

var (
	_ gormlogger.Interface = (*GormLogger)(nil)
	_ gorm.ParamsFilter    = (*GormLogger)(nil)
)

// NewGormLogger creates a GORM logger backed by zap
func NewGormLogger(zapLogger *zap.Logger, cfg GormConfig) *GormLogger {
	if cfg.SlowThreshold == 0 {
		cfg.SlowThreshold = DefaultSlowThreshold
	}
	return &GormLogger{logger: zapLogger.Named("sql"), cfg: cfg}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.cfg.Level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.cfg.Level >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, data...), l.contextFields(ctx)...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.cfg.Level >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, data...), l.contextFields(ctx)...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.cfg.Level >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, data...), l.contextFields(ctx)...)
	}
}

// ParamsFilter implements gorm.ParamsFilter
func (l *GormLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.cfg.RedactParams {
		return sql, nil
	}
	return sql, params
}

// Trace implements gormlogger.Interface. Lookups that miss and inserts that
// hit a unique index are answered as 404 and 400, so they log at debug.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.cfg.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := elapsed > l.cfg.SlowThreshold
	failed := err != nil && !isExpectedRejection(err)

	switch {
	case failed && l.cfg.Level >= gormlogger.Error:
		l.logger.Error("SQL failed", append(l.statementFields(ctx, elapsed, fc), zap.Error(err))...)
	case slow && l.cfg.Level >= gormlogger.Warn:
		l.logger.Warn("SQL slow", append(l.statementFields(ctx, elapsed, fc), zap.Duration("threshold", l.cfg.SlowThreshold))...)
	case err != nil && !failed && l.cfg.Level >= gormlogger.Info:
		l.logger.Debug("SQL rejected", append(l.statementFields(ctx, elapsed, fc), zap.Error(err))...)
	case err == nil && l.cfg.Level >= gormlogger.Info:
		l.logger.Debug("SQL", l.statementFields(ctx, elapsed, fc)...)
	}
}

func (l *GormLogger) statementFields(ctx context.Context, elapsed time.Duration, fc func() (string, int64)) []zap.Field {
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	return append(fields, l.contextFields(ctx)...)
}

func (l *GormLogger) contextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	return fields
}

func isExpectedRejection(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey)
}

// MapGormLogLevel maps string log level to GORM log level
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
