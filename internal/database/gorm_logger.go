package database

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewQueryLogger builds a zerolog.Logger for GORM query tracing, writing to
// stderr at the given application log level (DEBUG, INFO, WARN, ERROR).
func NewQueryLogger(level string) zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(parseZerologLevel(level))
}

func parseZerologLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// zerologGormLogger adapts zerolog to GORM's logger.Interface so that every
// SQL query executed by GORM is emitted as a structured zerolog event. Level
// filtering is delegated to the wrapped zerolog.Logger — when its level is
// above Debug, the SQL formatting callback is never invoked, avoiding
// per-query string work in production.
type zerologGormLogger struct {
	logger zerolog.Logger
}

// newZerologGormLogger wraps the given zerolog.Logger for use as a GORM logger.
func newZerologGormLogger(l zerolog.Logger) zerologGormLogger {
	return zerologGormLogger{logger: l.With().Str("component", "gorm").Logger()}
}

// LogMode is a no-op; level filtering is handled by the wrapped zerolog.Logger.
func (l zerologGormLogger) LogMode(logger.LogLevel) logger.Interface { return l }

// Info logs informational messages from GORM.
func (l zerologGormLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Info().Msgf(msg, args...)
}

// Warn logs warning messages from GORM.
func (l zerologGormLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warn().Msgf(msg, args...)
}

// Error logs error messages from GORM.
func (l zerologGormLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Error().Msgf(msg, args...)
}

// maxSQLLength is the maximum length of a SQL string in debug logs before
// it gets truncated with an ellipsis.
const maxSQLLength = 200

// truncateSQL shortens a SQL string for readable log output, replacing the
// middle with "..." when it exceeds maxSQLLength.
func truncateSQL(sql string) string {
	if len(sql) <= maxSQLLength {
		return sql
	}
	half := (maxSQLLength - 3) / 2
	return sql[:half] + "..." + sql[len(sql)-half:]
}

// Trace is called by GORM after every SQL operation. Real errors are logged at
// Error level. ErrRecordNotFound is not an error — it is the normal "no rows"
// result from .First() — and is logged at Debug level alongside successful
// queries.
func (l zerologGormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		l.logger.Error().
			Str("sql", truncateSQL(sql)).
			Int64("rows", rows).
			Dur("duration", elapsed).
			Err(err).
			Msg("gorm query error")
		return
	}

	if l.logger.GetLevel() > zerolog.DebugLevel {
		return
	}

	sql, rows := fc()
	l.logger.Debug().
		Str("sql", truncateSQL(sql)).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("gorm query")
}
