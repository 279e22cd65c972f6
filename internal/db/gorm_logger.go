package db

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormZapLogger implements gorm's logger.Interface on top of zap so SQL
// logs share the service's structured output. Raw SQL is never emitted;
// statements are summarized to operation and table.
type gormZapLogger struct {
	log   *zap.Logger
	level logger.LogLevel
}

func newGormLogger(log *zap.Logger, lvl logger.LogLevel) *gormZapLogger {
	return &gormZapLogger{log: log, level: lvl}
}

func (g *gormZapLogger) LogMode(l logger.LogLevel) logger.Interface { g.level = l; return g }

func (g *gormZapLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if g.level < logger.Info {
		return
	}
	g.log.Sugar().Infof("gorm: "+msg, data...)
}

func (g *gormZapLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if g.level < logger.Warn {
		return
	}
	g.log.Sugar().Warnf("gorm: "+msg, data...)
}

func (g *gormZapLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if g.level < logger.Error {
		return
	}
	g.log.Sugar().Errorf("gorm: "+msg, data...)
}

// Trace logs each statement with duration and rows affected. Not-found
// results are demoted to debug.
func (g *gormZapLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= logger.Silent {
		return
	}
	sql, rows := fc()
	op, table := summarizeSQL(sql)
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("table", table),
		zap.Int64("rows", rows),
		zap.Duration("duration", time.Since(begin)),
		zap.String("caller", callerFileLine()),
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if g.level >= logger.Info {
				g.log.Debug("gorm sql", append(fields, zap.Bool("notFound", true))...)
			}
			return
		}
		if g.level >= logger.Error {
			g.log.Error("gorm sql", append(fields, zap.Error(err))...)
		}
		return
	}
	if g.level >= logger.Info {
		g.log.Debug("gorm sql", fields...)
	}
}

// callerFileLine returns the first caller outside gorm internals.
func callerFileLine() string {
	for i := 2; i < 12; i++ {
		if _, file, line, ok := runtime.Caller(i); ok {
			if !strings.Contains(file, "gorm.io") {
				return file + ":" + strconv.Itoa(line)
			}
		}
	}
	return ""
}

// compactWS collapses whitespace runs so the summary stays on one line.
func compactWS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// summarizeSQL reduces a statement to operation and table, with no
// parameters, so logs cannot leak row data.
func summarizeSQL(sql string) (op string, table string) {
	q := strings.ToUpper(compactWS(sql))
	parts := strings.Fields(q)
	if len(parts) == 0 {
		return "", ""
	}
	op = parts[0]

	s := q
	switch {
	case strings.HasPrefix(s, "UPDATE "):
		s = s[len("UPDATE "):]
	case strings.HasPrefix(s, "INSERT INTO "):
		s = s[len("INSERT INTO "):]
	case strings.HasPrefix(s, "DELETE FROM "):
		s = s[len("DELETE FROM "):]
	default:
		if idx := strings.Index(s, " FROM "); idx >= 0 {
			s = s[idx+6:]
		}
	}
	if ws := strings.Fields(s); len(ws) > 0 {
		table = strings.Trim(ws[0], "`\"")
	}
	return op, strings.ToLower(table)
}
