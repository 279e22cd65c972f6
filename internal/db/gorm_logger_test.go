package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func observedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func TestSummarizeSQL(t *testing.T) {
	tests := []struct {
		sql   string
		op    string
		table string
	}{
		{`SELECT * FROM "tenants" WHERE key = $1`, "SELECT", "tenants"},
		{`INSERT INTO "tenants" ("key","name") VALUES ($1,$2)`, "INSERT", "tenants"},
		{`UPDATE "tenants" SET "bucket_name"=$1 WHERE "id" = $2`, "UPDATE", "tenants"},
		{`DELETE FROM "tenants" WHERE key = $1`, "DELETE", "tenants"},
		{"  select *\n\tfrom tenants  ", "SELECT", "tenants"},
		{"", "", ""},
	}
	for _, tt := range tests {
		op, table := summarizeSQL(tt.sql)
		if op != tt.op || table != tt.table {
			t.Errorf("summarizeSQL(%q) = %q/%q, want %q/%q", tt.sql, op, table, tt.op, tt.table)
		}
	}
}

func TestCompactWS(t *testing.T) {
	got := compactWS("SELECT *\n\tFROM   tenants\r\n")
	want := "SELECT * FROM tenants"
	if got != want {
		t.Errorf("compactWS = %q, want %q", got, want)
	}
}

func TestTrace_Success(t *testing.T) {
	log, logs := observedLogger(zapcore.DebugLevel)
	g := newGormLogger(log, logger.Info)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "tenants"`, 3
	}, nil)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %s", entry.Level)
	}
	fields := entry.ContextMap()
	if fields["op"] != "SELECT" || fields["table"] != "tenants" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["rows"] != int64(3) {
		t.Errorf("expected rows 3, got %v", fields["rows"])
	}
}

func TestTrace_NotFoundDemoted(t *testing.T) {
	log, logs := observedLogger(zapcore.DebugLevel)
	g := newGormLogger(log, logger.Info)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "tenants" WHERE key = $1`, 0
	}, gorm.ErrRecordNotFound)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zapcore.DebugLevel {
		t.Errorf("expected not-found demoted to debug, got %s", entry.Level)
	}
	if entry.ContextMap()["notFound"] != true {
		t.Errorf("expected notFound field, got %v", entry.ContextMap())
	}
}

func TestTrace_Error(t *testing.T) {
	log, logs := observedLogger(zapcore.DebugLevel)
	g := newGormLogger(log, logger.Error)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `UPDATE "tenants" SET "bucket_name"=$1`, 0
	}, fmt.Errorf("connection timeout"))

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %s", logs.All()[0].Level)
	}
}

func TestTrace_Silent(t *testing.T) {
	log, logs := observedLogger(zapcore.DebugLevel)
	g := newGormLogger(log, logger.Silent)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT 1`, 1
	}, nil)

	if logs.Len() != 0 {
		t.Fatalf("expected no log entries when silent, got %d", logs.Len())
	}
}
