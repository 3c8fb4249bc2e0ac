package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureContext(buf *bytes.Buffer) context.Context {
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("request_id", "req-42")
	return logger.WithLogger(context.Background(), log)
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		level    gormlogger.LogLevel
		elapsed  time.Duration
		err      error
		contains []string
		empty    bool
	}{
		{
			name:     "info level logs every query at debug",
			level:    gormlogger.Info,
			contains: []string{"SQL query executed", "request_id=req-42", "component=gorm", "SELECT 1"},
		},
		{
			name:     "errors are logged",
			level:    gormlogger.Error,
			err:      errors.New("ORA-00942"),
			contains: []string{"Database query error", "ORA-00942"},
		},
		{
			name:  "record not found is ignored",
			level: gormlogger.Error,
			err:   gorm.ErrRecordNotFound,
			empty: true,
		},
		{
			name:     "slow queries warn",
			level:    gormlogger.Warn,
			elapsed:  time.Second,
			contains: []string{"Slow SQL query detected", "threshold=200ms"},
		},
		{
			name:  "silent logs nothing",
			level: gormlogger.Silent,
			err:   errors.New("boom"),
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			var buf bytes.Buffer
			l := &GormLogger{
				SlowThreshold:        defaultSlowThreshold,
				IgnoreRecordNotFound: true,
				LogLevel:             tt.level,
			}

			// When
			l.Trace(captureContext(&buf), time.Now().Add(-tt.elapsed), query("SELECT 1"), tt.err)

			// Then
			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestGormLogger_ParamsFilter(t *testing.T) {
	l := &GormLogger{ParameterizedQueries: true}
	var filter gorm.ParamsFilter = l
	sql, params := filter.ParamsFilter(context.Background(), "SELECT * FROM operator WHERE email = ?", "ops@example.com")
	assert.Equal(t, "SELECT * FROM operator WHERE email = ?", sql)
	assert.Nil(t, params)

	l.ParameterizedQueries = false
	_, params = l.ParamsFilter(context.Background(), "SELECT 1", 7)
	assert.Equal(t, []interface{}{7}, params)
}

func TestGormLogger_LogModeCopies(t *testing.T) {
	l := &GormLogger{LogLevel: gormlogger.Info}
	quiet := l.LogMode(gormlogger.Silent)

	assert.Equal(t, gormlogger.Info, l.LogLevel)
	assert.Equal(t, gormlogger.Silent, quiet.(*GormLogger).LogLevel)
}
