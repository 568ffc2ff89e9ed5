package db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger() (*bytes.Buffer, *slog.Logger) {
	buf := &bytes.Buffer{}
	return buf, slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()
	stmt := func() (string, int64) { return `SELECT * FROM "members" LIMIT 100`, 3 }

	t.Run("success logs at debug", func(t *testing.T) {
		buf, log := newBufferedLogger()
		NewGormLogger(log).Trace(ctx, time.Now(), stmt, nil)

		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
		assert.Contains(t, buf.String(), `"rows":3`)
		assert.Contains(t, buf.String(), `"component":"gorm"`)
	})

	t.Run("failure logs at error", func(t *testing.T) {
		buf, log := newBufferedLogger()
		NewGormLogger(log).Trace(ctx, time.Now(), stmt, errors.New("boom"))

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"error":"boom"`)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		buf, log := newBufferedLogger()
		NewGormLogger(log).Trace(ctx, time.Now(), stmt, gorm.ErrRecordNotFound)

		assert.NotContains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("slow query logs at warn", func(t *testing.T) {
		buf, log := newBufferedLogger()
		NewGormLogger(log).Trace(ctx, time.Now().Add(-time.Second), stmt, nil)

		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("silent mode", func(t *testing.T) {
		buf, log := newBufferedLogger()
		NewGormLogger(log).LogMode(logger.Silent).Trace(ctx, time.Now(), stmt, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
