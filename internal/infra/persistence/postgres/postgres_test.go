package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"brewlog/config"
	domainerrors "brewlog/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens GORM on top of sqlmock. Unmet expectations fail the test on cleanup.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(pgDriver.New(pgDriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

func TestPoolContention(t *testing.T) {
	last := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, contended := poolContention(last, last)
	assert.False(t, contended)

	level, attrs, contended := poolContention(last, sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond})
	require.True(t, contended)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "waits", attrs[0].Key)
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	level, _, contended = poolContention(last, sql.DBStats{WaitCount: 5, WaitDuration: 90 * time.Millisecond})
	require.True(t, contended)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestNew_RequiresPostgresSection(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.DiscardHandler),
	})
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}
