package adapter

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"exambook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlite"), mock
}

func TestSQLiteStorageAdapter_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT v FROM kv_store WHERE k = ?`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		rows := sqlmock.NewRows([]string{"v"}).AddRow(`[]`)
		mock.ExpectQuery(query).WithArgs("exams").WillReturnRows(rows)

		val, err := adapter.Get(ctx, "exams")
		assert.NoError(t, err)
		assert.Equal(t, `[]`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("KeyNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"v"}))

		val, err := adapter.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNoValue)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		dbErr := errors.New("disk I/O error")
		mock.ExpectQuery(query).WithArgs("exams").WillReturnError(dbErr)

		_, err := adapter.Get(ctx, "exams")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteStorageAdapter_Set(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO kv_store (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		mock.ExpectExec(query).WithArgs("exams", `[]`).WillReturnResult(sqlmock.NewResult(1, 1))

		err := adapter.Set(ctx, "exams", `[]`)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		dbErr := errors.New("database is locked")
		mock.ExpectExec(query).WithArgs("exams", `[]`).WillReturnError(dbErr)

		err := adapter.Set(ctx, "exams", `[]`)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteStorageAdapter_Delete(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM kv_store WHERE k = ?`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		mock.ExpectExec(query).WithArgs("exams").WillReturnResult(sqlmock.NewResult(0, 1))

		err := adapter.Delete(ctx, "exams")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SuccessKeyNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		adapter := NewSQLiteStorageAdapter(db)

		mock.ExpectExec(query).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.Delete(ctx, "missing")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteStorageAdapter_Ping(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewSQLiteStorageAdapter(db)

	mock.ExpectPing()
	assert.NoError(t, adapter.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
