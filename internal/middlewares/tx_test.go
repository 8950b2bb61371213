package middlewares

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware_CommitsAndExposesTx(t *testing.T) {
	sqlxDB, mock := newTxTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.NotNil(t, GetTxFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/appointments/1", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	// Close so Begin fails
	db.Close()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next should not run without a transaction")
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/appointments/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_CommitError(t *testing.T) {
	sqlxDB, mock := newTxTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/appointments/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnErrorStatus(t *testing.T) {
	sqlxDB, mock := newTxTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE appointments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	// The write succeeds but the handler answers 500, so the mutation
	// must not commit.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tx := GetTxFromContext(r.Context())
		require.NotNil(t, tx)
		_, err := tx.Exec("UPDATE appointments SET status = 'completed' WHERE id = 1")
		require.NoError(t, err)
		w.WriteHeader(http.StatusInternalServerError)
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/appointments/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnClientError(t *testing.T) {
	sqlxDB, mock := newTxTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/appointments/1", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnPanic(t *testing.T) {
	sqlxDB, mock := newTxTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler blew up")
	})

	rr := httptest.NewRecorder()
	assert.Panics(t, func() {
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/appointments/1", nil))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}
