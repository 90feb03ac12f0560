package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/siteleads/internal/logger"
	"github.com/jonesrussell/siteleads/internal/storage"
)

func newPostgresSink(t *testing.T) (*storage.PostgresSink, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")

	return storage.NewPostgresSink(db, logger.NewNoOp()), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSink_SaveInsertsOneRowPerLead(t *testing.T) {
	t.Parallel()

	sink, mock := newPostgresSink(t)
	run := sampleRun()

	mock.ExpectBegin()
	for range run.Leads {
		mock.ExpectExec("INSERT INTO leads").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := sink.Save(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectationsMet(t, mock)
}

func TestPostgresSink_SaveRollsBackOnInsertError(t *testing.T) {
	t.Parallel()

	sink, mock := newPostgresSink(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO leads").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := sink.Save(context.Background(), sampleRun())
	if err == nil {
		t.Fatal("expected insert error to propagate")
	}

	expectationsMet(t, mock)
}

func TestPostgresSink_EmptyRunCommitsNoInserts(t *testing.T) {
	t.Parallel()

	sink, mock := newPostgresSink(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	run := sampleRun()
	run.Leads = nil

	if err := sink.Save(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectationsMet(t, mock)
}
