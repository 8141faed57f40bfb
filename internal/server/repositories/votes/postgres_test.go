package votes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+votes`).
		WithArgs("beach", "10.0.0.1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	got, err := repo.Create(context.Background(), &models.Vote{Option: "beach", IPAddress: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.Option != "beach" {
		t.Fatalf("unexpected vote: %+v", got)
	}
}

func TestCountByIP(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+votes`).
		WithArgs("10.0.0.1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountByIP(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("CountByIP error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}
}

func TestResults_OrderPreserved(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"option", "count"}).
		AddRow("beach", 3).
		AddRow("cabin", 1)
	mock.ExpectQuery(`(?s)^SELECT\s+option,\s*COUNT\(\*\)`).WillReturnRows(rows)

	got, err := repo.Results(context.Background())
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	want := []models.PollResult{{Option: "beach", Count: 3}, {Option: "cabin", Count: 1}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestResults_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+option,\s*COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"option", "count"}))

	got, err := repo.Results(context.Background())
	if err != nil {
		t.Fatalf("Results error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^DELETE\s+FROM\s+votes`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^DELETE\s+FROM\s+votes`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "option", "ip_address"}).AddRow(5, "beach", "10.0.0.1"))

	got, err := repo.Delete(context.Background(), 5)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if got.ID != 5 || got.Option != "beach" || got.IPAddress != "10.0.0.1" {
		t.Fatalf("unexpected vote: %+v", got)
	}
}
