package main

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectTables(mock sqlmock.Sqlmock) {
	for _, table := range []string{"venues", "artists", "shows"} {
		mock.ExpectQuery(`SELECT to_regclass\(\$1\)`).
			WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"to_regclass"}).AddRow(table))
	}
}

func TestSeedDemoDataSkipsWhenListingsExist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	expectTables(mock)
	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM venues\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	seeded, err := seedDemoData(context.Background(), db)
	if err != nil {
		t.Fatalf("seedDemoData: %v", err)
	}
	if seeded {
		t.Fatalf("expected no seeding when listings exist")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedDemoDataSkipsWithoutSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT to_regclass\(\$1\)`).
		WithArgs("venues").
		WillReturnRows(sqlmock.NewRows([]string{"to_regclass"}).AddRow(nil))
	mock.ExpectRollback()

	seeded, err := seedDemoData(context.Background(), db)
	if err != nil || seeded {
		t.Fatalf("expected silent skip, got seeded=%v err=%v", seeded, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedDemoDataInsertsFixtures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	expectTables(mock)
	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM venues\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := range demoVenues {
		mock.ExpectQuery(`INSERT INTO venues`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}
	for i := range demoArtists {
		mock.ExpectQuery(`INSERT INTO artists`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 4)))
	}
	// The Wild Sax Band (artist 6) plays Park Square (venue 3) three times.
	mock.ExpectExec(`INSERT INTO shows`).WithArgs(int64(4), int64(1), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO shows`).WithArgs(int64(5), int64(3), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(2, 1))
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO shows`).WithArgs(int64(6), int64(3), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(int64(3+i), 1))
	}
	mock.ExpectCommit()

	seeded, err := seedDemoData(context.Background(), db)
	if err != nil {
		t.Fatalf("seedDemoData: %v", err)
	}
	if !seeded {
		t.Fatalf("expected fixtures to be inserted")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedDemoDataRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	expectTables(mock)
	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM venues\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO venues`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := seedDemoData(context.Background(), db); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
