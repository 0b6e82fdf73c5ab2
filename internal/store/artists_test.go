package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"fyyur/internal/models"
)

var artistRowColumns = []string{
	"id", "name", "city", "state", "phone", "genres", "image_link", "facebook_link",
	"website", "seeking_venue", "seeking_description", "created_at", "updated_at",
}

func TestCreateArtistSuccess(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO artists`)).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000", sqlmock.AnyArg(),
			"", "", "", true, "Looking for shows").
		WillReturnRows(sqlmock.NewRows(artistRowColumns).AddRow(
			int64(4), "Guns N Petals", "San Francisco", "CA", "326-123-5000", "{\"Rock n Roll\"}",
			"", "", "", true, "Looking for shows", now, now))
	mock.ExpectCommit()

	got, err := s.CreateArtist(context.Background(), models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows",
	})
	if err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("expected artist ID 4, got %d", got.ID)
	}
	if len(got.Genres) != 1 || got.Genres[0] != "Rock n Roll" {
		t.Fatalf("unexpected genres %v", got.Genres)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateArtistRollsBackOnInsertFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO artists`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := s.CreateArtist(context.Background(), models.Artist{Name: "Artist A", Genres: []string{"Jazz"}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrDuplicate) {
		t.Fatalf("generic failure should not map to ErrDuplicate")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateArtistDuplicateNameInCity(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO artists`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "artists_name_city_state_key"})
	mock.ExpectRollback()

	_, err := s.CreateArtist(context.Background(), models.Artist{Name: "Guns N Petals", Genres: []string{"Rock n Roll"}})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetArtistNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM artists`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(artistRowColumns))

	_, err := s.GetArtist(context.Background(), 42)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistNotFoundRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE artists`)).
		WillReturnRows(sqlmock.NewRows(artistRowColumns))
	mock.ExpectRollback()

	_, err := s.UpdateArtist(context.Background(), 7, models.Artist{Name: "Renamed"})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchArtistsEscapesTerm(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.name ILIKE $2 ESCAPE '\'`)).
		WithArgs(now, `%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(int64(6), "The Wild Sax Band 100%", "San Francisco", "CA", 2))

	got, err := s.SearchArtists(context.Background(), "100%", now)
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}
	if len(got) != 1 || got[0].NumUpcomingShows != 2 {
		t.Fatalf("unexpected results %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListArtistSummariesOrdersByName(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY r.name, r.id`)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(int64(4), "Guns N Petals", "San Francisco", "CA", 0).
			AddRow(int64(5), "Matt Quevedo", "New York", "NY", 1))

	got, err := s.ListArtistSummaries(context.Background(), now)
	if err != nil {
		t.Fatalf("ListArtistSummaries error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Guns N Petals" {
		t.Fatalf("unexpected summaries %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
