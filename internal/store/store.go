package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrVenueNotFound indicates the venue id does not resolve to a row.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound indicates the artist id does not resolve to a row.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrVenueHasShows blocks deleting a venue that shows still reference.
	ErrVenueHasShows = errors.New("venue has booked shows")
	// ErrUnknownArtist rejects a show whose artist_id has no artist.
	ErrUnknownArtist = errors.New("show references an unknown artist")
	// ErrUnknownVenue rejects a show whose venue_id has no venue.
	ErrUnknownVenue = errors.New("show references an unknown venue")
	// ErrDuplicate signals a uniqueness violation reported by the database.
	ErrDuplicate = errors.New("record already exists")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx runs fn inside a transaction. The transaction commits when fn returns nil and
// is rolled back on any error, including a failed commit.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// foreignKeyViolation returns the violated constraint name, if err is a foreign key violation.
func foreignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern that matches it anywhere,
// treating LIKE wildcards in the term literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}
