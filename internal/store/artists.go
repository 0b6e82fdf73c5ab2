package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
		       website, seeking_venue, seeking_description, created_at, updated_at`

func scanArtist(row rowScanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres), &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// CreateArtist inserts an artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	var created models.Artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
		                     website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+artistColumns,
			artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
			artist.ImageLink, artist.FacebookLink, artist.Website, artist.SeekingVenue,
			artist.SeekingDescription)

		var err error
		created, err = scanArtist(row)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("insert artist: %w", err)
		}
		return nil
	})
	return created, err
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	a, err := scanArtist(s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("get artist: %w", err)
	}
	return a, nil
}

// UpdateArtist overwrites every mutable column of the artist. The last writer wins.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	var updated models.Artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5, image_link = $6,
		    facebook_link = $7, website = $8, seeking_venue = $9, seeking_description = $10,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING `+artistColumns,
			artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
			artist.ImageLink, artist.FacebookLink, artist.Website, artist.SeekingVenue,
			artist.SeekingDescription, id)

		var err error
		updated, err = scanArtist(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		if err != nil {
			return fmt.Errorf("update artist: %w", err)
		}
		return nil
	})
	return updated, err
}

// ListArtistSummaries returns every artist ordered by name.
func (s *Store) ListArtistSummaries(ctx context.Context, now time.Time) ([]models.Summary, error) {
	return s.summaries(ctx, artistListing, now)
}

// SearchArtists matches artist names case-insensitively.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	return s.searchByName(ctx, artistListing, term, now)
}

// ListArtistShows returns every show the artist is booked for.
func (s *Store) ListArtistShows(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error) {
	return s.showHistory(ctx, artistListing, artistID)
}
