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

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
		       website, genres, seeking_talent, seeking_description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, pq.Array(&v.Genres), &v.SeekingTalent, &v.SeekingDescription,
		&v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// CreateVenue inserts a venue and returns it with its assigned id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	var created models.Venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
		                    website, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+venueColumns,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
			venue.FacebookLink, venue.Website, pq.Array(venue.Genres), venue.SeekingTalent,
			venue.SeekingDescription)

		var err error
		created, err = scanVenue(row)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("insert venue: %w", err)
		}
		return nil
	})
	return created, err
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	v, err := scanVenue(s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("get venue: %w", err)
	}
	return v, nil
}

// UpdateVenue overwrites every mutable column of the venue. The last writer wins.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	var updated models.Venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, image_link = $6,
		    facebook_link = $7, website = $8, genres = $9, seeking_talent = $10,
		    seeking_description = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
		RETURNING `+venueColumns,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
			venue.FacebookLink, venue.Website, pq.Array(venue.Genres), venue.SeekingTalent,
			venue.SeekingDescription, id)

		var err error
		updated, err = scanVenue(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		return nil
	})
	return updated, err
}

// DeleteVenue removes a venue. Deleting an id that does not exist is a no-op.
// A venue that still has shows is kept and ErrVenueHasShows is returned.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var shows int
		if err := tx.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM shows
		WHERE venue_id = $1
	`, id).Scan(&shows); err != nil {
			return fmt.Errorf("count venue shows: %w", err)
		}
		if shows > 0 {
			return ErrVenueHasShows
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id); err != nil {
			if _, ok := foreignKeyViolation(err); ok {
				return ErrVenueHasShows
			}
			return fmt.Errorf("delete venue: %w", err)
		}
		return nil
	})
}

// ListVenueSummaries returns every venue with its upcoming show count, ordered by
// city, state and name.
func (s *Store) ListVenueSummaries(ctx context.Context, now time.Time) ([]models.Summary, error) {
	return s.summaries(ctx, venueListing, now)
}

// SearchVenues matches venue names case-insensitively.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	return s.searchByName(ctx, venueListing, term, now)
}

// ListVenueShows returns every show booked at the venue.
func (s *Store) ListVenueShows(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error) {
	return s.showHistory(ctx, venueListing, venueID)
}
