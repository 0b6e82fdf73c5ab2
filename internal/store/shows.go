package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"fyyur/internal/models"
)

// CreateShow books an artist at a venue. Both ids must resolve to existing rows;
// otherwise ErrUnknownArtist or ErrUnknownVenue is returned and nothing is written.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	created := show
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var artistExists, venueExists bool
		if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1),
		       EXISTS (SELECT 1 FROM venues WHERE id = $2)
	`, show.ArtistID, show.VenueID).Scan(&artistExists, &venueExists); err != nil {
			return fmt.Errorf("check show references: %w", err)
		}
		if !artistExists {
			return ErrUnknownArtist
		}
		if !venueExists {
			return ErrUnknownVenue
		}

		err := tx.QueryRowContext(ctx, `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, show.ArtistID, show.VenueID, show.StartTime).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			if constraint, ok := foreignKeyViolation(err); ok {
				if strings.Contains(constraint, "artist") {
					return ErrUnknownArtist
				}
				return ErrUnknownVenue
			}
			return fmt.Errorf("insert show: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Show{}, err
	}
	return created, nil
}

// ListShows returns one page of every show joined with its artist and venue,
// ordered by start time, plus the total number of shows.
func (s *Store) ListShows(ctx context.Context, limit, offset int) ([]models.ShowWithDetails, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count shows: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT sh.id, sh.artist_id, sh.venue_id, sh.start_time, sh.created_at,
		       a.name, a.image_link, v.name, v.image_link
		FROM shows sh
		INNER JOIN artists a ON a.id = sh.artist_id
		INNER JOIN venues v ON v.id = sh.venue_id
		ORDER BY sh.start_time ASC, sh.id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list shows: %w", err)
	}

	shows, err := scanShows(rows)
	if err != nil {
		return nil, 0, err
	}
	return shows, total, nil
}
