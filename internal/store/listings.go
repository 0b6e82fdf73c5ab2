package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fyyur/internal/models"
)

// listing describes how venues and artists share the summary and show-history queries.
// Every field is a trusted identifier, never user input.
type listing struct {
	table   string
	fk      string
	orderBy string
}

var (
	venueListing  = listing{table: "venues", fk: "venue_id", orderBy: "r.city, r.state, r.name, r.id"}
	artistListing = listing{table: "artists", fk: "artist_id", orderBy: "r.name, r.id"}
)

func (l listing) summaryQuery(where string) string {
	return fmt.Sprintf(`
		SELECT r.id, r.name, r.city, r.state,
		       COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS num_upcoming_shows
		FROM %s r
		LEFT JOIN shows sh ON sh.%s = r.id
		%s
		GROUP BY r.id
		ORDER BY %s
	`, l.table, l.fk, where, l.orderBy)
}

// summaries lists every row of the listing with its upcoming show count as of now.
func (s *Store) summaries(ctx context.Context, l listing, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, l.summaryQuery(""), now)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", l.table, err)
	}
	return scanSummaries(rows, l.table)
}

// searchByName matches term case-insensitively anywhere in the name.
func (s *Store) searchByName(ctx context.Context, l listing, term string, now time.Time) ([]models.Summary, error) {
	query := l.summaryQuery(`WHERE r.name ILIKE $2 ESCAPE '\'`)
	rows, err := s.db.QueryContext(ctx, query, now, containsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", l.table, err)
	}
	return scanSummaries(rows, l.table)
}

func scanSummaries(rows *sql.Rows, table string) ([]models.Summary, error) {
	defer rows.Close()

	summaries := []models.Summary{}
	for rows.Next() {
		var sum models.Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.City, &sum.State, &sum.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan %s summary: %w", table, err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return summaries, nil
}

// showHistory returns every show of one venue or artist joined with both counterparts,
// ordered by start time.
func (s *Store) showHistory(ctx context.Context, l listing, id int64) ([]models.ShowWithDetails, error) {
	query := fmt.Sprintf(`
		SELECT sh.id, sh.artist_id, sh.venue_id, sh.start_time, sh.created_at,
		       a.name, a.image_link, v.name, v.image_link
		FROM shows sh
		INNER JOIN artists a ON a.id = sh.artist_id
		INNER JOIN venues v ON v.id = sh.venue_id
		WHERE sh.%s = $1
		ORDER BY sh.start_time ASC, sh.id ASC
	`, l.fk)

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list shows by %s: %w", l.fk, err)
	}
	return scanShows(rows)
}

func scanShows(rows *sql.Rows) ([]models.ShowWithDetails, error) {
	defer rows.Close()

	shows := []models.ShowWithDetails{}
	for rows.Next() {
		var sh models.ShowWithDetails
		if err := rows.Scan(
			&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartTime, &sh.CreatedAt,
			&sh.ArtistName, &sh.ArtistImageLink, &sh.VenueName, &sh.VenueImageLink,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}
