package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type seedVenue struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Website            string
	FacebookLink       string
	ImageLink          string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
}

type seedArtist struct {
	Name               string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	ImageLink          string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string
}

type seedShow struct {
	Venue     string
	Artist    string
	StartTime time.Time
}

var demoVenues = []seedVenue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?auto=format&fit=crop&w=400&q=60",
		Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?auto=format&fit=crop&w=750&q=80",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?auto=format&fit=crop&w=747&q=80",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
	},
}

var demoArtists = []seedArtist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?auto=format&fit=crop&w=300&q=80",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?auto=format&fit=crop&w=334&q=80",
		Genres:       []string{"Jazz"},
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?auto=format&fit=crop&w=794&q=80",
		Genres:    []string{"Jazz", "Classical"},
	},
}

var demoShows = []seedShow{
	{Venue: "The Musical Hop", Artist: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "Matt Quevedo", StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// seedDemoData loads the sample venues, artists and shows when no listings exist yet.
// It reports whether anything was inserted.
func seedDemoData(ctx context.Context, db *sql.DB) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"venues", "artists", "shows"} {
		exists, err := tableExists(ctx, tx, table)
		if err != nil {
			return false, fmt.Errorf("check %s table: %w", table, err)
		}
		if !exists {
			return false, nil
		}
	}

	var listings int
	if err := tx.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM venues) + (SELECT COUNT(*) FROM artists)
	`).Scan(&listings); err != nil {
		return false, fmt.Errorf("count listings: %w", err)
	}
	if listings > 0 {
		return false, nil
	}

	venueIDs := make(map[string]int64, len(demoVenues))
	for _, v := range demoVenues {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, website,
				genres, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Website,
			pq.Array(v.Genres), v.SeekingTalent, v.SeekingDescription).Scan(&id); err != nil {
			return false, fmt.Errorf("insert demo venue %q: %w", v.Name, err)
		}
		venueIDs[v.Name] = id
	}

	artistIDs := make(map[string]int64, len(demoArtists))
	for _, a := range demoArtists {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website,
				seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, a.Name, a.City, a.State, a.Phone, pq.Array(a.Genres), a.ImageLink, a.FacebookLink, a.Website,
			a.SeekingVenue, a.SeekingDescription).Scan(&id); err != nil {
			return false, fmt.Errorf("insert demo artist %q: %w", a.Name, err)
		}
		artistIDs[a.Name] = id
	}

	for _, sh := range demoShows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
		`, artistIDs[sh.Artist], venueIDs[sh.Venue], sh.StartTime); err != nil {
			return false, fmt.Errorf("insert demo show for %q at %q: %w", sh.Artist, sh.Venue, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return true, nil
}

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func tableExists(ctx context.Context, q queryRower, table string) (bool, error) {
	var name sql.NullString
	if err := q.QueryRowContext(ctx, `SELECT to_regclass($1)`, table).Scan(&name); err != nil {
		return false, err
	}
	return name.Valid, nil
}
