package models

import "time"

// Show books one artist at one venue at one point in time.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

// ShowWithDetails includes the names and images of both sides of the booking.
// Populated via JOIN queries.
type ShowWithDetails struct {
	Show
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
}

// Summary is the short form of a venue or artist used by listings and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Upcoming reports whether the show starts strictly after now.
func (s Show) Upcoming(now time.Time) bool { return s.StartTime.After(now) }

// Past reports whether the show started strictly before now.
func (s Show) Past(now time.Time) bool { return s.StartTime.Before(now) }

// ShowPage is one page of the show listing.
type ShowPage struct {
	Shows    []ShowWithDetails `json:"shows"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int               `json:"total"`
}

// HasNext reports whether a later page exists.
func (p ShowPage) HasNext() bool {
	if p.PageSize <= 0 {
		return false
	}
	return p.Page < (p.Total+p.PageSize-1)/p.PageSize
}

// HasPrev reports whether an earlier page exists.
func (p ShowPage) HasPrev() bool { return p.Page > 1 }
