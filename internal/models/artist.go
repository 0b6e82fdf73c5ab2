package models

import "time"

// Artist represents a performer.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone,omitempty"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Website            string    `json:"website,omitempty"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (a Artist) Label() string { return a.Name }

func (Artist) Kind() string { return "Artist" }

// Validate checks the fields an artist listing needs before it is stored.
func (a Artist) Validate() error {
	verr := &ValidationError{}
	requireText(verr, "name", a.Name)
	requireText(verr, "city", a.City)
	requireState(verr, a.State)
	checkPhone(verr, a.Phone)
	requireGenres(verr, a.Genres)
	checkLink(verr, "image_link", a.ImageLink)
	checkLink(verr, "facebook_link", a.FacebookLink)
	checkLink(verr, "website", a.Website)
	return verr.OrNil()
}
