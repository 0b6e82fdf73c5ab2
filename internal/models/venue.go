package models

import "time"

// Venue represents a bookable location.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Website            string    `json:"website,omitempty"`
	Genres             []string  `json:"genres"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Label is the name used in listings and notifications.
func (v Venue) Label() string { return v.Name }

// Kind names the record type in user-facing messages.
func (Venue) Kind() string { return "Venue" }

// Validate checks the fields a venue listing needs before it is stored.
func (v Venue) Validate() error {
	verr := &ValidationError{}
	requireText(verr, "name", v.Name)
	requireText(verr, "city", v.City)
	requireState(verr, v.State)
	requireText(verr, "address", v.Address)
	checkPhone(verr, v.Phone)
	requireGenres(verr, v.Genres)
	checkLink(verr, "image_link", v.ImageLink)
	checkLink(verr, "facebook_link", v.FacebookLink)
	checkLink(verr, "website", v.Website)
	return verr.OrNil()
}

// Area groups venues that share a city and state.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}
