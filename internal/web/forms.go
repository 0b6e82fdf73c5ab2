package web

import (
	"errors"
	"net/http"
	"strings"

	"fyyur/internal/models"
)

// genreChoices are offered on the venue and artist forms.
var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID", "IL",
	"IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC",
	"ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI", "SC", "SD",
	"TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// formChecked interprets checkbox and boolean select values.
func formChecked(r *http.Request, key string) bool {
	switch strings.ToLower(formValue(r, key)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}

func parseVenueForm(r *http.Request) (models.Venue, error) {
	if err := r.ParseForm(); err != nil {
		return models.Venue{}, err
	}
	return models.Venue{
		Name:               formValue(r, "name"),
		City:               formValue(r, "city"),
		State:              strings.ToUpper(formValue(r, "state")),
		Address:            formValue(r, "address"),
		Phone:              formValue(r, "phone"),
		ImageLink:          formValue(r, "image_link"),
		FacebookLink:       formValue(r, "facebook_link"),
		Website:            formValue(r, "website"),
		Genres:             models.NormalizeGenres(r.PostForm["genres"]),
		SeekingTalent:      formChecked(r, "seeking_talent"),
		SeekingDescription: formValue(r, "seeking_description"),
	}, nil
}

func parseArtistForm(r *http.Request) (models.Artist, error) {
	if err := r.ParseForm(); err != nil {
		return models.Artist{}, err
	}
	return models.Artist{
		Name:               formValue(r, "name"),
		City:               formValue(r, "city"),
		State:              strings.ToUpper(formValue(r, "state")),
		Phone:              formValue(r, "phone"),
		ImageLink:          formValue(r, "image_link"),
		FacebookLink:       formValue(r, "facebook_link"),
		Website:            formValue(r, "website"),
		Genres:             models.NormalizeGenres(r.PostForm["genres"]),
		SeekingVenue:       formChecked(r, "seeking_venue"),
		SeekingDescription: formValue(r, "seeking_description"),
	}, nil
}

// venueForm pre-populates the venue form field by field from a record.
func venueForm(v models.Venue) view {
	return view{
		"name":                v.Name,
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"image_link":          v.ImageLink,
		"facebook_link":       v.FacebookLink,
		"website":             v.Website,
		"genres":              v.Genres,
		"seeking":             v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}

func artistForm(a models.Artist) view {
	return view{
		"name":                a.Name,
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"image_link":          a.ImageLink,
		"facebook_link":       a.FacebookLink,
		"website":             a.Website,
		"genres":              a.Genres,
		"seeking":             a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}

// formPage assembles the context shared by every venue and artist form page.
func formPage(form view, err error) view {
	return view{
		"form":          form,
		"errors":        fieldErrors(err),
		"genre_choices": genreChoices,
		"state_choices": stateChoices,
	}
}

func fieldErrors(err error) map[string]string {
	var verr *models.ValidationError
	if errors.As(err, &verr) && verr.Fields != nil {
		return verr.Fields
	}
	return map[string]string{}
}
