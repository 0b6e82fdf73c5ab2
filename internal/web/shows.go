package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fyyur/internal/app/shows"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

const (
	showListed    = "Show was successfully listed!"
	showNotListed = "An error occurred. Show could not be listed."
)

func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	// Page numbers outside int32 fall back to the first page.
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32)
	if err != nil || page < 1 {
		page = 1
	}

	result, err := s.shows.Page(r.Context(), int(page))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "shows", showsPageView(result))
}

func showFormPage(in shows.Input, errs map[string]string) view {
	if errs == nil {
		errs = map[string]string{}
	}
	return view{
		"form": view{
			"artist_id":  in.ArtistID,
			"venue_id":   in.VenueID,
			"start_time": in.StartTime,
		},
		"errors": errs,
	}
}

func (s *Server) handleNewShow(w http.ResponseWriter, r *http.Request) {
	in := shows.Input{StartTime: time.Now().Format("2006-01-02 15:04:05")}
	s.render(w, r, http.StatusOK, "new_show", showFormPage(in, nil))
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	in := shows.Input{
		ArtistID:  formValue(r, "artist_id"),
		VenueID:   formValue(r, "venue_id"),
		StartTime: formValue(r, "start_time"),
	}

	show, err := s.shows.Create(r.Context(), in)
	if err != nil {
		logger := logging.FromContext(r.Context())
		switch {
		case isValidation(err):
			logger.Info().Err(err).Msg("Rejected show booking")
			s.render(w, r, http.StatusUnprocessableEntity, "new_show", showFormPage(in, fieldErrors(err)), showNotListed)
		case errors.Is(err, store.ErrUnknownArtist):
			logger.Info().Err(err).Str("artist_id", in.ArtistID).Msg("Rejected show booking")
			s.render(w, r, http.StatusUnprocessableEntity, "new_show",
				showFormPage(in, map[string]string{"artist_id": "does not match a listed artist"}), showNotListed)
		case errors.Is(err, store.ErrUnknownVenue):
			logger.Info().Err(err).Str("venue_id", in.VenueID).Msg("Rejected show booking")
			s.render(w, r, http.StatusUnprocessableEntity, "new_show",
				showFormPage(in, map[string]string{"venue_id": "does not match a listed venue"}), showNotListed)
		default:
			logger.Error().Err(err).Msg("Failed to create show")
			s.render(w, r, http.StatusInternalServerError, "home", view{}, showNotListed)
		}
		return
	}

	logging.FromContext(r.Context()).Info().
		Int64("show_id", show.ID).
		Int64("artist_id", show.ArtistID).
		Int64("venue_id", show.VenueID).
		Msg("Show listed")
	s.render(w, r, http.StatusOK, "home", view{}, showListed)
}
