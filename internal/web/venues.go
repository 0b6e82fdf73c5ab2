package web

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func (s *Server) handleVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Areas(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venues", view{"areas": areasView(areas)})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	result, err := s.venues.Search(r.Context(), r.PostFormValue("search_term"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search_venues", searchView(result))
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "show_venue", view{"venue": venueDetailView(detail)})
}

func (s *Server) handleNewVenue(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_venue", formPage(venueForm(models.Venue{}), nil))
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := parseVenueForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	created, err := s.venues.Create(r.Context(), venue)
	if err != nil {
		s.createFailed(w, r, "new_venue", venueForm(venue), venue, err)
		return
	}

	logging.FromContext(r.Context()).Info().Int64("venue_id", created.ID).Str("name", created.Name).Msg("Venue listed")
	s.render(w, r, http.StatusOK, "home", view{}, listedMessage(created))
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data := formPage(venueForm(venue), nil)
	data["venue"] = view{"id": venue.ID, "name": venue.Name}
	s.render(w, r, http.StatusOK, "edit_venue", data)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	venue, err := parseVenueForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	detailURL := fmt.Sprintf("/venues/%d", id)
	updated, err := s.venues.Update(r.Context(), id, venue)
	if err != nil {
		data := formPage(venueForm(venue), err)
		data["venue"] = view{"id": id, "name": venue.Name}
		if !s.updateFailed(w, r, "edit_venue", data, venue, err) {
			http.Redirect(w, r, detailURL, http.StatusSeeOther)
		}
		return
	}

	logging.FromContext(r.Context()).Info().Int64("venue_id", updated.ID).Msg("Venue updated")
	setFlash(w, updatedMessage(updated))
	http.Redirect(w, r, detailURL, http.StatusSeeOther)
}

// handleDeleteVenue answers the venue page's delete button. Deleting a venue that no
// longer exists succeeds; one that still hosts shows is refused.
func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	err := s.venues.Delete(r.Context(), id)
	switch {
	case err == nil:
		logging.FromContext(r.Context()).Info().Int64("venue_id", id).Msg("Venue deleted")
		setFlash(w, "Venue was successfully deleted.")
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, store.ErrVenueHasShows):
		http.Error(w, "venue still has shows", http.StatusConflict)
	default:
		logging.FromContext(r.Context()).Error().Err(err).Int64("venue_id", id).Msg("Failed to delete venue")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
