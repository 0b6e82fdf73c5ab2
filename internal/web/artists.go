package web

import (
	"fmt"
	"net/http"

	"fyyur/internal/logging"
	"fyyur/internal/models"
)

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artists", view{"artists": summariesView(artists)})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	result, err := s.artists.Search(r.Context(), r.PostFormValue("search_term"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search_artists", searchView(result))
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "show_artist", view{"artist": artistDetailView(detail)})
}

func (s *Server) handleNewArtist(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_artist", formPage(artistForm(models.Artist{}), nil))
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := parseArtistForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	created, err := s.artists.Create(r.Context(), artist)
	if err != nil {
		s.createFailed(w, r, "new_artist", artistForm(artist), artist, err)
		return
	}

	logging.FromContext(r.Context()).Info().Int64("artist_id", created.ID).Str("name", created.Name).Msg("Artist listed")
	s.render(w, r, http.StatusOK, "home", view{}, listedMessage(created))
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data := formPage(artistForm(artist), nil)
	data["artist"] = view{"id": artist.ID, "name": artist.Name}
	s.render(w, r, http.StatusOK, "edit_artist", data)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	artist, err := parseArtistForm(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	detailURL := fmt.Sprintf("/artists/%d", id)
	updated, err := s.artists.Update(r.Context(), id, artist)
	if err != nil {
		data := formPage(artistForm(artist), err)
		data["artist"] = view{"id": id, "name": artist.Name}
		if !s.updateFailed(w, r, "edit_artist", data, artist, err) {
			http.Redirect(w, r, detailURL, http.StatusSeeOther)
		}
		return
	}

	logging.FromContext(r.Context()).Info().Int64("artist_id", updated.ID).Msg("Artist updated")
	setFlash(w, updatedMessage(updated))
	http.Redirect(w, r, detailURL, http.StatusSeeOther)
}
