package web

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/app/directory"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrVenueNotFound) || errors.Is(err, store.ErrArtistNotFound)
}

func isValidation(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}

// fail renders the 404 page for absent records and the 500 page for anything else.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isNotFound(err) {
		s.NotFound(w, r)
		return
	}
	logging.FromContext(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")
	s.InternalError(w, r)
}

func listedMessage(rec directory.Record) string {
	return fmt.Sprintf("%s %s was successfully listed!", rec.Kind(), rec.Label())
}

func notListedMessage(rec directory.Record) string {
	return fmt.Sprintf("An error occurred. %s %s could not be listed.", rec.Kind(), rec.Label())
}

func updatedMessage(rec directory.Record) string {
	return fmt.Sprintf("%s %s was successfully updated!", rec.Kind(), rec.Label())
}

func notUpdatedMessage(rec directory.Record) string {
	return fmt.Sprintf("An error occurred. %s %s could not be updated.", rec.Kind(), rec.Label())
}

// createFailed reports a failed venue or artist listing. Field problems re-render the
// form; duplicates re-render it with a conflict; anything else falls back to the home page.
func (s *Server) createFailed(w http.ResponseWriter, r *http.Request, page string, form view, rec directory.Record, err error) {
	msg := notListedMessage(rec)
	switch {
	case isValidation(err):
		logging.FromContext(r.Context()).Info().Err(err).Str("kind", rec.Kind()).Str("label", rec.Label()).Msg("Rejected listing")
		s.render(w, r, http.StatusUnprocessableEntity, page, formPage(form, err), msg)
	case errors.Is(err, store.ErrDuplicate):
		logging.FromContext(r.Context()).Warn().Err(err).Str("kind", rec.Kind()).Str("label", rec.Label()).Msg("Duplicate listing")
		s.render(w, r, http.StatusConflict, page, formPage(form, nil), msg)
	default:
		logging.FromContext(r.Context()).Error().Err(err).Str("kind", rec.Kind()).Str("label", rec.Label()).Msg("Failed to create listing")
		s.render(w, r, http.StatusInternalServerError, "home", view{}, msg)
	}
}

// updateFailed reports a failed edit. It reports whether the response was written;
// when it was not, the caller redirects back to the detail page with a failure flash.
func (s *Server) updateFailed(w http.ResponseWriter, r *http.Request, page string, data view, rec directory.Record, err error) bool {
	switch {
	case isNotFound(err):
		s.NotFound(w, r)
		return true
	case isValidation(err):
		logging.FromContext(r.Context()).Info().Err(err).Str("kind", rec.Kind()).Str("label", rec.Label()).Msg("Rejected edit")
		s.render(w, r, http.StatusUnprocessableEntity, page, data, notUpdatedMessage(rec))
		return true
	default:
		logging.FromContext(r.Context()).Error().Err(err).Str("kind", rec.Kind()).Str("label", rec.Label()).Msg("Failed to update listing")
		setFlash(w, notUpdatedMessage(rec))
		return false
	}
}
