// Package web serves the Fyyur HTML pages.
package web

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fyyur/internal/app/directory"
	"fyyur/internal/app/shows"
	"fyyur/internal/models"
)

// VenueService describes the venue workflows used by the pages.
type VenueService interface {
	Areas(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (directory.SearchResult, error)
	Detail(ctx context.Context, id int64) (directory.Detail[models.Venue], error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes the artist workflows used by the pages.
type ArtistService interface {
	List(ctx context.Context) ([]models.Summary, error)
	Search(ctx context.Context, term string) (directory.SearchResult, error)
	Detail(ctx context.Context, id int64) (directory.Detail[models.Artist], error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
}

// ShowService describes show listing and booking.
type ShowService interface {
	Page(ctx context.Context, page int) (models.ShowPage, error)
	Create(ctx context.Context, in shows.Input) (models.Show, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	health  HealthChecker
	pages   map[string]*template.Template
}

// New configures a Server and parses the embedded page templates.
func New(venues VenueService, artists ArtistService, shows ShowService, health HealthChecker) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		health:  health,
		pages:   pages,
	}, nil
}

// Routes exposes the page handlers.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(s.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", staticHandler()))

	// Venue routes
	r.HandleFunc("/venues", s.handleVenues).Methods(http.MethodGet)
	r.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	r.HandleFunc("/venues/create", s.handleNewVenue).Methods(http.MethodGet)
	r.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	r.HandleFunc("/venues/{id:[0-9]+}", s.handleShowVenue).Methods(http.MethodGet)
	r.HandleFunc("/venues/{id:[0-9]+}", s.handleDeleteVenue).Methods(http.MethodDelete)
	r.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenue).Methods(http.MethodGet)
	r.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)

	// Artist routes
	r.HandleFunc("/artists", s.handleArtists).Methods(http.MethodGet)
	r.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	r.HandleFunc("/artists/create", s.handleNewArtist).Methods(http.MethodGet)
	r.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	r.HandleFunc("/artists/{id:[0-9]+}", s.handleShowArtist).Methods(http.MethodGet)
	r.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtist).Methods(http.MethodGet)
	r.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	// Show routes
	r.HandleFunc("/shows", s.handleShows).Methods(http.MethodGet)
	r.HandleFunc("/shows/create", s.handleNewShow).Methods(http.MethodGet)
	r.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", view{})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound renders the 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "404", view{})
}

// InternalError renders the 500 page.
func (s *Server) InternalError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "500", view{})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// pathID reads the numeric {id} route variable. The route pattern guarantees digits,
// so the only failure left is overflow.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
