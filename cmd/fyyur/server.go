package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/http/middleware"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func newHTTPHandler(cfg *config.Config, logger zerolog.Logger, dataStore *store.Store) (http.Handler, error) {
	venueSvc := venues.New(dataStore)
	artistSvc := artists.New(dataStore)
	showSvc := shows.New(dataStore, cfg.ShowsPageSize, time.Local)

	srv, err := web.New(venueSvc, artistSvc, showSvc, dataStore)
	if err != nil {
		return nil, err
	}

	var handler http.Handler = srv.Routes()
	handler = middleware.Recovery(http.HandlerFunc(srv.InternalError))(handler)
	handler = middleware.RequestLogging(logger)(handler)
	return handler, nil
}
