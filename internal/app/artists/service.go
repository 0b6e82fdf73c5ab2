package artists

import (
	"context"
	"time"

	"fyyur/internal/app/directory"
	"fyyur/internal/models"
)

// Store defines persistence operations for artists.
type Store interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	ListArtistSummaries(ctx context.Context, now time.Time) ([]models.Summary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
	ListArtistShows(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error)
}

// Service coordinates artist operations.
type Service struct {
	*directory.Service[models.Artist]
}

// New constructs an artists Service backed by the supplied Store.
func New(store Store, opts ...directory.Option) *Service {
	return &Service{Service: directory.New[models.Artist](directoryStore{store}, opts...)}
}

type directoryStore struct {
	store Store
}

func (d directoryStore) Get(ctx context.Context, id int64) (models.Artist, error) {
	return d.store.GetArtist(ctx, id)
}

func (d directoryStore) Create(ctx context.Context, a models.Artist) (models.Artist, error) {
	return d.store.CreateArtist(ctx, a)
}

func (d directoryStore) Update(ctx context.Context, id int64, a models.Artist) (models.Artist, error) {
	return d.store.UpdateArtist(ctx, id, a)
}

func (d directoryStore) List(ctx context.Context, now time.Time) ([]models.Summary, error) {
	return d.store.ListArtistSummaries(ctx, now)
}

func (d directoryStore) Search(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	return d.store.SearchArtists(ctx, term, now)
}

func (d directoryStore) Shows(ctx context.Context, id int64) ([]models.ShowWithDetails, error) {
	return d.store.ListArtistShows(ctx, id)
}
