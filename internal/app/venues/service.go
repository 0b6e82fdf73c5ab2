package venues

import (
	"context"
	"sort"
	"time"

	"fyyur/internal/app/directory"
	"fyyur/internal/models"
)

// Store defines persistence operations for venues.
type Store interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	ListVenueSummaries(ctx context.Context, now time.Time) ([]models.Summary, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
	ListVenueShows(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error)
}

// Service coordinates venue operations. Listing, search, detail and edit come from the
// shared directory; venues add locale grouping and deletion.
type Service struct {
	*directory.Service[models.Venue]
	store Store
}

// New constructs a venues Service backed by the provided Store.
func New(store Store, opts ...directory.Option) *Service {
	return &Service{
		Service: directory.New[models.Venue](directoryStore{store}, opts...),
		store:   store,
	}
}

// Areas returns every venue grouped by city and state.
func (s *Service) Areas(ctx context.Context) ([]models.Area, error) {
	summaries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByArea(summaries), nil
}

// Delete removes the venue. Missing venues are not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}

// GroupByArea groups venues by (city, state). Groups are ordered by city then state and
// venues inside a group by name then id.
func GroupByArea(summaries []models.Summary) []models.Area {
	sorted := make([]models.Summary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.City != b.City {
			return a.City < b.City
		}
		if a.State != b.State {
			return a.State < b.State
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})

	areas := []models.Area{}
	for _, v := range sorted {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, models.Area{City: v.City, State: v.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, v)
	}
	return areas
}

// directoryStore adapts the venue Store to the shared directory.
type directoryStore struct {
	store Store
}

func (d directoryStore) Get(ctx context.Context, id int64) (models.Venue, error) {
	return d.store.GetVenue(ctx, id)
}

func (d directoryStore) Create(ctx context.Context, v models.Venue) (models.Venue, error) {
	return d.store.CreateVenue(ctx, v)
}

func (d directoryStore) Update(ctx context.Context, id int64, v models.Venue) (models.Venue, error) {
	return d.store.UpdateVenue(ctx, id, v)
}

func (d directoryStore) List(ctx context.Context, now time.Time) ([]models.Summary, error) {
	return d.store.ListVenueSummaries(ctx, now)
}

func (d directoryStore) Search(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	return d.store.SearchVenues(ctx, term, now)
}

func (d directoryStore) Shows(ctx context.Context, id int64) ([]models.ShowWithDetails, error) {
	return d.store.ListVenueShows(ctx, id)
}
