// Package directory implements the listing, search, detail and edit workflows that
// venues and artists share.
package directory

import (
	"context"
	"strings"
	"time"

	"fyyur/internal/models"
)

// Record is a listable, searchable and editable record type.
type Record interface {
	Label() string
	Kind() string
	Validate() error
}

// Store defines the persistence operations the directory needs for one record type.
type Store[T Record] interface {
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int64, rec T) (T, error)
	List(ctx context.Context, now time.Time) ([]models.Summary, error)
	Search(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
	Shows(ctx context.Context, id int64) ([]models.ShowWithDetails, error)
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Term  string
	Count int
	Data  []models.Summary
}

// Detail is a record together with its show history split around the evaluation time.
type Detail[T Record] struct {
	Record        T
	PastShows     []models.ShowWithDetails
	UpcomingShows []models.ShowWithDetails
}

// Option configures a Service.
type Option func(*settings)

type settings struct {
	now func() time.Time
}

// WithClock overrides the time source used to split past and upcoming shows.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// Service coordinates directory operations for one record type.
type Service[T Record] struct {
	store Store[T]
	now   func() time.Time
}

// New constructs a directory Service backed by the provided Store.
func New[T Record](store Store[T], opts ...Option) *Service[T] {
	cfg := settings{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Service[T]{store: store, now: cfg.now}
}

func (s *Service[T]) List(ctx context.Context) ([]models.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.List(ctx, s.now())
}

func (s *Service[T]) Search(ctx context.Context, term string) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}
	term = strings.TrimSpace(term)
	matches, err := s.store.Search(ctx, term, s.now())
	if err != nil {
		return SearchResult{}, err
	}
	if matches == nil {
		matches = []models.Summary{}
	}
	return SearchResult{Term: term, Count: len(matches), Data: matches}, nil
}

func (s *Service[T]) Get(ctx context.Context, id int64) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return s.store.Get(ctx, id)
}

// Detail loads the record and partitions its shows using a single evaluation time.
func (s *Service[T]) Detail(ctx context.Context, id int64) (Detail[T], error) {
	if err := ctx.Err(); err != nil {
		return Detail[T]{}, err
	}

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Detail[T]{}, err
	}

	shows, err := s.store.Shows(ctx, id)
	if err != nil {
		return Detail[T]{}, err
	}

	past, upcoming := Partition(shows, s.now())
	return Detail[T]{Record: rec, PastShows: past, UpcomingShows: upcoming}, nil
}

// Create validates the record and stores it. Invalid records never reach the store.
func (s *Service[T]) Create(ctx context.Context, rec T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	if err := rec.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return s.store.Create(ctx, rec)
}

// Update overwrites the stored record with the same id. A missing id is reported
// before the submitted values are validated.
func (s *Service[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		var zero T
		return zero, err
	}
	if err := rec.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return s.store.Update(ctx, id, rec)
}

// Partition splits shows into those that started strictly before now and those that
// start strictly after it. A show starting exactly at now is in neither bucket.
func Partition(shows []models.ShowWithDetails, now time.Time) (past, upcoming []models.ShowWithDetails) {
	past = []models.ShowWithDetails{}
	upcoming = []models.ShowWithDetails{}
	for _, sh := range shows {
		switch {
		case sh.Past(now):
			past = append(past, sh)
		case sh.Upcoming(now):
			upcoming = append(upcoming, sh)
		}
	}
	return past, upcoming
}
