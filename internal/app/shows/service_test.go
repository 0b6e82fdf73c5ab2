package shows

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fyyur/internal/models"
)

type stubStore struct {
	created   []models.Show
	createErr error

	limit, offset int
	total         int
}

func (s *stubStore) CreateShow(_ context.Context, show models.Show) (models.Show, error) {
	if s.createErr != nil {
		return models.Show{}, s.createErr
	}
	show.ID = int64(len(s.created) + 1)
	s.created = append(s.created, show)
	return show, nil
}

func (s *stubStore) ListShows(_ context.Context, limit, offset int) ([]models.ShowWithDetails, int, error) {
	s.limit, s.offset = limit, offset
	return []models.ShowWithDetails{}, s.total, nil
}

func TestCreateParsesInput(t *testing.T) {
	store := &stubStore{}
	svc := New(store, 10, time.UTC)

	show, err := svc.Create(context.Background(), Input{ArtistID: "4", VenueID: " 1 ", StartTime: "2035-04-01 20:00:00"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	if show.ArtistID != 4 || show.VenueID != 1 || !show.StartTime.Equal(want) {
		t.Fatalf("unexpected show %+v", show)
	}
}

func TestCreateRejectsBadInputWithoutStoring(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantField string
	}{
		{name: "missing artist", in: Input{VenueID: "1", StartTime: "2035-04-01 20:00"}, wantField: "artist_id"},
		{name: "negative venue", in: Input{ArtistID: "4", VenueID: "-1", StartTime: "2035-04-01 20:00"}, wantField: "venue_id"},
		{name: "garbage time", in: Input{ArtistID: "4", VenueID: "1", StartTime: "next tuesday"}, wantField: "start_time"},
		{name: "empty time", in: Input{ArtistID: "4", VenueID: "1"}, wantField: "start_time"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{}
			svc := New(store, 10, time.UTC)

			_, err := svc.Create(context.Background(), tc.in)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tc.wantField]; !ok {
				t.Fatalf("expected problem on %q, got %v", tc.wantField, verr.Fields)
			}
			if len(store.created) != 0 {
				t.Fatalf("invalid show reached the store")
			}
		})
	}
}

func TestCreatePassesStoreErrors(t *testing.T) {
	unknown := errors.New("unknown artist")
	svc := New(&stubStore{createErr: unknown}, 10, time.UTC)

	_, err := svc.Create(context.Background(), Input{ArtistID: "99", VenueID: "1", StartTime: "2035-04-01T20:00"})
	if !errors.Is(err, unknown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestPageOffsets(t *testing.T) {
	tests := []struct {
		page       int
		wantPage   int
		wantOffset int
	}{
		{page: 0, wantPage: 1, wantOffset: 0},
		{page: 1, wantPage: 1, wantOffset: 0},
		{page: 3, wantPage: 3, wantOffset: 50},
		{page: math.MaxInt, wantPage: 1, wantOffset: 0},
		{page: math.MaxInt/25 + 2, wantPage: 1, wantOffset: 0},
	}

	for _, tc := range tests {
		store := &stubStore{total: 120}
		svc := New(store, 25, time.UTC)

		page, err := svc.Page(context.Background(), tc.page)
		if err != nil {
			t.Fatalf("Page error: %v", err)
		}
		if page.Page != tc.wantPage || store.offset != tc.wantOffset || store.limit != 25 {
			t.Fatalf("page %d: got page=%d limit=%d offset=%d", tc.page, page.Page, store.limit, store.offset)
		}
		if page.Total != 120 {
			t.Fatalf("expected total 120, got %d", page.Total)
		}
	}
}

func TestNewDefaultsPageSize(t *testing.T) {
	svc := New(&stubStore{}, 0, nil)
	if svc.pageSize != DefaultPageSize {
		t.Fatalf("expected default page size, got %d", svc.pageSize)
	}
}
