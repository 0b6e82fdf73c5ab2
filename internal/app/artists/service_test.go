package artists

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/app/directory"
	"fyyur/internal/models"
)

type stubStore struct {
	showsFor []int64
	shows    []models.ShowWithDetails
}

func (s *stubStore) CreateArtist(_ context.Context, a models.Artist) (models.Artist, error) {
	a.ID = 1
	return a, nil
}

func (s *stubStore) GetArtist(_ context.Context, id int64) (models.Artist, error) {
	return models.Artist{ID: id, Name: "Guns N Petals"}, nil
}

func (s *stubStore) UpdateArtist(_ context.Context, id int64, a models.Artist) (models.Artist, error) {
	a.ID = id
	return a, nil
}

func (s *stubStore) ListArtistSummaries(context.Context, time.Time) ([]models.Summary, error) {
	return nil, nil
}

func (s *stubStore) SearchArtists(context.Context, string, time.Time) ([]models.Summary, error) {
	return nil, nil
}

func (s *stubStore) ListArtistShows(_ context.Context, artistID int64) ([]models.ShowWithDetails, error) {
	s.showsFor = append(s.showsFor, artistID)
	return s.shows, nil
}

func TestDetailLoadsShowsByArtistID(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := &stubStore{shows: []models.ShowWithDetails{
		{Show: models.Show{ID: 1, ArtistID: 4, VenueID: 1, StartTime: now.AddDate(-1, 0, 0)}, VenueName: "The Musical Hop"},
		{Show: models.Show{ID: 2, ArtistID: 4, VenueID: 3, StartTime: now.AddDate(1, 0, 0)}, VenueName: "Park Square Live Music & Coffee"},
	}}
	svc := New(store, directory.WithClock(func() time.Time { return now }))

	detail, err := svc.Detail(context.Background(), 4)
	if err != nil {
		t.Fatalf("Detail error: %v", err)
	}
	if len(store.showsFor) != 1 || store.showsFor[0] != 4 {
		t.Fatalf("shows loaded for %v, want [4]", store.showsFor)
	}
	if len(detail.PastShows) != 1 || len(detail.UpcomingShows) != 1 {
		t.Fatalf("unexpected partition past=%d upcoming=%d", len(detail.PastShows), len(detail.UpcomingShows))
	}
	if detail.UpcomingShows[0].VenueName != "Park Square Live Music & Coffee" {
		t.Fatalf("unexpected upcoming show %+v", detail.UpcomingShows[0])
	}
}

func TestUpdateKeepsID(t *testing.T) {
	svc := New(&stubStore{})
	got, err := svc.Update(context.Background(), 9, models.Artist{
		Name: "Matt Quevedo", City: "New York", State: "NY", Genres: []string{"Jazz"},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("expected id 9, got %d", got.ID)
	}
}
