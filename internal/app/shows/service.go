package shows

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/models"
)

// DefaultPageSize is used when the service is built with a non-positive page size.
const DefaultPageSize = 20

// startTimeLayouts are the accepted spellings of a show start time, tried in order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// Store defines persistence operations for shows.
type Store interface {
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	ListShows(ctx context.Context, limit, offset int) ([]models.ShowWithDetails, int, error)
}

// Input is a show booking as submitted, before parsing.
type Input struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

// Service coordinates show booking and listing.
type Service struct {
	store    Store
	pageSize int
	loc      *time.Location
}

// New constructs a shows Service. Start times without a zone are read in loc.
func New(store Store, pageSize int, loc *time.Location) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, pageSize: pageSize, loc: loc}
}

// Page returns one page of shows. Pages are 1-based. Anything below 1, or so large
// that its offset would overflow, is treated as 1.
func (s *Service) Page(ctx context.Context, page int) (models.ShowPage, error) {
	if err := ctx.Err(); err != nil {
		return models.ShowPage{}, err
	}
	if page < 1 || page-1 > math.MaxInt/s.pageSize {
		page = 1
	}

	shows, total, err := s.store.ListShows(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return models.ShowPage{}, err
	}
	return models.ShowPage{Shows: shows, Page: page, PageSize: s.pageSize, Total: total}, nil
}

// Create parses and validates the booking, then stores it. Unknown artist or venue ids
// are reported by the store.
func (s *Service) Create(ctx context.Context, in Input) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}

	show, err := s.Parse(in)
	if err != nil {
		return models.Show{}, err
	}
	return s.store.CreateShow(ctx, show)
}

// Parse turns submitted form values into a Show, collecting every field problem.
func (s *Service) Parse(in Input) (models.Show, error) {
	verr := &models.ValidationError{}
	var show models.Show

	show.ArtistID = parseID(verr, "artist_id", in.ArtistID)
	show.VenueID = parseID(verr, "venue_id", in.VenueID)

	start, err := ParseStartTime(in.StartTime, s.loc)
	if err != nil {
		verr.Add("start_time", err.Error())
	}
	show.StartTime = start

	if err := verr.OrNil(); err != nil {
		return models.Show{}, err
	}
	return show, nil
}

func parseID(verr *models.ValidationError, field, raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "is required")
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		verr.Add(field, "must be a positive number")
		return 0
	}
	return id
}

type startTimeError string

func (e startTimeError) Error() string { return string(e) }

// ParseStartTime accepts the layouts produced by the booking form and by datetime-local inputs.
func ParseStartTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, startTimeError("is required")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, startTimeError("must look like 2006-01-02 15:04:05")
}
