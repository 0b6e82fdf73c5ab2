package web

import (
	"fyyur/internal/app/directory"
	"fyyur/internal/models"
)

func summaryView(s models.Summary) view {
	return view{
		"id":                 s.ID,
		"name":               s.Name,
		"num_upcoming_shows": s.NumUpcomingShows,
	}
}

func summariesView(summaries []models.Summary) []view {
	out := make([]view, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryView(s))
	}
	return out
}

func areasView(areas []models.Area) []view {
	out := make([]view, 0, len(areas))
	for _, a := range areas {
		out = append(out, view{
			"city":   a.City,
			"state":  a.State,
			"venues": summariesView(a.Venues),
		})
	}
	return out
}

func searchView(result directory.SearchResult) view {
	return view{
		"search_term": result.Term,
		"results": view{
			"count": result.Count,
			"data":  summariesView(result.Data),
		},
	}
}

// artistAppearances lists shows from a venue's point of view.
func artistAppearances(shows []models.ShowWithDetails) []view {
	out := make([]view, 0, len(shows))
	for _, sh := range shows {
		out = append(out, view{
			"artist_id":         sh.ArtistID,
			"artist_name":       sh.ArtistName,
			"artist_image_link": sh.ArtistImageLink,
			"start_time":        FormatDateTime(sh.StartTime, "full"),
		})
	}
	return out
}

// venueAppearances lists shows from an artist's point of view.
func venueAppearances(shows []models.ShowWithDetails) []view {
	out := make([]view, 0, len(shows))
	for _, sh := range shows {
		out = append(out, view{
			"venue_id":         sh.VenueID,
			"venue_name":       sh.VenueName,
			"venue_image_link": sh.VenueImageLink,
			"start_time":       FormatDateTime(sh.StartTime, "full"),
		})
	}
	return out
}

func venueDetailView(d directory.Detail[models.Venue]) view {
	v := d.Record
	return view{
		"id":                   v.ID,
		"name":                 v.Name,
		"genres":               v.Genres,
		"address":              v.Address,
		"city":                 v.City,
		"state":                v.State,
		"phone":                v.Phone,
		"website":              v.Website,
		"facebook_link":        v.FacebookLink,
		"seeking_talent":       v.SeekingTalent,
		"seeking_description":  v.SeekingDescription,
		"image_link":           v.ImageLink,
		"past_shows":           artistAppearances(d.PastShows),
		"upcoming_shows":       artistAppearances(d.UpcomingShows),
		"past_shows_count":     len(d.PastShows),
		"upcoming_shows_count": len(d.UpcomingShows),
	}
}

func artistDetailView(d directory.Detail[models.Artist]) view {
	a := d.Record
	return view{
		"id":                   a.ID,
		"name":                 a.Name,
		"genres":               a.Genres,
		"city":                 a.City,
		"state":                a.State,
		"phone":                a.Phone,
		"website":              a.Website,
		"facebook_link":        a.FacebookLink,
		"seeking_venue":        a.SeekingVenue,
		"seeking_description":  a.SeekingDescription,
		"image_link":           a.ImageLink,
		"past_shows":           venueAppearances(d.PastShows),
		"upcoming_shows":       venueAppearances(d.UpcomingShows),
		"past_shows_count":     len(d.PastShows),
		"upcoming_shows_count": len(d.UpcomingShows),
	}
}

func showsPageView(page models.ShowPage) view {
	rows := make([]view, 0, len(page.Shows))
	for _, sh := range page.Shows {
		rows = append(rows, view{
			"venue_id":          sh.VenueID,
			"venue_name":        sh.VenueName,
			"artist_id":         sh.ArtistID,
			"artist_name":       sh.ArtistName,
			"artist_image_link": sh.ArtistImageLink,
			"start_time":        sh.StartTime,
		})
	}
	return view{
		"shows":     rows,
		"page":      page.Page,
		"total":     page.Total,
		"has_prev":  page.HasPrev(),
		"has_next":  page.HasNext(),
		"prev_page": page.Page - 1,
		"next_page": page.Page + 1,
	}
}
