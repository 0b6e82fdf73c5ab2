package models

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var (
	stateCode   = regexp.MustCompile(`^[A-Z]{2}$`)
	phoneNumber = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,19}$`)
)

// ValidationError collects per-field problems found in a submitted record.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a problem for field. The first message for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil returns nil when no field problems were recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func requireText(verr *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, "is required")
	}
}

func requireState(verr *ValidationError, state string) {
	switch {
	case strings.TrimSpace(state) == "":
		verr.Add("state", "is required")
	case !stateCode.MatchString(state):
		verr.Add("state", "must be a two-letter state code")
	}
}

func requireGenres(verr *ValidationError, genres []string) {
	for _, g := range genres {
		if strings.TrimSpace(g) != "" {
			return
		}
	}
	verr.Add("genres", "at least one genre is required")
}

func checkPhone(verr *ValidationError, phone string) {
	if phone == "" {
		return
	}
	if !phoneNumber.MatchString(phone) {
		verr.Add("phone", "is not a valid phone number")
	}
}

func checkLink(verr *ValidationError, field, link string) {
	if link == "" {
		return
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		verr.Add(field, "must be an http or https URL")
	}
}

// NormalizeGenres trims tags, drops blanks and removes case-insensitive duplicates
// while keeping the submitted order.
func NormalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		key := strings.ToLower(g)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}
