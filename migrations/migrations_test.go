package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func TestUpReportsOpenFailure(t *testing.T) {
	err := Up("no-such-driver", "postgres://localhost/fyyur")
	if err == nil || !strings.Contains(err.Error(), "open database") {
		t.Fatalf("expected open database error, got %v", err)
	}
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := iofs.New(files, ".")
	if err != nil {
		t.Fatalf("iofs.New: %v", err)
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	var versions []uint
	for {
		versions = append(versions, version)
		for _, read := range []func(uint) (io.ReadCloser, string, error){src.ReadUp, src.ReadDown} {
			r, _, err := read(version)
			if err != nil {
				t.Fatalf("version %d is missing a direction: %v", version, err)
			}
			r.Close()
		}
		next, err := src.Next(version)
		if err != nil {
			break
		}
		version = next
	}
	if len(versions) != 2 || versions[1] != 2 {
		t.Fatalf("unexpected versions %v", versions)
	}
}

func TestListingsAreUniquePerLocale(t *testing.T) {
	src, err := iofs.New(files, ".")
	if err != nil {
		t.Fatalf("iofs.New: %v", err)
	}
	defer src.Close()

	r, _, err := src.ReadUp(2)
	if err != nil {
		t.Fatalf("ReadUp(2): %v", err)
	}
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	for _, constraint := range []string{"venues_name_city_state_key", "artists_name_city_state_key"} {
		if !strings.Contains(string(body), constraint) {
			t.Errorf("migration 2 does not add %s", constraint)
		}
	}
}
