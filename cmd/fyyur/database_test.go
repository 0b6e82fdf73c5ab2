package main

import (
	"context"
	"errors"
	"testing"
	"time"
)

var fastPolicy = retryPolicy{
	PingTimeout:    time.Second,
	MaxWait:        200 * time.Millisecond,
	InitialBackoff: time.Millisecond,
	MaxBackoff:     4 * time.Millisecond,
}

func TestWaitForDatabaseRetriesUntilReady(t *testing.T) {
	calls := 0
	ping := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	if err := waitForDatabase(context.Background(), ping, fastPolicy); err != nil {
		t.Fatalf("waitForDatabase: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 pings, got %d", calls)
	}
}

func TestWaitForDatabaseGivesUp(t *testing.T) {
	refused := errors.New("connection refused")
	ping := func(context.Context) error { return refused }

	err := waitForDatabase(context.Background(), ping, fastPolicy)
	if !errors.Is(err, refused) {
		t.Fatalf("expected last ping error, got %v", err)
	}
}

func TestWaitForDatabaseStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	ping := func(context.Context) error {
		calls++
		return errors.New("connection refused")
	}

	if err := waitForDatabase(ctx, ping, fastPolicy); err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected a single ping, got %d", calls)
	}
}
