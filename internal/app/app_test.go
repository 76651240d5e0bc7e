package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/yungbote/dinocatalog-backend/internal/data/db"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

func testConfig(t *testing.T, backend string) Config {
	t.Helper()
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Store.Backend = backend
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "catalog.db")
	cfg.HTTP.Addr = "127.0.0.1:0"
	return cfg
}

func TestSetupSeedsOnce(t *testing.T) {
	for _, backend := range []string{BackendMemory, db.BackendSQLite} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			a, err := New(ctx, testConfig(t, backend), logger.Nop())
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			t.Cleanup(a.Close)

			n, err := a.Setup(ctx)
			if err != nil || n != 11 {
				t.Fatalf("first Setup: n=%d err=%v", n, err)
			}
			n, err = a.Setup(ctx)
			if err != nil || n != 0 {
				t.Fatalf("second Setup: n=%d err=%v", n, err)
			}

			res, err := a.Catalog.List(ctx, services.ListParams{Limit: 100})
			if err != nil || res.Total != 11 {
				t.Fatalf("List: total=%d err=%v", res.Total, err)
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, BackendMemory), logger.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
