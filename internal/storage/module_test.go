package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/accounts/internal/config"
	"github.com/polkiloo/accounts/internal/storage/postgres"
	"github.com/polkiloo/accounts/internal/storage/sqlite"
	testhelpers "github.com/polkiloo/accounts/internal/test"
)

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func TestOpenSelectsBackendByScheme(t *testing.T) {
	uri := "sqlite://" + filepath.Join(t.TempDir(), "accounts.db")
	st, err := Open(context.Background(), uri, discardLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer st.Close()
	if _, ok := st.(*sqlite.Storage); !ok {
		t.Fatalf("expected sqlite storage, got %T", st)
	}

	if _, err := Open(context.Background(), "mysql://localhost/db", discardLogger); err == nil || !strings.Contains(err.Error(), `"mysql"`) {
		t.Fatalf("expected unsupported scheme error, got %v", err)
	}
	if _, err := Open(context.Background(), "accounts.db", discardLogger); err == nil {
		t.Fatal("expected error for uri without scheme")
	}
	if _, err := Open(context.Background(), "postgresql://user:pass@%zz/db", discardLogger); err == nil {
		t.Fatal("expected postgres dsn parse error")
	}
}

func TestStorageImplementations(t *testing.T) {
	var _ Storage = (*postgres.Storage)(nil)
	var _ Storage = (*sqlite.Storage)(nil)
	var _ Storage = (*testhelpers.StorageStub)(nil)
}

func TestNewStorageProvider(t *testing.T) {
	cfg := &config.Config{DatabaseURI: "sqlite://" + filepath.Join(t.TempDir(), "accounts.db")}
	st, err := newStorage(storageParams{Ctx: context.Background(), Config: cfg, Logger: discardLogger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestRegisterLifecycle(t *testing.T) {
	stub := &testhelpers.StorageStub{}
	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, stub, discardLogger)

	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if !stub.CloseCalled {
		t.Fatal("expected storage to be closed on stop")
	}
}

func TestRegisterLifecycleFailures(t *testing.T) {
	unhealthy := &testhelpers.StorageStub{HealthErr: errors.New("down")}
	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(recorder, unhealthy, discardLogger)
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook, got %d", len(recorder.Hooks))
	}
	if err := recorder.Hooks[0].OnStart(context.Background()); err == nil {
		t.Fatal("expected start to fail on unhealthy storage")
	}

	failingClose := &testhelpers.StorageStub{CloseErr: errors.New("close")}
	recorder = &testhelpers.LifecycleRecorder{}
	registerLifecycle(recorder, failingClose, discardLogger)
	if err := recorder.Hooks[0].OnStop(context.Background()); err == nil {
		t.Fatal("expected stop to surface close error")
	}
}
