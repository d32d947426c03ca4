package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/svasisht/prepdash/internal/storage"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prepdash.db")
	store := storage.NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return path
}

func TestCreateSnapshot(t *testing.T) {
	m := NewManager(newTestDB(t))

	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "prepdash-") || !strings.HasSuffix(name, ".db") {
		t.Errorf("unexpected snapshot name %q", name)
	}
	if err := verifyDatabase(path); err != nil {
		t.Errorf("snapshot is not a valid database: %v", err)
	}
}

func TestCreateWithoutDataFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.Create(); err == nil {
		t.Fatal("expected error for missing data file")
	}
}

func TestCreateJSONSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prepdash.json")
	if err := os.WriteFile(path, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	snap, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasSuffix(snap, ".json") {
		t.Errorf("JSON snapshot should keep the .json extension, got %q", snap)
	}

	data, err := os.ReadFile(snap)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("snapshot content differs from source: %q", data)
	}
}

func TestListNewestFirst(t *testing.T) {
	m := NewManager(newTestDB(t))

	if err := os.MkdirAll(m.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"prepdash-20260101-0900.db",
		"prepdash-20260301-0900.db",
		"prepdash-20260201-0900.db",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(m.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i].Timestamp.After(infos[i-1].Timestamp) {
			t.Errorf("snapshots out of order at index %d", i)
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "prepdash.db"))
	infos, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected no snapshots, got %d", len(infos))
	}
}

func TestCreatePrunesOldSnapshots(t *testing.T) {
	m := NewManager(newTestDB(t))

	if err := os.MkdirAll(m.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	for day := 1; day <= 20; day++ {
		name := fmt.Sprintf("prepdash-202601%02d-0900.db", day)
		if err := os.WriteFile(filepath.Join(m.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	infos, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != MaxBackups {
		t.Errorf("expected %d snapshots after pruning, got %d", MaxBackups, len(infos))
	}
}

func TestRestoreMissingSnapshot(t *testing.T) {
	m := NewManager(newTestDB(t))
	if err := m.Restore(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	m := NewManager(newTestDB(t))

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(garbage); err == nil {
		t.Fatal("expected error restoring a non-database file")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	path := newTestDB(t)

	store := storage.NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.Name = "Asha"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	snap, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Change the name after the snapshot
	store = storage.NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	settings, err = store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.Name = "Changed"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	store = storage.NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	settings, err = store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.Name != "Asha" {
		t.Errorf("expected restored name %q, got %q", "Asha", settings.Name)
	}
}
