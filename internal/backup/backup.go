// Package backup snapshots the study database into a rotating set of
// timestamped copies next to the config file. SQLite files are copied
// through VACUUM INTO so a snapshot is always a consistent database;
// JSON files are plain copies.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/svasisht/prepdash/internal/constants"
)

const (
	// MaxBackups is how many snapshots are kept before the oldest are pruned.
	MaxBackups = 14

	dirName = "backups"
	prefix  = constants.AppName + "-"
)

// Info describes one existing snapshot.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots and restores one data file.
type Manager struct {
	dataPath string
	dir      string
	ext      string
}

func NewManager(dataPath string) *Manager {
	return &Manager{
		dataPath: dataPath,
		dir:      filepath.Join(filepath.Dir(dataPath), dirName),
		ext:      filepath.Ext(dataPath),
	}
}

// Dir returns the snapshot directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Create writes a new snapshot and prunes old ones, returning the
// snapshot path.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.prune(); err != nil {
		return "", fmt.Errorf("snapshot written but pruning failed: %w", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.dataPath); err != nil {
		return "", fmt.Errorf("no data file to back up at %s", m.dataPath)
	}
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest, err := m.freshPath()
	if err != nil {
		return "", err
	}

	if m.ext == ".json" {
		err = copyFile(m.dataPath, dest)
	} else {
		err = m.snapshotDatabase(dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return dest, nil
}

// freshPath picks a timestamped filename, extending precision on
// collision.
func (m *Manager) freshPath() (string, error) {
	now := time.Now()
	for _, format := range []string{"20060102-1504", "20060102-150405"} {
		dest := filepath.Join(m.dir, prefix+now.Format(format)+m.ext)
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			return dest, nil
		}
	}
	for counter := 1; counter <= 100; counter++ {
		dest := filepath.Join(m.dir, fmt.Sprintf("%s%s-%d%s", prefix, now.Format("20060102-150405"), counter, m.ext))
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			return dest, nil
		}
	}
	return "", fmt.Errorf("could not find a free snapshot name in %s", m.dir)
}

func (m *Manager) snapshotDatabase(dest string) error {
	db, err := sql.Open("sqlite", m.dataPath+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		// Older SQLite builds lack VACUUM INTO
		return copyFile(m.dataPath, dest)
	}
	return nil
}

// List returns existing snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, m.ext) {
			continue
		}

		ts, ok := parseTimestamp(strings.TrimSuffix(strings.TrimPrefix(name, prefix), m.ext))
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:      filepath.Join(m.dir, name),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.After(infos[j].Timestamp)
	})
	return infos, nil
}

// parseTimestamp reads the stamp part of a snapshot name, tolerating a
// trailing collision counter.
func parseTimestamp(stamp string) (time.Time, bool) {
	if parts := strings.Split(stamp, "-"); len(parts) > 2 {
		stamp = strings.Join(parts[:2], "-")
	}
	for _, format := range []string{"20060102-1504", "20060102-150405"} {
		if ts, err := time.Parse(format, stamp); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func (m *Manager) prune() error {
	infos, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(infos); i++ {
		if err := os.Remove(infos[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", infos[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the data file with the given snapshot. The current
// data file is snapshotted first so a bad restore can be undone.
func (m *Manager) Restore(snapshotPath string) error {
	if _, err := os.Stat(snapshotPath); err != nil {
		return fmt.Errorf("snapshot does not exist: %s", snapshotPath)
	}
	if m.ext != ".json" {
		if err := verifyDatabase(snapshotPath); err != nil {
			return fmt.Errorf("snapshot is not a readable database: %w", err)
		}
	}

	if _, err := os.Stat(m.dataPath); err == nil {
		saved, err := m.create()
		if err != nil {
			return fmt.Errorf("failed to save current data before restore: %w", err)
		}
		fmt.Printf("Saved current data as %s\n", filepath.Base(saved))
	}

	tmp := m.dataPath + ".restore.tmp"
	if err := copyFile(snapshotPath, tmp); err != nil {
		return fmt.Errorf("failed to stage snapshot: %w", err)
	}
	if err := os.Rename(tmp, m.dataPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to restore data file: %w", err)
	}
	return nil
}

func verifyDatabase(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
