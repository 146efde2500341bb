// Package snapshot stores rendered catalog entries on disk and verifies that
// the current renderer still produces them byte for byte.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

// ManifestFile is the name of the index written next to the snapshots.
const ManifestFile = "manifest.yaml"

const manifestVersion = "1"

// Manifest records the fingerprint of every stored snapshot.
type Manifest struct {
	Version string          `yaml:"version"`
	Catalog string          `yaml:"catalog"`
	Entries []ManifestEntry `yaml:"entries"`
}

// ManifestEntry is one stored snapshot.
type ManifestEntry struct {
	ID   string `yaml:"id"`
	File string `yaml:"file"`
	Hash string `yaml:"hash"`
}

func (m *Manifest) lookup(id string) (ManifestEntry, bool) {
	for _, e := range m.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// Store reads and writes snapshots under Dir.
type Store struct {
	Dir string
	// Parallel bounds concurrent renders. Zero uses GOMAXPROCS.
	Parallel int
	Logger   *logger.Logger
}

// Fingerprint returns the hex xxhash of data.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// RenderEntry renders an entry in the stored, line-per-tag form.
func RenderEntry(entry catalog.Entry) ([]byte, error) {
	out, err := markup.IndentString(button.Render(entry.Props()))
	if err != nil {
		return nil, cberrors.NewRenderError(entry.ID, err)
	}
	return []byte(out), nil
}

func fileName(id string) string {
	return id + ".html"
}

func (s *Store) limit() int {
	if s.Parallel > 0 {
		return s.Parallel
	}
	return runtime.GOMAXPROCS(0)
}

// Write renders every entry, stores it and rewrites the manifest. Files
// listed in the previous manifest that no longer belong to the catalog are
// removed and returned.
func (s *Store) Write(ctx context.Context, cat *catalog.Catalog) (*Manifest, []string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, nil, cberrors.NewSnapshotError("create", s.Dir, err)
	}

	previous, err := s.ReadManifest()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, err
	}

	entries := make([]ManifestEntry, len(cat.Buttons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit())

	for i, entry := range cat.Buttons {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := RenderEntry(entry)
			if err != nil {
				return err
			}
			path := filepath.Join(s.Dir, fileName(entry.ID))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return cberrors.NewSnapshotError("write", path, err)
			}
			entries[i] = ManifestEntry{ID: entry.ID, File: fileName(entry.ID), Hash: Fingerprint(data)}
			s.Logger.WithFields(map[string]any{"entry": entry.ID, "file": path}).Debug("snapshot written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	manifest := &Manifest{Version: manifestVersion, Catalog: cat.Name, Entries: entries}

	var removed []string
	if previous != nil {
		for _, old := range previous.Entries {
			if _, ok := cat.Find(old.ID); ok {
				continue
			}
			path := filepath.Join(s.Dir, old.File)
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, nil, cberrors.NewSnapshotError("remove", path, err)
			}
			removed = append(removed, old.ID)
		}
	}

	if err := s.writeManifest(manifest); err != nil {
		return nil, nil, err
	}

	s.Logger.WithFields(map[string]any{"dir": s.Dir, "entries": len(entries), "removed": len(removed)}).Info("snapshots written")
	return manifest, removed, nil
}

// ReadManifest loads the manifest from Dir. A missing manifest yields an
// error matching fs.ErrNotExist.
func (s *Store) ReadManifest() (*Manifest, error) {
	path := filepath.Join(s.Dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cberrors.NewSnapshotError("read", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, cberrors.NewParseError(path, 0, err)
	}
	return &m, nil
}

func (s *Store) writeManifest(m *Manifest) error {
	path := filepath.Join(s.Dir, ManifestFile)
	data, err := yaml.Marshal(m)
	if err != nil {
		return cberrors.NewSnapshotError("encode", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cberrors.NewSnapshotError("write", path, err)
	}
	return nil
}
