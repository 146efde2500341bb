package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	"github.com/alexisbeaulieu97/cellbutton/pkg/diff"
	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

// Status classifies one verified entry.
type Status string

const (
	StatusMatch   Status = "match"
	StatusChanged Status = "changed"
	StatusMissing Status = "missing"
	StatusStale   Status = "stale"
)

// Result is the outcome for one entry.
type Result struct {
	ID     string
	Status Status
	// Diff is a unified diff from the stored to the rendered output when
	// Status is StatusChanged.
	Diff string
}

// Report lists results in catalog order followed by stale entries.
type Report struct {
	Results []Result
}

// OK reports whether every entry matched.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if res.Status != StatusMatch {
			return false
		}
	}
	return true
}

// Count returns how many results have the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Verify re-renders the catalog and compares each entry with its stored
// snapshot.
func (s *Store) Verify(ctx context.Context, cat *catalog.Catalog) (*Report, error) {
	manifest, err := s.ReadManifest()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(cat.Buttons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit())

	for i, entry := range cat.Buttons {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.verifyEntry(manifest, entry)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, stored := range manifest.Entries {
		if _, ok := cat.Find(stored.ID); !ok {
			results = append(results, Result{ID: stored.ID, Status: StatusStale})
		}
	}

	report := &Report{Results: results}
	s.Logger.WithFields(map[string]any{
		"dir":     s.Dir,
		"changed": report.Count(StatusChanged),
		"missing": report.Count(StatusMissing),
		"stale":   report.Count(StatusStale),
	}).Info("snapshots verified")
	return report, nil
}

func (s *Store) verifyEntry(manifest *Manifest, entry catalog.Entry) (Result, error) {
	rendered, err := RenderEntry(entry)
	if err != nil {
		return Result{}, err
	}

	stored, ok := manifest.lookup(entry.ID)
	if !ok {
		return Result{ID: entry.ID, Status: StatusMissing}, nil
	}

	path := filepath.Join(s.Dir, stored.File)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{ID: entry.ID, Status: StatusMissing}, nil
	}
	if err != nil {
		return Result{}, cberrors.NewSnapshotError("read", path, err)
	}

	if Fingerprint(rendered) == stored.Hash && Fingerprint(data) == stored.Hash {
		return Result{ID: entry.ID, Status: StatusMatch}, nil
	}

	d := diff.GenerateUnifiedDiff(data, rendered, stored.File+" (stored)", stored.File+" (rendered)")
	if d == "" {
		// Content matches but the manifest hash is out of date.
		return Result{ID: entry.ID, Status: StatusChanged, Diff: "manifest hash mismatch for " + stored.File + "\n"}, nil
	}
	return Result{ID: entry.ID, Status: StatusChanged, Diff: d}, nil
}
