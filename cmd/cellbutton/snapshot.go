package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
	"github.com/alexisbeaulieu97/cellbutton/internal/snapshot"
)

type snapshotOptions struct {
	catalogPath string
	dir         string
	matrix      bool
	parallel    int
}

func (o *snapshotOptions) store(app *AppContext, log *logger.Logger) *snapshot.Store {
	dir := o.dir
	if dir == "" {
		dir = app.Settings.SnapshotDir
	}
	return &snapshot.Store{Dir: dir, Parallel: o.parallel, Logger: log}
}

func newSnapshotCmd(app *AppContext) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and verify rendered HTML snapshots",
	}

	cmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file (defaults to the configured catalog)")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", "Snapshot directory (defaults to the configured snapshot_dir)")
	cmd.PersistentFlags().BoolVar(&opts.matrix, "matrix", false, "Use every kind and theme instead of a catalog")
	cmd.PersistentFlags().IntVarP(&opts.parallel, "parallel", "p", 0, "Concurrent renders (0 uses every CPU)")

	cmd.AddCommand(newSnapshotWriteCmd(app, opts))
	cmd.AddCommand(newSnapshotVerifyCmd(app, opts))

	return cmd
}

func newSnapshotWriteCmd(app *AppContext, opts *snapshotOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "write",
		Short: "Render every entry and store it with a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "snapshot.write")
			cat, err := app.loadCatalog("write snapshots", app.catalogPath(opts.catalogPath), opts.matrix)
			if err != nil {
				return err
			}

			store := opts.store(app, log)
			manifest, removed, err := store.Write(ctx, cat)
			if err != nil {
				log.Error(err, "snapshot write failed")
				return newCommandError("write snapshots", "writing to "+store.Dir, err, "Check that you have write access to the snapshot directory.")
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "✓ Wrote %d snapshots to %s\n", len(manifest.Entries), store.Dir)
			for _, id := range removed {
				_, _ = fmt.Fprintf(out, "  removed stale snapshot %s\n", id)
			}
			return nil
		},
	}
}

type verifyOutput struct {
	json    bool
	verbose bool
}

func newSnapshotVerifyCmd(app *AppContext, opts *snapshotOptions) *cobra.Command {
	output := &verifyOutput{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare rendered entries against stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "snapshot.verify")
			cat, err := app.loadCatalog("verify snapshots", app.catalogPath(opts.catalogPath), opts.matrix)
			if err != nil {
				return err
			}

			store := opts.store(app, log)
			report, err := store.Verify(ctx, cat)
			if err != nil {
				log.Error(err, "snapshot verify failed")
				if errors.Is(err, fs.ErrNotExist) {
					return newCommandError("verify snapshots", "reading "+store.Dir, err, "Run 'cellbutton snapshot write' first.")
				}
				return newCommandError("verify snapshots", "reading "+store.Dir, err, "Check the snapshot directory and manifest.")
			}

			out := cmd.OutOrStdout()
			if output.json {
				if err := printVerifyJSON(out, report); err != nil {
					return err
				}
			} else {
				printVerifyTable(out, report, output.verbose)
			}

			if !report.OK() {
				return newCommandError("verify snapshots", fmt.Sprintf("%d of %d entries differ", len(report.Results)-report.Count(snapshot.StatusMatch), len(report.Results)), errors.New("snapshots out of date"), "Review the diffs, then run 'cellbutton snapshot write' to accept them.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&output.json, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&output.verbose, "diff", false, "Print unified diffs for changed entries")

	return cmd
}

func statusSymbol(status snapshot.Status) string {
	switch status {
	case snapshot.StatusMatch:
		return "✔"
	case snapshot.StatusChanged:
		return "⚠"
	case snapshot.StatusMissing:
		return "✖"
	default:
		return "?"
	}
}

func printVerifyTable(w io.Writer, report *snapshot.Report, diffs bool) {
	_, _ = fmt.Fprintln(w, "\nSnapshot Results:")
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(w, "%-40s %s\n", "Entry", "Status")
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, res := range report.Results {
		_, _ = fmt.Fprintf(w, "%-40s %s %s\n", res.ID, statusSymbol(res.Status), res.Status)
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 60))

	_, _ = fmt.Fprintf(w, "\nSummary:\n")
	_, _ = fmt.Fprintf(w, "  Total:   %d\n", len(report.Results))
	_, _ = fmt.Fprintf(w, "  ✔ Match:   %d\n", report.Count(snapshot.StatusMatch))
	_, _ = fmt.Fprintf(w, "  ⚠ Changed: %d\n", report.Count(snapshot.StatusChanged))
	_, _ = fmt.Fprintf(w, "  ✖ Missing: %d\n", report.Count(snapshot.StatusMissing))
	_, _ = fmt.Fprintf(w, "  ? Stale:   %d\n", report.Count(snapshot.StatusStale))

	if diffs {
		for _, res := range report.Results {
			if res.Status != snapshot.StatusChanged || res.Diff == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, "\n--- Entry: %s ---\n", res.ID)
			_, _ = fmt.Fprint(w, res.Diff)
		}
	}

	if report.OK() {
		_, _ = fmt.Fprintln(w, "\n✅ All snapshots match")
	}
}

func printVerifyJSON(w io.Writer, report *snapshot.Report) error {
	type jsonResult struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Diff   string `json:"diff,omitempty"`
	}
	type jsonReport struct {
		OK      bool         `json:"ok"`
		Results []jsonResult `json:"results"`
	}

	out := jsonReport{OK: report.OK(), Results: make([]jsonResult, 0, len(report.Results))}
	for _, res := range report.Results {
		out.Results = append(out.Results, jsonResult{ID: res.ID, Status: string(res.Status), Diff: res.Diff})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
