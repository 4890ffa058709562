package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"adouble-savior/adouble"
	"adouble-savior/adouble/aderr"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type (
	ScanResult struct {
		Path       string
		NumEntries int
		Err        error
	}
	ScanReport struct {
		Results []ScanResult
	}
)

// FindSidecars lists every "._" file under dir in lexical order.
func FindSidecars(dir string) ([]string, error) {
	paths := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && adouble.IsSidecarName(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		err := errors.Wrapf(err, `FindSidecars error walking "%s"`, dir)
		return nil, err
	}
	return paths, nil
}

func scanOne(path string, opts LoadOptions) ScanResult {
	sidecar, err := LoadSidecar(path, opts)
	if err != nil {
		return ScanResult{Path: path, Err: err}
	}
	defer sidecar.Close()
	return ScanResult{Path: path, NumEntries: len(sidecar.Struct.IDs())}
}

// StartScanning validates all sidecars under cmd.Dir, at most cmd.Jobs at a time.
// A rejected header is a result, not an error; errors are reserved for failing
// to walk the directory.
func StartScanning(cmd ScanCmd, opts LoadOptions, logger *slog.Logger) (*ScanReport, error) {
	paths, err := FindSidecars(cmd.Dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("sidecars found", "dir", cmd.Dir, "count", len(paths))

	jobs := cmd.Jobs
	if jobs <= 0 {
		jobs = 1
	}
	results := make([]ScanResult, len(paths))
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scanOne(path, opts)
			if results[i].Err != nil {
				logger.Warn("header rejected", "path", path, "error", results[i].Err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		err := errors.Wrap(err, "StartScanning error")
		return nil, err
	}

	return &ScanReport{Results: results}, nil
}

func (r *ScanReport) NumRejected() int {
	rejected := lo.Filter(r.Results, func(result ScanResult, _ int) bool {
		return result.Err != nil
	})
	return len(rejected)
}

func (r *ScanReport) Print(w io.Writer) {
	for _, result := range r.Results {
		if result.Err == nil {
			fmt.Fprintf(w, "ok\t%s\t%d entries\n", result.Path, result.NumEntries)
			continue
		}
		kind, ok := aderr.KindOf(result.Err)
		if !ok {
			kind = "io"
		}
		fmt.Fprintf(w, "rejected\t%s\t%s\n", result.Path, kind)
	}
	fmt.Fprintf(w, "%d checked, %d rejected\n", len(r.Results), r.NumRejected())
}
