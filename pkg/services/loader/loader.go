package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const csvExt = ".csv"

// FileResult is the outcome of classifying one directory entry. Err is set
// for entries that must not be read, such as non-CSV files.
type FileResult struct {
	Path  string
	Label string
	Err   error
}

func (r FileResult) OK() bool {
	return r.Err == nil
}

// ListReportFiles walks dir recursively in lexical order and classifies every
// regular file. Entries whose base name is in exclude are left out. Walk
// failures are returned as errors; invalid entries are reported per file.
func ListReportFiles(ctx context.Context, dir string, exclude ...string) ([]FileResult, error) {
	logger := zerolog.Ctx(ctx)

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve report directory %s: %w", dir, err)
	}

	var results []FileResult
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if lo.Contains(exclude, d.Name()) {
			logger.Debug().Str("path", path).Msg("excluded from event inputs")
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(d.Name()), csvExt) {
			results = append(results, FileResult{Path: path, Err: &domain.InvalidFileTypeError{Path: path}})
			return nil
		}
		results = append(results, FileResult{Path: path, Label: EventLabel(path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk report directory %s: %w", root, err)
	}

	return results, nil
}

// EventLabel derives the event-type name from a file path: the base name
// without extension, upper-cased.
func EventLabel(path string) string {
	base := filepath.Base(path)
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

// LocateFile returns the absolute path of name inside dir.
func LocateFile(dir, name string) (string, error) {
	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &domain.FileNotFoundError{Name: name, Directory: dir}
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", &domain.FileNotFoundError{Name: name, Directory: dir}
	}

	return path, nil
}
