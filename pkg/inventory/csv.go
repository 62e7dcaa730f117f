package inventory

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// outputFileMode is the permission of a written CSV file.
const outputFileMode os.FileMode = 0644

// WriteCSV writes a header row followed by one row per repository, in the order given, and
// returns the number of repository rows written. Every value is checked before anything is
// written, so an EncodingError leaves w untouched.
func WriteCSV(w io.Writer, repos []*Repo) (int, error) {
	return writeCSV(w, "", repos)
}

// WriteCSVFile writes the CSV for repos to path, replacing any existing file, and returns the
// number of repository rows written. The rows are written to a temporary file in the same
// directory that is renamed over path once complete, so a failed write never leaves a
// partial file at path.
func WriteCSVFile(path string, repos []*Repo) (int, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return 0, &IOWriteError{Path: path, Err: err}
	}
	tmpPath := f.Name()

	// Temporary files are created owner-only
	n, err := writeCSV(f, path, repos)
	if err == nil {
		if chmodErr := f.Chmod(outputFileMode); chmodErr != nil {
			err = &IOWriteError{Path: path, Err: chmodErr}
		}
	}
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = &IOWriteError{Path: path, Err: closeErr}
	}
	if err == nil {
		if renameErr := os.Rename(tmpPath, path); renameErr != nil {
			err = &IOWriteError{Path: path, Err: renameErr}
		}
	}

	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}

	return n, nil
}

// writeCSV does the work of WriteCSV. path is only used to describe write failures.
func writeCSV(w io.Writer, path string, repos []*Repo) (int, error) {
	rows := make([]OutputRow, 0, len(repos))
	for _, r := range repos {
		row, err := Project(r)
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return 0, &IOWriteError{Path: path, Err: errors.Wrap(err, "header")}
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return 0, &IOWriteError{Path: path, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, &IOWriteError{Path: path, Err: err}
	}

	return len(rows), nil
}
