package tabular

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
)

// WriteCSV writes rows (header included, as produced by Report.Rows) to a
// CSV file at path, creating or truncating it.
func WriteCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "tabular: create %s", path)
	}
	defer f.Close()

	// WriteAll flushes and reports the first buffered error itself.
	if err := csv.NewWriter(f).WriteAll(rows); err != nil {
		return errors.Wrapf(err, "tabular: write %s", path)
	}

	return nil
}
