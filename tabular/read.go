package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/idsampler/idset"
)

// ErrUnsupportedFormat indicates a file extension other than .csv or .xlsx.
var ErrUnsupportedFormat = errors.New("tabular: unsupported file format (want .csv or .xlsx)")

// ReadIDs loads numeric identifiers from the first column of path,
// dispatching on the file extension. Order and duplicates are preserved so
// the validator can report duplicate rows.
func ReadIDs(path string) ([]idset.ID, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, errors.Wrap(ErrUnsupportedFormat, path)
	}
}

// readCSV streams path through encoding/csv with relaxed settings (variable
// field counts, lazy quotes) and extracts the first column.
func readCSV(path string) ([]idset.ID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tabular: open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var cells []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "tabular: read %s", path)
		}
		if len(record) == 0 {
			continue
		}
		cells = append(cells, record[0])
	}

	return firstColumnIDs(path, cells)
}

// firstColumnIDs converts raw first-column cells to IDs, applying the shared
// header and empty-cell rules.
func firstColumnIDs(path string, cells []string) ([]idset.ID, error) {
	ids := make([]idset.ID, 0, len(cells))
	row := 0 // 1-based row of the current cell, for error messages
	sawData := false
	for _, cell := range cells {
		row++
		token := strings.TrimSpace(cell)
		if token == "" {
			continue
		}
		id, err := idset.ParseID(token)
		if err != nil {
			// One leading non-numeric cell is a header, not data.
			if !sawData && row == 1 {
				continue
			}

			return nil, errors.Wrapf(err, "tabular: %s row %d", path, row)
		}
		sawData = true
		ids = append(ids, id)
	}

	return ids, nil
}
