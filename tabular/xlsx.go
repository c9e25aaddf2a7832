package tabular

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/idsampler/idset"
)

// readXLSX loads the first column of the first sheet of an XLSX workbook.
func readXLSX(path string) ([]idset.ID, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tabular: open %s", path)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "tabular: read %s sheet %s", path, sheet)
	}

	cells := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			cells = append(cells, "")
			continue
		}
		cells = append(cells, row[0])
	}

	return firstColumnIDs(path, cells)
}

// WriteXLSX writes rows (header included, as produced by Report.Rows) into
// a single-sheet workbook at path.
func WriteXLSX(path, sheet string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrapf(err, "tabular: name sheet %s", sheet)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "tabular: cell coordinates")
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return errors.Wrapf(err, "tabular: write row %d", i+1)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "tabular: save %s", path)
	}

	return nil
}
