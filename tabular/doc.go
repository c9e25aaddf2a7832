// Package tabular is the file-facing collaborator around the sampling core:
// it loads numeric identifiers from the first column of CSV or XLSX files
// and writes row-oriented results back out.
//
// Loading rules (shared by both formats):
//   - Only the first column is read; other columns are ignored.
//   - A single leading non-numeric cell is treated as a header and skipped.
//   - Empty rows and empty first cells are skipped.
//   - Any other non-numeric token is an error naming the file, the
//     1-based row, and the offending token (wrapping
//     idset.ErrInvalidIdentifier).
//   - Duplicates are preserved: the validator downstream reports them.
//
// The sampling core never touches files; everything path-shaped lives here.
package tabular
