// Package export renders sweep result tables to external formats.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/qnetsim/qnetsim/pkg/montecarlo"
)

// ErrNilTable is returned when there is no table to export.
var ErrNilTable = errors.New("export table must not be nil")

// WriteCSV renders the sweep table as CSV: a probability column "p"
// followed by a mean column and a standard-error column "<dim> (std)" per
// cost dimension, rows in probability-grid order. NaN statistics render as
// empty cells.
func WriteCSV(w io.Writer, table *montecarlo.Table) error {
	if table == nil {
		return ErrNilTable
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, 1+2*len(table.Dimensions))
	header = append(header, "p")
	for _, dim := range table.Dimensions {
		header = append(header, dim, dim+" (std)")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for _, row := range table.Rows {
		record = record[:0]
		record = append(record, formatFloat(row.Probability))
		for _, dim := range table.Dimensions {
			record = append(record, formatStat(row.Mean, dim), formatStat(row.StdErr, dim))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile renders the table to a file, truncating any existing one.
func WriteCSVFile(path string, table *montecarlo.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	if err := WriteCSV(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatStat(cv map[string]float64, dim string) string {
	v, ok := cv[dim]
	if !ok || v != v {
		// Absent or NaN.
		return ""
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
