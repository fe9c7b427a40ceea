package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// ExportReader consumes a CSV export as a header list plus a full row batch.
// Exports in the wild carry sloppy quoting and the occasional line break
// inside a field, so quoting is lazy and short records are re-joined.
type ExportReader struct {
	reader  *csv.Reader
	headers []string
}

func NewExportReader(r io.Reader) (*ExportReader, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header line: %w", err)
	}

	return &ExportReader{reader: csvReader, headers: headers}, nil
}

// Headers returns the column headers of the export.
func (er *ExportReader) Headers() []string {
	return er.headers
}

// ReadAll reads every remaining row into RawRows keyed by header. Records
// with more fields than headers keep only the mapped prefix.
func (er *ExportReader) ReadAll() ([]models.RawRow, error) {
	var rows []models.RawRow
	for {
		record, err := er.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			return nil, fmt.Errorf("error reading row %d: %w", len(rows)+2, err)
		}

		if len(record) < len(er.headers) {
			record, err = er.joinRecords(record)
			if err != nil {
				return nil, err
			}
		}

		if blankRecord(record) {
			continue
		}

		row := make(models.RawRow, len(er.headers))
		for i, header := range er.headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
}

// joinRecords merges follow-up reads into a short record until it reaches the
// header width, gluing the break back into the last field.
func (er *ExportReader) joinRecords(current []string) ([]string, error) {
	joined := current
	for len(joined) < len(er.headers) {
		next, err := er.reader.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to join record: %w", err)
		}
		if len(next) == 0 {
			continue
		}

		joined[len(joined)-1] = joined[len(joined)-1] + " " + next[0]
		if len(next) > 1 {
			joined = append(joined, next[1:]...)
		}
	}
	return joined, nil
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if v != "" {
			return false
		}
	}
	return true
}
