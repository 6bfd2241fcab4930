package service

import (
	"fmt"
	"strings"

	"github.com/tareqmahmud/letterdesk/internal/model"
)

// consumerCSVHeader is the fixed, case-insensitive header an import file
// must start with.
var consumerCSVHeader = []string{"accNo", "name", "guardian", "meterNo", "mobile", "address", "tarrif"}

// CSVRowError reports one unparseable line of an import file.  Index is
// the zero-based data-row index (the header is row -1 from the caller's
// point of view).
type CSVRowError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// CSVRow pairs a parsed consumer with its zero-based data-row index in
// the file, so bulk-insert outcomes can be reported against file rows even
// when malformed lines were skipped in between.
type CSVRow struct {
	Index    int
	Consumer model.Consumer
}

// ParseConsumersCSV parses a consumer import file.  The format is the
// office's historical one: comma-separated, no quoting (fields containing
// commas are not supported), fixed header order.  Blank lines are skipped.
// Rows with the wrong column count are reported per line; field-level
// validation (missing accNo or name) is left to the bulk insert so the
// row index still gets an outcome there.
func ParseConsumersCSV(data string) ([]CSVRow, []CSVRowError, error) {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")

	var header []string
	for len(lines) > 0 {
		if strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
			continue
		}
		header = splitRow(lines[0])
		lines = lines[1:]
		break
	}
	if header == nil {
		return nil, nil, fmt.Errorf("csv: empty file")
	}
	if len(header) != len(consumerCSVHeader) {
		return nil, nil, fmt.Errorf("csv: expected %d header columns, got %d",
			len(consumerCSVHeader), len(header))
	}
	for i, want := range consumerCSVHeader {
		if !strings.EqualFold(header[i], want) {
			return nil, nil, fmt.Errorf("csv: header column %d is %q, want %q", i+1, header[i], want)
		}
	}

	var (
		rows    []CSVRow
		rowErrs []CSVRowError
		idx     int
	)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitRow(line)
		if len(fields) != len(consumerCSVHeader) {
			rowErrs = append(rowErrs, CSVRowError{
				Index:  idx,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(consumerCSVHeader), len(fields)),
			})
			idx++
			continue
		}
		rows = append(rows, CSVRow{Index: idx, Consumer: model.Consumer{
			AccNo:    fields[0],
			Name:     fields[1],
			Guardian: fields[2],
			MeterNo:  fields[3],
			Mobile:   fields[4],
			Address:  fields[5],
			Tarrif:   fields[6],
		}})
		idx++
	}
	return rows, rowErrs, nil
}

func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
