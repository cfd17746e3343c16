// Package importer parses bank statement CSV exports into transaction
// params. It is deliberately forgiving about the file shape: the header row
// is located anywhere in the file, column names are matched
// case-insensitively, and the delimiter is sniffed.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/rituraj-gharat/trackmycash/internal/encoding"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
)

var (
	titleColumns  = []string{"title", "description", "label"}
	amountColumns = []string{"amount", "value"}
	dateColumns   = []string{"date", "timestamp"}
)

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a statement CSV and returns create params in file order.
// OwnerID is left blank; the caller scopes the batch to the importing user.
func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = sniffDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := locateHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row with title, amount and date columns found")
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// columns holds the resolved indices of the three required columns.
type columns struct {
	title  int
	amount int
	date   int
}

func locateHeader(rows [][]string) (columns, int, bool) {
	for rowIdx, row := range rows {
		byName := make(map[string]int, len(row))

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				byName[name] = i
			}
		}

		title, okTitle := firstMatch(byName, titleColumns)
		amount, okAmount := firstMatch(byName, amountColumns)
		date, okDate := firstMatch(byName, dateColumns)

		if okTitle && okAmount && okDate {
			return columns{title: title, amount: amount, date: date}, rowIdx, true
		}
	}

	return columns{}, 0, false
}

func firstMatch(byName map[string]int, candidates []string) (int, bool) {
	for _, name := range candidates {
		if idx, ok := byName[name]; ok {
			return idx, true
		}
	}

	return 0, false
}

func parseRows(cols columns, rows [][]string, offset int) ([]transaction.CreateParams, error) {
	params := make([]transaction.CreateParams, 0, len(rows))

	for i, row := range rows {
		if isBlank(row) {
			continue
		}

		line := offset + i + 1

		maxIdx := cols.title
		if cols.amount > maxIdx {
			maxIdx = cols.amount
		}

		if cols.date > maxIdx {
			maxIdx = cols.date
		}

		if len(row) <= maxIdx {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, maxIdx+1, len(row))
		}

		title := strings.TrimSpace(row[cols.title])
		if title == "" {
			return nil, fmt.Errorf("line %d: empty title", line)
		}

		amount, err := parseAmount(row[cols.amount])
		if err != nil {
			return nil, fmt.Errorf("line %d: parse amount %q: %w", line, row[cols.amount], err)
		}

		ts, err := parseDate(row[cols.date])
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date %q: %w", line, row[cols.date], err)
		}

		params = append(params, transaction.CreateParams{
			Title:     title,
			Amount:    amount,
			Timestamp: ts,
		})
	}

	return params, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format")
}

// sniffDelimiter picks the delimiter by counting candidates in the first
// non-empty line. Comma wins ties.
func sniffDelimiter(content string) rune {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Count(line, ";") > strings.Count(line, ",") {
			return ';'
		}

		return ','
	}

	return ','
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
