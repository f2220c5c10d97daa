package locationrepo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yanqian/solar-calculator/internal/domain/location"
)

const (
	columnState = "state"
	columnCity  = "city"
)

// LoadCSVFile reads the solar hours table from path.
func LoadCSVFile(path string) (*MemoryRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open location table: %w", err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse location table %s: %w", path, err)
	}
	return NewMemoryRepository(records), nil
}

// ParseCSV reads rows with the header State,City,Year Avg.,Summer Avg.,Winter Avg.
// Columns may appear in any order; extra columns are ignored.
func ParseCSV(r io.Reader) ([]location.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []location.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

type columnIndex struct {
	state  int
	city   int
	year   int
	summer int
	winter int
}

func mapColumns(header []string) (columnIndex, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[normalizeColumn(name)] = i
	}
	lookup := func(name string) (int, error) {
		i, ok := idx[normalizeColumn(name)]
		if !ok {
			return 0, fmt.Errorf("missing column %q", name)
		}
		return i, nil
	}

	var (
		cols columnIndex
		err  error
	)
	if cols.state, err = lookup(columnState); err != nil {
		return cols, err
	}
	if cols.city, err = lookup(columnCity); err != nil {
		return cols, err
	}
	if cols.year, err = lookup(string(location.PeriodYear)); err != nil {
		return cols, err
	}
	if cols.summer, err = lookup(string(location.PeriodSummer)); err != nil {
		return cols, err
	}
	if cols.winter, err = lookup(string(location.PeriodWinter)); err != nil {
		return cols, err
	}
	return cols, nil
}

func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
}

func parseRow(row []string, cols columnIndex) (location.Record, error) {
	rec := location.Record{
		State: strings.TrimSpace(row[cols.state]),
		City:  strings.TrimSpace(row[cols.city]),
	}
	if rec.State == "" || rec.City == "" {
		return location.Record{}, errors.New("state and city are required")
	}
	var err error
	if rec.YearAvg, err = parseHours(row[cols.year]); err != nil {
		return location.Record{}, err
	}
	if rec.SummerAvg, err = parseHours(row[cols.summer]); err != nil {
		return location.Record{}, err
	}
	if rec.WinterAvg, err = parseHours(row[cols.winter]); err != nil {
		return location.Record{}, err
	}
	return rec, nil
}

func parseHours(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid solar hours %q", raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("solar hours must be positive, got %v", v)
	}
	return v, nil
}
