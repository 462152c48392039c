package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

var headerAliases = map[string][]string{
	"age":    {"age", "edad"},
	"income": {"income", "ingreso"},
	"class":  {"class", "clase"},
}

type CSVReader struct {
	filename string
	skipped  int
}

func NewCSVReader(filename string) (*CSVReader, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("no data file given")
	}
	return &CSVReader{filename: filename}, nil
}

// Skipped reports how many rows the last LoadData call dropped for missing values.
func (cr *CSVReader) Skipped() int {
	return cr.skipped
}

func (cr *CSVReader) LoadData() ([]Observation, error) {
	file, err := os.Open(cr.filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	observations, skipped, err := ReadObservations(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cr.filename, err)
	}
	cr.skipped = skipped
	return observations, nil
}

// ReadObservations parses a CSV stream with Age, Income and Class columns in any
// order. Rows with an empty cell are skipped and counted.
func ReadObservations(r io.Reader) ([]Observation, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}

	if len(records) < 2 {
		return nil, 0, fmt.Errorf("insufficient data in file")
	}

	columns, err := locateColumns(records[0])
	if err != nil {
		return nil, 0, err
	}

	observations := make([]Observation, 0, len(records)-1)
	skipped := 0

	for i, record := range records[1:] {
		line := i + 2

		age := strings.TrimSpace(record[columns["age"]])
		income := strings.TrimSpace(record[columns["income"]])
		class := strings.TrimSpace(record[columns["class"]])
		if age == "" || income == "" || class == "" {
			skipped++
			continue
		}

		ageVal, err := decimal.NewFromString(age)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: non-numeric age %q", line, age)
		}
		incomeVal, err := decimal.NewFromString(income)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: non-numeric income %q", line, income)
		}

		observations = append(observations, Observation{
			Age:    ageVal,
			Income: incomeVal,
			Class:  class,
		})
	}

	return observations, skipped, nil
}

func locateColumns(headers []string) (map[string]int, error) {
	columns := make(map[string]int, len(headerAliases))
	for idx, header := range headers {
		name := strings.ToLower(strings.TrimSpace(header))
		for column, aliases := range headerAliases {
			for _, alias := range aliases {
				if name == alias {
					if _, seen := columns[column]; !seen {
						columns[column] = idx
					}
				}
			}
		}
	}

	for _, column := range []string{"age", "income", "class"} {
		if _, ok := columns[column]; !ok {
			return nil, fmt.Errorf("missing %s column in header %v", column, headers)
		}
	}
	return columns, nil
}
