package example

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/patrikhermansson/quadsolve/field"
	"github.com/rs/zerolog/log"
)

// LoadStars reads a star list from a CSV file with columns x, y and
// optionally flux and background. A header row is skipped when its first
// column does not parse as a number.
func LoadStars(path string) ([]field.Star, error) {
	log.Info().Msgf("Loading star list from: %s", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	stars, err := ReadStars(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Msgf("Loaded %d stars from %s", len(stars), path)
	return stars, nil
}

// ReadStars parses a CSV star list; see LoadStars.
func ReadStars(r io.Reader) ([]field.Star, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	stars := make([]field.Star, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d has %d columns, need at least 2", i, len(row))
		}
		s := field.Star{X: row[0], Y: row[1]}
		if len(row) > 2 {
			s.Flux = row[2]
		}
		if len(row) > 3 {
			s.Background = row[3]
		}
		stars = append(stars, s)
	}
	return stars, nil
}

// readCSV reads rows of float64 values.
func readCSV(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	var result [][]float64

	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read error: %w", err)
		}
		row := make([]float64, len(record))
		for i, val := range record {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				if first && i == 0 {
					// Header.
					row = nil
					break
				}
				return nil, fmt.Errorf("parse error at row %d col %d: %w", len(result), i, err)
			}
			row[i] = parsed
		}
		first = false
		if row != nil {
			result = append(result, row)
		}
	}

	log.Debug().Msgf("Parsed %d rows", len(result))
	return result, nil
}
