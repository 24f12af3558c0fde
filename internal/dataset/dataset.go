// Package dataset loads the aquaponics readings table from its backing
// source (SQLite database first, CSV file as fallback) and exposes the
// date bounds and variety set the dashboard filters are built from.
package dataset

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/luki/aquamind/internal/reading"
)

// Dataset is the session-cached readings table. Rows are immutable
// once loaded.
type Dataset struct {
	rows      []reading.Reading
	minDate   time.Time
	maxDate   time.Time
	varieties []string
}

// New builds a dataset from rows, computing date bounds and the sorted
// set of distinct varieties.
func New(rows []reading.Reading) *Dataset {
	d := &Dataset{rows: rows}

	seen := make(map[string]bool)
	for i, r := range rows {
		if i == 0 || r.Date.Before(d.minDate) {
			d.minDate = r.Date
		}
		if i == 0 || r.Date.After(d.maxDate) {
			d.maxDate = r.Date
		}
		if !seen[r.Variety] {
			seen[r.Variety] = true
			d.varieties = append(d.varieties, r.Variety)
		}
	}
	sort.Strings(d.varieties)
	return d
}

// Load reads the dataset, preferring the SQLite database and falling
// back to the CSV file. An empty result from both sources is an error:
// the dashboard is never started without data.
func Load(dbPath, csvPath string) (*Dataset, error) {
	if dbPath != "" {
		if _, err := os.Stat(dbPath); err == nil {
			rows, err := LoadSQLite(dbPath)
			if err != nil {
				return nil, fmt.Errorf("load database: %w", err)
			}
			if len(rows) > 0 {
				return New(rows), nil
			}
		}
	}

	rows, err := LoadCSV(csvPath)
	if err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no readings in %s", csvPath)
	}
	return New(rows), nil
}

// Rows returns the loaded readings in load order.
func (d *Dataset) Rows() []reading.Reading { return d.rows }

// Len returns the number of readings.
func (d *Dataset) Len() int { return len(d.rows) }

// MinDate returns the earliest reading date.
func (d *Dataset) MinDate() time.Time { return d.minDate }

// MaxDate returns the latest reading date.
func (d *Dataset) MaxDate() time.Time { return d.maxDate }

// Varieties returns the sorted distinct variety names.
func (d *Dataset) Varieties() []string { return d.varieties }
