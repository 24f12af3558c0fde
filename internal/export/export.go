// Package export writes a filtered readings table to CSV or XLSX
// files with timestamped names.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/luki/aquamind/internal/reading"
)

var header = []string{"Date", "Time", "Variety", "pH", "EC_mS_cm", "Humidity_pct", "Water_Temp_C", "Air_Temp_C"}

// WriteCSV writes rows to dir/aquamind-<stamp>.csv and returns the
// path.
func WriteCSV(dir string, rows []reading.Reading, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("aquamind-%s.csv", now.Format("20060102-150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range rows {
		rec := []string{
			r.Date.Format("2006-01-02"),
			string(r.Time),
			r.Variety,
			strconv.FormatFloat(r.PH, 'f', 2, 64),
			strconv.FormatFloat(r.EC, 'f', 2, 64),
			strconv.FormatFloat(r.Humidity, 'f', 1, 64),
			strconv.FormatFloat(r.WaterTemp, 'f', 1, 64),
			strconv.FormatFloat(r.AirTemp, 'f', 1, 64),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}

// WriteXLSX writes rows to dir/aquamind-<stamp>.xlsx and returns the
// path.
func WriteXLSX(dir string, rows []reading.Reading, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("aquamind-%s.xlsx", now.Format("20060102-150405")))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Readings"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	for col, name := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return "", err
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.Date.Format("2006-01-02"),
			string(r.Time),
			r.Variety,
			r.PH,
			r.EC,
			r.Humidity,
			r.WaterTemp,
			r.AirTemp,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
