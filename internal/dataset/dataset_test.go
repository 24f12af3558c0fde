package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luki/aquamind/internal/reading"
)

const testCSV = `Date,Variety,Time,pH,EC_mS_cm,Humidity_pct,Water_Temp_C,Air_Temp_C
2024-01-01,Camarosa,Morning,6.0,1.6,70,19.5,22
2024-01-01,Camarosa,Evening,6.1,1.7,71,20.0,23
2024-01-02,Albion,Morning,5.9,1.8,68,19.0,21
bad-date,Albion,Morning,5.9,1.8,68,19.0,21
2024-01-03,Albion,Evening,not-a-number,1.8,68,19.0,21
`

const testCSVSnakeCase = `date,variety,time_of_day,ph,ec_ms_cm,humidity_pct,water_temp_c,air_temp_c
2024-02-10,Chandler,Morning,6.2,1.5,66,18.5,20.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	rows, err := LoadCSV(writeFile(t, "readings.csv", testCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	// Two malformed rows are skipped.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	r := rows[0]
	if r.Variety != "Camarosa" || r.Time != reading.Morning {
		t.Errorf("first row: %+v", r)
	}
	if r.PH != 6.0 || r.EC != 1.6 || r.Humidity != 70 || r.WaterTemp != 19.5 || r.AirTemp != 22 {
		t.Errorf("first row values: %+v", r)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	if !r.Date.Equal(want) {
		t.Errorf("first row date: got %v, want %v", r.Date, want)
	}
}

func TestLoadCSVSnakeCaseHeaders(t *testing.T) {
	rows, err := LoadCSV(writeFile(t, "readings.csv", testCSVSnakeCase))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Variety != "Chandler" || rows[0].PH != 6.2 {
		t.Errorf("row: %+v", rows[0])
	}
}

func TestLoadCSVStripsByteOrderMark(t *testing.T) {
	// Spreadsheet exports often prefix the header with a UTF-8 BOM;
	// the first column must still resolve.
	rows, err := LoadCSV(writeFile(t, "readings.csv", "\uFEFF"+testCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeFile(t, "readings.csv", "Date,Variety\n2024-01-01,Camarosa\n")
	if _, err := LoadCSV(path); err == nil {
		t.Error("expected an error for a CSV missing value columns")
	}
}

func TestDatasetBoundsAndVarieties(t *testing.T) {
	rows, err := LoadCSV(writeFile(t, "readings.csv", testCSV))
	if err != nil {
		t.Fatal(err)
	}
	d := New(rows)

	if got := d.MinDate(); !got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("MinDate: %v", got)
	}
	if got := d.MaxDate(); !got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)) {
		t.Errorf("MaxDate: %v", got)
	}

	vs := d.Varieties()
	if len(vs) != 2 || vs[0] != "Albion" || vs[1] != "Camarosa" {
		t.Errorf("Varieties: %v, want sorted [Albion Camarosa]", vs)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aquamind.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec := readingRow{
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
		Variety:   "Seascape",
		TimeOfDay: "Evening",
		PH:        5.9,
		ECMsCm:    1.8,
		Humidity:  72,
		WaterTemp: 21,
		AirTemp:   24,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := LoadSQLite(path)
	if err != nil {
		t.Fatalf("LoadSQLite: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Variety != "Seascape" || rows[0].Time != reading.Evening || rows[0].EC != 1.8 {
		t.Errorf("row: %+v", rows[0])
	}
}

func TestLoadPrefersDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "aquamind.db")
	csvPath := filepath.Join(dir, "readings.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0644); err != nil {
		t.Fatal(err)
	}

	db, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	rec := readingRow{
		Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), Variety: "Tribute",
		TimeOfDay: "Morning", PH: 6.1, ECMsCm: 1.6, Humidity: 70, WaterTemp: 19, AirTemp: 22,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatal(err)
	}

	d, err := Load(dbPath, csvPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 1 || d.Varieties()[0] != "Tribute" {
		t.Errorf("expected the database row to win, got %d rows %v", d.Len(), d.Varieties())
	}
}

func TestLoadFallsBackToCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "readings.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(filepath.Join(dir, "missing.db"), csvPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("expected 3 CSV rows, got %d", d.Len())
	}
}
