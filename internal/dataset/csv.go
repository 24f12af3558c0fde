package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/luki/aquamind/internal/reading"
)

const dateLayout = "2006-01-02"

// normHeader normalizes a CSV header cell so that "Date", "date" and
// "time_of_day" style headers all resolve to the same key.
func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// columnKeys maps normalized header names to reading fields.
var columnKeys = map[string]string{
	"date":        "date",
	"variety":     "variety",
	"time":        "time",
	"timeofday":   "time",
	"ph":          "ph",
	"ec":          "ec",
	"ecmscm":      "ec",
	"humidity":    "humidity",
	"humiditypct": "humidity",
	"watertemp":   "watertemp",
	"watertempc":  "watertemp",
	"airtemp":     "airtemp",
	"airtempc":    "airtemp",
}

// LoadCSV reads all readings from a CSV file. The header row is
// required; rows with unparseable dates or values are skipped.
func LoadCSV(path string) ([]reading.Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	records, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	cols := make(map[string]int)
	for i, h := range records[0] {
		if key, ok := columnKeys[normHeader(h)]; ok {
			cols[key] = i
		}
	}
	for _, key := range []string{"date", "variety", "time", "ph", "ec", "humidity", "watertemp", "airtemp"} {
		if _, ok := cols[key]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, key)
		}
	}

	var rows []reading.Reading
	for _, rec := range records[1:] {
		r, ok := parseRow(rec, cols)
		if !ok {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func parseRow(rec []string, cols map[string]int) (reading.Reading, bool) {
	get := func(key string) string {
		i := cols[key]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	date, err := parseDate(get("date"))
	if err != nil {
		return reading.Reading{}, false
	}

	tod, ok := parseTimeOfDay(get("time"))
	if !ok {
		return reading.Reading{}, false
	}

	num := func(key string) (float64, bool) {
		v, err := strconv.ParseFloat(get(key), 64)
		return v, err == nil
	}

	ph, ok1 := num("ph")
	ec, ok2 := num("ec")
	hum, ok3 := num("humidity")
	wt, ok4 := num("watertemp")
	at, ok5 := num("airtemp")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return reading.Reading{}, false
	}

	return reading.Reading{
		Date:      date,
		Time:      tod,
		Variety:   get("variety"),
		PH:        ph,
		EC:        ec,
		Humidity:  hum,
		WaterTemp: wt,
		AirTemp:   at,
	}, true
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{dateLayout, "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return reading.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}

func parseTimeOfDay(s string) (reading.TimeOfDay, bool) {
	switch strings.ToLower(s) {
	case "morning":
		return reading.Morning, true
	case "evening":
		return reading.Evening, true
	}
	return "", false
}
