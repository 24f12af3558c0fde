// AQUAMIND is a terminal dashboard for strawberry aquaponics sensor
// readings. It loads a historical readings table (SQLite or CSV),
// filters it by variety, date period, and time-of-day, and shows
// per-parameter averages, an overall system status, and trend charts.
//
// Usage:
//
//	aquamind              run the dashboard
//	aquamind -export csv  write the filtered table to a CSV file and exit
//	aquamind -export xlsx write the filtered table to an XLSX file and exit
//
// The headless export honors -variety, -period, and -time.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/luki/aquamind/internal/config"
	"github.com/luki/aquamind/internal/dashboard"
	"github.com/luki/aquamind/internal/dataset"
	"github.com/luki/aquamind/internal/export"
	"github.com/luki/aquamind/internal/filter"
	"github.com/luki/aquamind/internal/reading"
)

func main() {
	var (
		exportFmt = flag.String("export", "", "write the filtered table to a file and exit (csv or xlsx)")
		variety   = flag.String("variety", filter.AllVarieties, "variety filter for -export")
		period    = flag.String("period", string(filter.AllTime), "named period filter for -export")
		tod       = flag.String("time", string(filter.Both), "time-of-day filter for -export (Both, Morning, Evening)")
		csvPath   = flag.String("csv", "", "override the readings CSV path")
		dbPath    = flag.String("db", "", "override the database path")
		outDir    = flag.String("out", "", "override the export directory")
	)
	flag.Parse()

	cfg := config.Load()
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *outDir != "" {
		cfg.ExportDir = *outDir
	}

	if *exportFmt != "" {
		runExport(cfg, *exportFmt, *variety, *period, *tod)
		return
	}

	dashboard.Run(cfg)
}

func runExport(cfg config.Config, format, variety, period, tod string) {
	ds, err := dataset.Load(cfg.DBPath, cfg.CSVPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No data available: %v\n", err)
		os.Exit(1)
	}

	rows, err := exportRows(ds, variety, period, tod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var path string
	switch format {
	case "csv":
		path, err = export.WriteCSV(cfg.ExportDir, rows, time.Now())
	case "xlsx":
		path, err = export.WriteXLSX(cfg.ExportDir, rows, time.Now())
	default:
		fmt.Fprintf(os.Stderr, "Unknown export format %q (want csv or xlsx)\n", format)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d readings to %s\n", len(rows), path)
}

// exportRows applies the headless filter flags to the loaded dataset.
func exportRows(ds *dataset.Dataset, variety, period, tod string) ([]reading.Reading, error) {
	var p filter.Period
	for _, q := range filter.Periods() {
		if strings.EqualFold(string(q), period) {
			p = q
			break
		}
	}
	if p == "" || p == filter.Custom {
		return nil, fmt.Errorf("unknown period %q", period)
	}

	var tf filter.TimeFilter
	switch strings.ToLower(tod) {
	case "both":
		tf = filter.Both
	case "morning":
		tf = filter.MorningOnly
	case "evening":
		tf = filter.EveningOnly
	default:
		return nil, fmt.Errorf("unknown time-of-day %q (want Both, Morning, or Evening)", tod)
	}

	start, end := filter.Resolve(p, ds.MinDate(), ds.MaxDate(), time.Time{}, time.Time{})
	sel := filter.Selection{
		Variety: variety,
		Start:   start, End: end, HasDateRange: true,
		Time: tf,
	}
	return filter.Apply(ds.Rows(), sel), nil
}
