package dataset

import (
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/luki/aquamind/internal/reading"
)

// readingRow mirrors the strawberry_readings table.
type readingRow struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"column:date"`
	Variety   string    `gorm:"column:variety"`
	TimeOfDay string    `gorm:"column:time_of_day"`
	PH        float64   `gorm:"column:ph"`
	ECMsCm    float64   `gorm:"column:ec_ms_cm"`
	Humidity  float64   `gorm:"column:humidity_pct"`
	WaterTemp float64   `gorm:"column:water_temp_c"`
	AirTemp   float64   `gorm:"column:air_temp_c"`
}

func (readingRow) TableName() string { return "strawberry_readings" }

// Open opens the SQLite database and ensures the readings table
// exists.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&readingRow{}); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadSQLite reads all readings from the database, ordered by date.
func LoadSQLite(path string) ([]reading.Reading, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	var recs []readingRow
	if err := db.Order("date, id").Find(&recs).Error; err != nil {
		return nil, err
	}

	rows := make([]reading.Reading, 0, len(recs))
	for _, rec := range recs {
		tod, ok := parseTimeOfDay(rec.TimeOfDay)
		if !ok {
			continue
		}
		rows = append(rows, reading.Reading{
			Date:      reading.Day(rec.Date),
			Time:      tod,
			Variety:   rec.Variety,
			PH:        rec.PH,
			EC:        rec.ECMsCm,
			Humidity:  rec.Humidity,
			WaterTemp: rec.WaterTemp,
			AirTemp:   rec.AirTemp,
		})
	}
	return rows, nil
}
