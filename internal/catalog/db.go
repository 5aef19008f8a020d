package catalog

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type characterRow struct {
	ID    int    `gorm:"primaryKey"`
	Name  string
	Image string
}

func (characterRow) TableName() string { return "characters" }

// FromPostgres reads catalog records from a characters table. The table is
// read once at startup and never written; row order by id becomes the
// character id assignment.
func FromPostgres(dsn string) ([]Record, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("catalog: connect: %w", err)
	}
	var rows []characterRow
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("catalog: query characters: %w", err)
	}
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{Name: row.Name, Image: row.Image}
	}
	return records, nil
}
