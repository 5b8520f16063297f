package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Stock{},
		&ResellHistory{},
	)
}

// SeedTestData loads the demo inventory when the tables are empty.
// It is a no-op against an already-populated database.
func SeedTestData(db *gorm.DB) error {
	var stockCount, historyCount int64
	if err := db.Model(&Stock{}).Count(&stockCount).Error; err != nil {
		return err
	}
	if err := db.Model(&ResellHistory{}).Count(&historyCount).Error; err != nil {
		return err
	}
	if stockCount > 0 && historyCount > 0 {
		return nil
	}

	stock := make([]Stock, 0, 12)
	for i := 1; i <= 12; i++ {
		stock = append(stock, Stock{
			ID:          uuid.New(),
			ProductID:   uuid.New(),
			StockLevel:  i * 10,
			ResellPrice: float64(i*10) + 0.99,
		})
	}

	base := time.Date(2019, 11, 21, 16, 31, 0, 0, time.UTC)
	history := make([]ResellHistory, 0, 12)
	for i := 0; i < 12; i++ {
		history = append(history, ResellHistory{
			ID:          uuid.New(),
			ProductID:   stock[0].ProductID,
			ResellPrice: 22.99 - float64(i),
			TimeUpdated: base.Add(time.Duration(i) * time.Minute),
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&stock).Error; err != nil {
			return err
		}

		return tx.Create(&history).Error
	})
}
