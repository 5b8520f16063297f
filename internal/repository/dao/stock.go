package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrStockNotFound = errors.New("stock not found")

	// ErrTransient marks storage failures that are worth retrying,
	// e.g. a momentary connection loss. Callers test for it with errors.Is.
	ErrTransient = errors.New("transient storage error")
)

type Stock struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid"`

	ProductID   uuid.UUID `gorm:"index;not null;type:uuid"`
	StockLevel  int       `gorm:"not null"`
	ResellPrice float64   `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ResellHistory struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid"`

	ProductID   uuid.UUID `gorm:"index;not null;type:uuid"`
	ResellPrice float64   `gorm:"not null"`
	TimeUpdated time.Time `gorm:"not null"`
}

func (ResellHistory) TableName() string {
	return "resell_history"
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) FindAll(ctx context.Context) ([]Stock, error) {
	var stock []Stock

	result := d.db.WithContext(ctx).Order("created_at").Find(&stock)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return stock, nil
}

func (d *StockDAO) FindByProductID(ctx context.Context, productID uuid.UUID) (Stock, error) {
	var stock Stock

	// Order by creation so the first inserted row wins if the
	// productID uniqueness invariant was ever violated upstream.
	result := d.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at").
		First(&stock)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stock{}, ErrStockNotFound
		}

		return Stock{}, classify(result.Error)
	}

	return stock, nil
}

func (d *StockDAO) FindByMaxStockLevel(ctx context.Context, stockLevel int) ([]Stock, error) {
	var stock []Stock

	result := d.db.WithContext(ctx).
		Where("stock_level <= ?", stockLevel).
		Order("created_at").
		Find(&stock)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return stock, nil
}

func (d *StockDAO) FindResellHistory(ctx context.Context, productID uuid.UUID) ([]ResellHistory, error) {
	var history []ResellHistory

	result := d.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("time_updated").
		Find(&history)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return history, nil
}

// UpdateResellPrice sets the record's price and appends the matching
// resell-history row in a single transaction. Either both rows commit
// or neither does.
func (d *StockDAO) UpdateResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (Stock, error) {
	var stock Stock

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("product_id = ?", productID).Order("created_at").First(&stock)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrStockNotFound
			}

			return result.Error
		}

		stock.ResellPrice = resellPrice
		if err := tx.Save(&stock).Error; err != nil {
			return err
		}

		history := ResellHistory{
			ID:          uuid.New(),
			ProductID:   productID,
			ResellPrice: resellPrice,
			TimeUpdated: time.Now().UTC(),
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStockNotFound) {
			return Stock{}, ErrStockNotFound
		}

		return Stock{}, classify(err)
	}

	zap.L().Info("resell price updated",
		zap.String("product_id", productID.String()),
		zap.Float64("resell_price", resellPrice),
	)

	return stock, nil
}

// UpdateStockLevel mutates only the quantity. Stock-level changes are
// not historized.
func (d *StockDAO) UpdateStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (Stock, error) {
	var stock Stock

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("product_id = ?", productID).Order("created_at").First(&stock)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrStockNotFound
			}

			return result.Error
		}

		stock.StockLevel = stockLevel

		return tx.Save(&stock).Error
	})
	if err != nil {
		if errors.Is(err, ErrStockNotFound) {
			return Stock{}, ErrStockNotFound
		}

		return Stock{}, classify(err)
	}

	zap.L().Info("stock level updated",
		zap.String("product_id", productID.String()),
		zap.Int("stock_level", stockLevel),
	)

	return stock, nil
}

// classify tags connection-class postgres failures with ErrTransient so the
// retry policy at the call boundary knows which faults to absorb.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code) {
			return errors.Join(ErrTransient, err)
		}

		return err
	}

	if pgconn.Timeout(err) {
		return errors.Join(ErrTransient, err)
	}

	return err
}
