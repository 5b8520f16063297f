package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/repository/dao"
)

var (
	ErrStockNotFound = dao.ErrStockNotFound
)

// IsTransient reports whether err is a storage or upstream failure the
// caller may retry.
func IsTransient(err error) bool {
	return errors.Is(err, dao.ErrTransient) || errors.Is(err, ErrRemoteUnavailable)
}

type StockDAO interface {
	FindAll(ctx context.Context) ([]dao.Stock, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (dao.Stock, error)
	FindByMaxStockLevel(ctx context.Context, stockLevel int) ([]dao.Stock, error)
	FindResellHistory(ctx context.Context, productID uuid.UUID) ([]dao.ResellHistory, error)
	UpdateResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (dao.Stock, error)
	UpdateStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (dao.Stock, error)
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *StockRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (domain.Stock, error) {
	found, err := r.dao.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, dao.ErrStockNotFound) {
			return domain.Stock{}, ErrStockNotFound
		}

		return domain.Stock{}, fmt.Errorf("r.dao.FindByProductID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StockRepository) FindByMaxStockLevel(ctx context.Context, stockLevel int) ([]domain.Stock, error) {
	found, err := r.dao.FindByMaxStockLevel(ctx, stockLevel)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMaxStockLevel -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *StockRepository) FindResellHistory(ctx context.Context, productID uuid.UUID) ([]domain.ResellHistory, error) {
	found, err := r.dao.FindResellHistory(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindResellHistory -> %w", err)
	}

	history := make([]domain.ResellHistory, 0, len(found))
	for _, h := range found {
		history = append(history, domain.ResellHistory{
			ID:          h.ID.String(),
			ProductID:   h.ProductID.String(),
			ResellPrice: h.ResellPrice,
			TimeUpdated: h.TimeUpdated,
		})
	}

	return history, nil
}

func (r *StockRepository) UpdateResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (domain.Stock, error) {
	updated, err := r.dao.UpdateResellPrice(ctx, productID, resellPrice)
	if err != nil {
		if errors.Is(err, dao.ErrStockNotFound) {
			return domain.Stock{}, ErrStockNotFound
		}

		return domain.Stock{}, fmt.Errorf("r.dao.UpdateResellPrice -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockRepository) UpdateStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (domain.Stock, error) {
	updated, err := r.dao.UpdateStockLevel(ctx, productID, stockLevel)
	if err != nil {
		if errors.Is(err, dao.ErrStockNotFound) {
			return domain.Stock{}, ErrStockNotFound
		}

		return domain.Stock{}, fmt.Errorf("r.dao.UpdateStockLevel -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockRepository) daoToDomain(s dao.Stock) domain.Stock {
	return domain.Stock{
		ID:          s.ID.String(),
		ProductID:   s.ProductID.String(),
		StockLevel:  s.StockLevel,
		ResellPrice: s.ResellPrice,
	}
}

func (r *StockRepository) daosToDomain(found []dao.Stock) []domain.Stock {
	stock := make([]domain.Stock, 0, len(found))
	for _, s := range found {
		stock = append(stock, r.daoToDomain(s))
	}

	return stock
}
