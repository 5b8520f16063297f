package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/repository"
)

var (
	ErrStockNotFound = repository.ErrStockNotFound
)

type StockRepository interface {
	FindAll(ctx context.Context) ([]domain.Stock, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (domain.Stock, error)
	FindByMaxStockLevel(ctx context.Context, stockLevel int) ([]domain.Stock, error)
	FindResellHistory(ctx context.Context, productID uuid.UUID) ([]domain.ResellHistory, error)
	UpdateResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (domain.Stock, error)
	UpdateStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (domain.Stock, error)
}

type StockService struct {
	repo StockRepository
}

func NewStockService(repo StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

func (s *StockService) GetAllStock(ctx context.Context) ([]domain.Stock, error) {
	stock, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stock, nil
}

func (s *StockService) GetStockByProductID(ctx context.Context, productID uuid.UUID) (domain.Stock, error) {
	stock, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.FindByProductID -> %w", err)
	}

	return stock, nil
}

// GetStockByStockLevel returns every record holding at most stockLevel units.
// A negative level matches nothing and yields an empty slice, not an error;
// rejecting negative input outright is the API boundary's job.
func (s *StockService) GetStockByStockLevel(ctx context.Context, stockLevel int) ([]domain.Stock, error) {
	stock, err := s.repo.FindByMaxStockLevel(ctx, stockLevel)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMaxStockLevel -> %w", err)
	}

	return stock, nil
}

func (s *StockService) GetResellPrice(ctx context.Context, productID uuid.UUID) (domain.ResellPrice, error) {
	stock, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return domain.ResellPrice{}, fmt.Errorf("s.repo.FindByProductID -> %w", err)
	}

	return domain.ResellPrice{
		ProductID:   stock.ProductID,
		ResellPrice: stock.ResellPrice,
	}, nil
}

func (s *StockService) GetResellHistory(ctx context.Context, productID uuid.UUID) ([]domain.ResellHistory, error) {
	history, err := s.repo.FindResellHistory(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindResellHistory -> %w", err)
	}

	return history, nil
}

// SetResellPrice updates the record's price and appends a resell-history row
// in one atomic unit. A negative price skips the mutation and returns the
// record as found: the service layer is deliberately permissive here and the
// request layer separately rejects negative input before dispatch. Keep the
// two checks split.
func (s *StockService) SetResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (domain.Stock, error) {
	if resellPrice < 0 {
		stock, err := s.repo.FindByProductID(ctx, productID)
		if err != nil {
			return domain.Stock{}, fmt.Errorf("s.repo.FindByProductID -> %w", err)
		}

		return stock, nil
	}

	updated, err := s.repo.UpdateResellPrice(ctx, productID, resellPrice)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.UpdateResellPrice -> %w", err)
	}

	return updated, nil
}

// SetStockLevel mutates only the quantity. Unlike price changes, stock-level
// changes are not historized. Negative levels get the same permissive skip
// as SetResellPrice.
func (s *StockService) SetStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (domain.Stock, error) {
	if stockLevel < 0 {
		stock, err := s.repo.FindByProductID(ctx, productID)
		if err != nil {
			return domain.Stock{}, fmt.Errorf("s.repo.FindByProductID -> %w", err)
		}

		return stock, nil
	}

	updated, err := s.repo.UpdateStockLevel(ctx, productID, stockLevel)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.UpdateStockLevel -> %w", err)
	}

	return updated, nil
}
