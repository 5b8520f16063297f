package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylespence97/stock-api-back-end/internal/repository/dao"
)

type fakeStockDAO struct {
	stock   []dao.Stock
	history []dao.ResellHistory
	err     error
}

func (f *fakeStockDAO) FindAll(context.Context) ([]dao.Stock, error) {
	return f.stock, f.err
}

func (f *fakeStockDAO) FindByProductID(_ context.Context, productID uuid.UUID) (dao.Stock, error) {
	if f.err != nil {
		return dao.Stock{}, f.err
	}

	for _, s := range f.stock {
		if s.ProductID == productID {
			return s, nil
		}
	}

	return dao.Stock{}, dao.ErrStockNotFound
}

func (f *fakeStockDAO) FindByMaxStockLevel(_ context.Context, stockLevel int) ([]dao.Stock, error) {
	out := make([]dao.Stock, 0)
	for _, s := range f.stock {
		if s.StockLevel <= stockLevel {
			out = append(out, s)
		}
	}

	return out, f.err
}

func (f *fakeStockDAO) FindResellHistory(context.Context, uuid.UUID) ([]dao.ResellHistory, error) {
	return f.history, f.err
}

func (f *fakeStockDAO) UpdateResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (dao.Stock, error) {
	s, err := f.FindByProductID(ctx, productID)
	if err != nil {
		return dao.Stock{}, err
	}

	s.ResellPrice = resellPrice

	return s, nil
}

func (f *fakeStockDAO) UpdateStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (dao.Stock, error) {
	s, err := f.FindByProductID(ctx, productID)
	if err != nil {
		return dao.Stock{}, err
	}

	s.StockLevel = stockLevel

	return s, nil
}

func TestStockRepository_MapsDAOToDomain(t *testing.T) {
	id := uuid.New()
	productID := uuid.New()
	repo := NewStockRepository(&fakeStockDAO{
		stock: []dao.Stock{{ID: id, ProductID: productID, StockLevel: 10, ResellPrice: 10.99}},
	})

	stock, err := repo.FindByProductID(context.Background(), productID)

	require.NoError(t, err)
	assert.Equal(t, id.String(), stock.ID)
	assert.Equal(t, productID.String(), stock.ProductID)
	assert.Equal(t, 10, stock.StockLevel)
	assert.Equal(t, 10.99, stock.ResellPrice)
}

func TestStockRepository_MapsHistory(t *testing.T) {
	productID := uuid.New()
	when := time.Date(2019, 12, 2, 12, 0, 0, 0, time.UTC)
	repo := NewStockRepository(&fakeStockDAO{
		history: []dao.ResellHistory{{ID: uuid.New(), ProductID: productID, ResellPrice: 100.50, TimeUpdated: when}},
	})

	history, err := repo.FindResellHistory(context.Background(), productID)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, productID.String(), history[0].ProductID)
	assert.Equal(t, when, history[0].TimeUpdated)
}

func TestStockRepository_NotFoundSentinel(t *testing.T) {
	repo := NewStockRepository(&fakeStockDAO{})

	_, err := repo.FindByProductID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestStockRepository_WrapsStorageErrors(t *testing.T) {
	errBoom := errors.New("disk on fire")
	repo := NewStockRepository(&fakeStockDAO{err: errBoom})

	_, err := repo.FindAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrStockNotFound)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(errors.Join(dao.ErrTransient, errors.New("conn reset"))))
	assert.True(t, IsTransient(ErrRemoteUnavailable))
	assert.False(t, IsTransient(ErrStockNotFound))
	assert.False(t, IsTransient(errors.New("some other failure")))
	assert.False(t, IsTransient(nil))
}
