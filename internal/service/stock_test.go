package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/repository"
)

// fakeStockRepo mimics the persistence gateway in memory, including the
// atomic update+append behaviour of the price mutation.
type fakeStockRepo struct {
	stock   []domain.Stock
	history []domain.ResellHistory
	err     error
}

func (f *fakeStockRepo) FindAll(_ context.Context) ([]domain.Stock, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]domain.Stock, len(f.stock))
	copy(out, f.stock)

	return out, nil
}

func (f *fakeStockRepo) FindByProductID(_ context.Context, productID uuid.UUID) (domain.Stock, error) {
	if f.err != nil {
		return domain.Stock{}, f.err
	}

	for _, s := range f.stock {
		if s.ProductID == productID.String() {
			return s, nil
		}
	}

	return domain.Stock{}, repository.ErrStockNotFound
}

func (f *fakeStockRepo) FindByMaxStockLevel(_ context.Context, stockLevel int) ([]domain.Stock, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]domain.Stock, 0)
	for _, s := range f.stock {
		if s.StockLevel <= stockLevel {
			out = append(out, s)
		}
	}

	return out, nil
}

func (f *fakeStockRepo) FindResellHistory(_ context.Context, productID uuid.UUID) ([]domain.ResellHistory, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]domain.ResellHistory, 0)
	for _, h := range f.history {
		if h.ProductID == productID.String() {
			out = append(out, h)
		}
	}

	return out, nil
}

func (f *fakeStockRepo) UpdateResellPrice(_ context.Context, productID uuid.UUID, resellPrice float64) (domain.Stock, error) {
	if f.err != nil {
		return domain.Stock{}, f.err
	}

	for i, s := range f.stock {
		if s.ProductID == productID.String() {
			f.stock[i].ResellPrice = resellPrice
			f.history = append(f.history, domain.ResellHistory{
				ID:          uuid.NewString(),
				ProductID:   productID.String(),
				ResellPrice: resellPrice,
				TimeUpdated: time.Now().UTC(),
			})

			return f.stock[i], nil
		}
	}

	return domain.Stock{}, repository.ErrStockNotFound
}

func (f *fakeStockRepo) UpdateStockLevel(_ context.Context, productID uuid.UUID, stockLevel int) (domain.Stock, error) {
	if f.err != nil {
		return domain.Stock{}, f.err
	}

	for i, s := range f.stock {
		if s.ProductID == productID.String() {
			f.stock[i].StockLevel = stockLevel
			return f.stock[i], nil
		}
	}

	return domain.Stock{}, repository.ErrStockNotFound
}

func seededRepo(t *testing.T) (*fakeStockRepo, []uuid.UUID) {
	t.Helper()

	productIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	repo := &fakeStockRepo{
		stock: []domain.Stock{
			{ID: uuid.NewString(), ProductID: productIDs[0].String(), StockLevel: 10, ResellPrice: 10.99},
			{ID: uuid.NewString(), ProductID: productIDs[1].String(), StockLevel: 20, ResellPrice: 20.99},
			{ID: uuid.NewString(), ProductID: productIDs[2].String(), StockLevel: 30, ResellPrice: 30.99},
		},
	}

	return repo, productIDs
}

func TestStockService_GetAllStock(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	stock, err := svc.GetAllStock(context.Background())

	require.NoError(t, err)
	require.Len(t, stock, 3)
	assert.Equal(t, 10, stock[0].StockLevel)
	assert.Equal(t, 30, stock[2].StockLevel)
}

func TestStockService_GetAllStock_Empty(t *testing.T) {
	svc := NewStockService(&fakeStockRepo{})

	stock, err := svc.GetAllStock(context.Background())

	require.NoError(t, err)
	assert.Empty(t, stock)
}

func TestStockService_GetStockByProductID(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	stock, err := svc.GetStockByProductID(context.Background(), productIDs[1])

	require.NoError(t, err)
	assert.Equal(t, productIDs[1].String(), stock.ProductID)
	assert.Equal(t, 20.99, stock.ResellPrice)
}

func TestStockService_GetStockByProductID_NotFound(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	_, err := svc.GetStockByProductID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestStockService_GetStockByStockLevel(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	stock, err := svc.GetStockByStockLevel(context.Background(), 15)

	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, productIDs[0].String(), stock[0].ProductID)
}

func TestStockService_GetStockByStockLevel_Negative(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	stock, err := svc.GetStockByStockLevel(context.Background(), -1)

	require.NoError(t, err)
	assert.Empty(t, stock)
}

func TestStockService_GetResellPrice(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	price, err := svc.GetResellPrice(context.Background(), productIDs[0])

	require.NoError(t, err)
	assert.Equal(t, domain.ResellPrice{ProductID: productIDs[0].String(), ResellPrice: 10.99}, price)
}

func TestStockService_GetResellPrice_NotFound(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	_, err := svc.GetResellPrice(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestStockService_GetResellHistory_Empty(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	history, err := svc.GetResellHistory(context.Background(), productIDs[0])

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStockService_SetResellPrice(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	updated, err := svc.SetResellPrice(context.Background(), productIDs[0], 8.50)

	require.NoError(t, err)
	assert.Equal(t, 8.50, updated.ResellPrice)
	assert.Equal(t, 10, updated.StockLevel)

	history, err := svc.GetResellHistory(context.Background(), productIDs[0])
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, productIDs[0].String(), history[0].ProductID)
	assert.Equal(t, 8.50, history[0].ResellPrice)
}

func TestStockService_SetResellPrice_NotFound(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	_, err := svc.SetResellPrice(context.Background(), uuid.New(), 8.50)

	assert.ErrorIs(t, err, ErrStockNotFound)
	assert.Empty(t, repo.history)
}

func TestStockService_SetResellPrice_NegativeSkipsMutation(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	stock, err := svc.SetResellPrice(context.Background(), productIDs[0], -1)

	require.NoError(t, err)
	assert.Equal(t, 10.99, stock.ResellPrice)
	assert.Empty(t, repo.history)
}

func TestStockService_SetResellPrice_NegativeUnknownProduct(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	_, err := svc.SetResellPrice(context.Background(), uuid.New(), -1)

	assert.ErrorIs(t, err, ErrStockNotFound)
}

// A retried price-set with identical arguments must leave the current state
// correct; the extra history row is an accepted artifact of the retry design.
func TestStockService_SetResellPrice_IdempotentUnderRetry(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	_, err := svc.SetResellPrice(context.Background(), productIDs[0], 8.50)
	require.NoError(t, err)
	updated, err := svc.SetResellPrice(context.Background(), productIDs[0], 8.50)
	require.NoError(t, err)

	assert.Equal(t, 8.50, updated.ResellPrice)

	history, err := svc.GetResellHistory(context.Background(), productIDs[0])
	require.NoError(t, err)
	assert.Len(t, history, 2)
	for _, h := range history {
		assert.Equal(t, 8.50, h.ResellPrice)
	}
}

func TestStockService_SetStockLevel(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	updated, err := svc.SetStockLevel(context.Background(), productIDs[0], 99)

	require.NoError(t, err)
	assert.Equal(t, 99, updated.StockLevel)
	assert.Equal(t, 10.99, updated.ResellPrice)
	assert.Empty(t, repo.history, "stock-level changes are not historized")
}

func TestStockService_SetStockLevel_NegativeSkipsMutation(t *testing.T) {
	repo, productIDs := seededRepo(t)
	svc := NewStockService(repo)

	stock, err := svc.SetStockLevel(context.Background(), productIDs[0], -50)

	require.NoError(t, err)
	assert.Equal(t, 10, stock.StockLevel)
}

func TestStockService_SetStockLevel_NotFound(t *testing.T) {
	repo, _ := seededRepo(t)
	svc := NewStockService(repo)

	_, err := svc.SetStockLevel(context.Background(), uuid.New(), 99)

	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestStockService_PropagatesStorageErrors(t *testing.T) {
	errBoom := errors.New("connection refused")
	svc := NewStockService(&fakeStockRepo{err: errBoom})

	_, err := svc.GetAllStock(context.Background())

	assert.ErrorIs(t, err, errBoom)
}
