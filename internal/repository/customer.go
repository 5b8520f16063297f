package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/repository/customerstore"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// LocalCustomerRepository serves customer accounts from an owned in-memory
// store. It is the "internal" variant; the "external" variant talks to the
// remote accounts API. Both are chosen at composition time in the server.
type LocalCustomerRepository struct {
	store *customerstore.Store
}

func NewLocalCustomerRepository(store *customerstore.Store) *LocalCustomerRepository {
	return &LocalCustomerRepository{
		store: store,
	}
}

func (r *LocalCustomerRepository) FindAll(_ context.Context) ([]domain.Customer, error) {
	return r.store.All(), nil
}

func (r *LocalCustomerRepository) FindByID(_ context.Context, id string) (domain.Customer, error) {
	customer, ok := r.store.Get(id)
	if !ok {
		return domain.Customer{}, fmt.Errorf("%w: %v", ErrCustomerNotFound, id)
	}

	return customer, nil
}

func (r *LocalCustomerRepository) UpdatePurchaseAbility(_ context.Context, id string, canPurchase bool) (domain.Customer, error) {
	customer, ok := r.store.SetCanPurchase(id, canPurchase)
	if !ok {
		return domain.Customer{}, fmt.Errorf("%w: %v", ErrCustomerNotFound, id)
	}

	return customer, nil
}
