package service

import (
	"context"
	"fmt"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/repository"
)

var (
	ErrCustomerNotFound = repository.ErrCustomerNotFound
)

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (domain.Customer, error)
	UpdatePurchaseAbility(ctx context.Context, id string, canPurchase bool) (domain.Customer, error)
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return customers, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id string) (domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return customer, nil
}

func (s *CustomerService) SetPurchaseAbility(ctx context.Context, id string, canPurchase bool) (domain.Customer, error) {
	customer, err := s.repo.UpdatePurchaseAbility(ctx, id, canPurchase)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("s.repo.UpdatePurchaseAbility -> %w", err)
	}

	return customer, nil
}
