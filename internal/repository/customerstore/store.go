// Package customerstore holds the locally owned customer-account data.
// Each Store is an explicitly injected instance with its own lifecycle,
// so tests and runs never share state through a package-level variable.
package customerstore

import (
	"sync"
	"time"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	customers []domain.Customer
	byID      map[string]int
}

func New(customers []domain.Customer) *Store {
	s := &Store{
		customers: make([]domain.Customer, 0, len(customers)),
		byID:      make(map[string]int, len(customers)),
	}

	for _, c := range customers {
		if _, ok := s.byID[c.ID]; ok {
			continue
		}
		s.byID[c.ID] = len(s.customers)
		s.customers = append(s.customers, c)
	}

	return s
}

// All returns the customers in insertion order.
func (s *Store) All() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)

	return out
}

func (s *Store) Get(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Customer{}, false
	}

	return s.customers[i], true
}

func (s *Store) SetCanPurchase(id string, canPurchase bool) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Customer{}, false
	}

	s.customers[i].CanPurchase = canPurchase

	return s.customers[i], true
}

// DefaultCustomers is the demo account data served in development.
func DefaultCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:          "3854b6c9-e018-4fb7-8b63-1067384210a9",
			FirstName:   "User",
			LastName:    "A",
			Email:       "UserA@gmail.com",
			Address:     "House A",
			Postcode:    "TS1",
			DOB:         time.Date(1997, 11, 20, 0, 0, 0, 0, time.UTC),
			LoggedOnAt:  time.Date(2019, 11, 25, 16, 30, 0, 0, time.UTC),
			PhoneNumber: "123",
			CanPurchase: true,
		},
		{
			ID:          "ca72dc93-4ffa-48a7-9408-6332907fc9a7",
			FirstName:   "User",
			LastName:    "B",
			Email:       "UserB@gmail.com",
			Address:     "House B",
			Postcode:    "TS2",
			DOB:         time.Date(1997, 11, 21, 0, 0, 0, 0, time.UTC),
			LoggedOnAt:  time.Date(2019, 11, 25, 16, 31, 0, 0, time.UTC),
			PhoneNumber: "456",
			CanPurchase: true,
		},
		{
			ID:          "1ba5067e-2869-40b2-ad5c-e4d6e2ac8958",
			FirstName:   "User",
			LastName:    "C",
			Email:       "UserC@gmail.com",
			Address:     "House C",
			Postcode:    "TS3",
			DOB:         time.Date(1997, 11, 22, 0, 0, 0, 0, time.UTC),
			LoggedOnAt:  time.Date(2019, 11, 25, 16, 32, 0, 0, time.UTC),
			PhoneNumber: "789",
			CanPurchase: true,
		},
	}
}
