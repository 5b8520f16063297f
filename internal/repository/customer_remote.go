package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kylespence97/stock-api-back-end/internal/domain"
)

// ErrRemoteUnavailable marks accounts-API failures that are worth retrying.
var ErrRemoteUnavailable = errors.New("customer accounts service unavailable")

// RemoteCustomerRepository is the "external" customer-account variant,
// backed by the customer-accounts team's API.
type RemoteCustomerRepository struct {
	client  *http.Client
	baseURL string
}

func NewRemoteCustomerRepository(client *http.Client, baseURL string) *RemoteCustomerRepository {
	if client == nil {
		client = http.DefaultClient
	}

	return &RemoteCustomerRepository{
		client:  client,
		baseURL: baseURL,
	}
}

func (r *RemoteCustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := r.get(ctx, "/api/Accounts/GetCustomers", &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *RemoteCustomerRepository) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	var customer domain.Customer
	path := "/api/Accounts/GetCustomer?accountId=" + url.QueryEscape(id)
	if err := r.get(ctx, path, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (r *RemoteCustomerRepository) UpdatePurchaseAbility(ctx context.Context, id string, canPurchase bool) (domain.Customer, error) {
	var customer domain.Customer
	path := "/api/Accounts/UpdatePurchaseAbility?accountId=" + url.QueryEscape(id) +
		"&purchaseAbility=" + strconv.FormatBool(canPurchase)
	if err := r.get(ctx, path, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (r *RemoteCustomerRepository) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Join(ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrCustomerNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %v", ErrRemoteUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("accounts API returned status %v", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	return nil
}
