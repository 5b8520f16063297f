package domain

import "time"

// Customer is an account record owned by the customer-accounts domain.
// This service only reads profiles and flips the purchase-ability flag.
type Customer struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Postcode    string    `json:"postcode"`
	DOB         time.Time `json:"dob"`
	LoggedOnAt  time.Time `json:"logged_on_at"`
	PhoneNumber string    `json:"phone_number"`
	CanPurchase bool      `json:"can_purchase"`
}
