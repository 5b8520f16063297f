package domain

import "time"

// Stock is the current state of a product's inventory and resell price.
type Stock struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	StockLevel  int     `json:"stock_level"`
	ResellPrice float64 `json:"resell_price"`
}

// ResellPrice is the price projection of a stock record.
type ResellPrice struct {
	ProductID   string  `json:"product_id"`
	ResellPrice float64 `json:"resell_price"`
}

// ResellHistory is an append-only audit row recording a price change.
// Rows are never mutated or deleted once written.
type ResellHistory struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ResellPrice float64   `json:"resell_price"`
	TimeUpdated time.Time `json:"time_updated"`
}
