package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// The boundary rejects negative values outright even though the domain
// service would quietly skip them. Both checks are intentional.

type SetResellPriceRequest struct {
	ResellPrice *float64 `json:"resell_price"`
}

func (req *SetResellPriceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ResellPrice, validation.NotNil, validation.Min(0.0)),
	)
}

type SetStockLevelRequest struct {
	StockLevel *int `json:"stock_level"`
}

func (req *SetStockLevelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StockLevel, validation.NotNil, validation.Min(0)),
	)
}
