package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SetPurchaseAbilityRequest struct {
	CanPurchase *bool `json:"can_purchase"`
}

func (req *SetPurchaseAbilityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CanPurchase, validation.NotNil),
	)
}
