package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type OffsetCreditsRequest struct {
	Amount int `json:"amount"`
}

func (req *OffsetCreditsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
	)
}
