package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateProfileRequest struct {
	Nickname    string `json:"nickname"`
	PhoneNumber string `json:"phone_number"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nickname, validation.Length(2, 30)),
		validation.Field(&req.PhoneNumber, validation.Length(0, 20)),
	)
}

type SetNeighborsRequest struct {
	NeighborIDs []string `json:"neighbor_ids"`
}

func (req *SetNeighborsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NeighborIDs, validation.NotNil),
	)
}
