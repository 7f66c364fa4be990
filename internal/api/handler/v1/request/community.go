package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateStoryRequest struct {
	Title    string   `json:"title"`
	PartyID  string   `json:"party_id"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

func (req *CreateStoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Content, validation.Required),
	)
}

type UpdateStoryRequest struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

func (req *UpdateStoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Content, validation.Required),
	)
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (req *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(1, 500)),
	)
}

type CreateReportRequest struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
}

func (req *CreateReportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
	)
}
