package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
)

var (
	errUnknownCategory = errors.New("unknown clothing category")
	errMissingTag      = errors.New("exactly one of goodbye_tag or hello_tag is required")
	errAmbiguousTag    = errors.New("goodbye_tag and hello_tag are mutually exclusive")
)

type GoodbyeTagRequest struct {
	MetWhen      string `json:"met_when"`
	MetWhere     string `json:"met_where"`
	WhyGot       string `json:"why_got"`
	WornCount    int    `json:"worn_count"`
	WhyLetGo     string `json:"why_let_go"`
	FinalMessage string `json:"final_message"`
}

type HelloTagRequest struct {
	ReceivedFrom    string `json:"received_from"`
	ReceivedAt      string `json:"received_at"`
	FirstImpression string `json:"first_impression"`
	HelloMessage    string `json:"hello_message"`
}

type CreateItemRequest struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Category      string             `json:"category"`
	Size          string             `json:"size"`
	ImageURL      string             `json:"image_url"`
	GoodbyeTag    *GoodbyeTagRequest `json:"goodbye_tag,omitempty"`
	HelloTag      *HelloTagRequest   `json:"hello_tag,omitempty"`
	SubmitPartyID string             `json:"submit_party_id,omitempty"`
}

func (req *CreateItemRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Size, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.ClothingCategory(req.Category).IsValid() {
		return errUnknownCategory
	}

	switch {
	case req.GoodbyeTag == nil && req.HelloTag == nil:
		return errMissingTag
	case req.GoodbyeTag != nil && req.HelloTag != nil:
		return errAmbiguousTag
	}

	return nil
}

// Tag converts the request's tag side into the domain union.
func (req *CreateItemRequest) Tag() domain.Tag {
	if req.GoodbyeTag != nil {
		return domain.NewGoodbyeItemTag(domain.GoodbyeTag{
			MetWhen:      req.GoodbyeTag.MetWhen,
			MetWhere:     req.GoodbyeTag.MetWhere,
			WhyGot:       req.GoodbyeTag.WhyGot,
			WornCount:    req.GoodbyeTag.WornCount,
			WhyLetGo:     req.GoodbyeTag.WhyLetGo,
			FinalMessage: req.GoodbyeTag.FinalMessage,
		})
	}

	return domain.NewHelloItemTag(domain.HelloTag{
		ReceivedFrom:    req.HelloTag.ReceivedFrom,
		ReceivedAt:      req.HelloTag.ReceivedAt,
		FirstImpression: req.HelloTag.FirstImpression,
		HelloMessage:    req.HelloTag.HelloMessage,
	})
}

type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Size        string `json:"size"`
	ImageURL    string `json:"image_url"`
}

func (req *UpdateItemRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.ClothingCategory(req.Category).IsValid() {
		return errUnknownCategory
	}

	return nil
}

type SubmitItemRequest struct {
	PartyID string `json:"party_id"`
}

func (req *SubmitItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PartyID, validation.Required),
	)
}

type ReviewSubmissionRequest struct {
	Status string `json:"status"`
}

func (req *ReviewSubmissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.SubmissionPending),
			string(domain.SubmissionApproved),
			string(domain.SubmissionRejected),
		)),
	)
}

type AnalyzeItemRequest struct {
	ImageBase64 string `json:"image_base64"`
}

func (req *AnalyzeItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ImageBase64, validation.Required),
	)
}
