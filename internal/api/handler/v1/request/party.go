package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
)

type HostPartyRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Date           string   `json:"date"` // YYYY-MM-DD
	Location       string   `json:"location"`
	ImageURL       string   `json:"image_url"`
	Details        []string `json:"details"`
	Participants   int      `json:"participants"`
	ItemsPerPerson int      `json:"items_per_person"`
}

func (req *HostPartyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Participants, validation.Required, validation.Min(1)),
		validation.Field(&req.ItemsPerPerson, validation.Required, validation.Min(1)),
	)
}

type JoinPartyRequest struct {
	InvitationCode string `json:"invitation_code"`
}

func (req *JoinPartyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.InvitationCode, validation.Required),
	)
}

type UpdateParticipantStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateParticipantStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.ParticipantAccepted),
			string(domain.ParticipantRejected),
			string(domain.ParticipantAttended),
		)),
	)
}

// CheckInRequest carries the decoded QR ticket content.
type CheckInRequest struct {
	Party     string `json:"party"`
	User      string `json:"user"`
	Timestamp int64  `json:"timestamp"`
}

func (req *CheckInRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Party, validation.Required),
		validation.Field(&req.User, validation.Required),
	)
}

type CompletePartyRequest struct {
	FinalParticipants   int `json:"final_participants"`
	FinalItemsExchanged int `json:"final_items_exchanged"`
}

func (req *CompletePartyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FinalParticipants, validation.Required, validation.Min(1)),
		validation.Field(&req.FinalItemsExchanged, validation.Required, validation.Min(1)),
	)
}

type PartyApprovalRequest struct {
	Status string `json:"status"`
}

func (req *PartyApprovalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.PartyUpcoming),
			string(domain.PartyRejected),
		)),
	)
}
