package domain

import "time"

type ClothingCategory string

const (
	CategoryTShirt    ClothingCategory = "T-SHIRT"
	CategoryJeans     ClothingCategory = "JEANS"
	CategoryDress     ClothingCategory = "DRESS"
	CategoryJacket    ClothingCategory = "JACKET"
	CategoryAccessory ClothingCategory = "ACCESSORY"
)

func (c ClothingCategory) IsValid() bool {
	switch c {
	case CategoryTShirt, CategoryJeans, CategoryDress, CategoryJacket, CategoryAccessory:
		return true
	}

	return false
}

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "PENDING"
	SubmissionApproved SubmissionStatus = "APPROVED"
	SubmissionRejected SubmissionStatus = "REJECTED"
)

// GoodbyeTag is the farewell narrative attached when a user relinquishes
// an item.
type GoodbyeTag struct {
	MetWhen      string `json:"met_when"`
	MetWhere     string `json:"met_where"`
	WhyGot       string `json:"why_got"`
	WornCount    int    `json:"worn_count"`
	WhyLetGo     string `json:"why_let_go"`
	FinalMessage string `json:"final_message"`
}

// HelloTag is the welcome narrative attached when a user receives an item
// from someone else.
type HelloTag struct {
	ReceivedFrom    string `json:"received_from"` // nickname snapshot
	ReceivedAt      string `json:"received_at"`   // party title or "General Exchange"
	FirstImpression string `json:"first_impression"`
	HelloMessage    string `json:"hello_message"`
}

type TagKind string

const (
	TagGoodbye TagKind = "GOODBYE"
	TagHello   TagKind = "HELLO"
)

// Tag is the goodbye-or-hello union. An item carries exactly one of the
// two narratives; the constructors keep the exclusivity structural.
type Tag struct {
	Kind    TagKind     `json:"kind"`
	Goodbye *GoodbyeTag `json:"goodbye_tag,omitempty"`
	Hello   *HelloTag   `json:"hello_tag,omitempty"`
}

func NewGoodbyeItemTag(g GoodbyeTag) Tag {
	return Tag{Kind: TagGoodbye, Goodbye: &g}
}

func NewHelloItemTag(h HelloTag) Tag {
	return Tag{Kind: TagHello, Hello: &h}
}

type ClothingItem struct {
	ID                    string           `json:"id"`
	UserID                string           `json:"user_id"`
	UserNickname          string           `json:"user_nickname"` // snapshot at upload time
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	Category              ClothingCategory `json:"category"`
	Size                  string           `json:"size"`
	ImageURL              string           `json:"image_url"`
	IsListedForExchange   bool             `json:"is_listed_for_exchange"`
	Tag                   Tag              `json:"tag"`
	PartySubmissionStatus SubmissionStatus `json:"party_submission_status,omitempty"`
	SubmittedPartyID      string           `json:"submitted_party_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// Submittable reports whether the item can be entered into a party
// lineup. Only goodbye-tagged items ever leave their owner's closet.
func (i *ClothingItem) Submittable() bool {
	return i.Tag.Kind == TagGoodbye
}
