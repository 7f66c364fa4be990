package domain

import "time"

type PartyStatus string

const (
	PartyPendingApproval PartyStatus = "PENDING_APPROVAL"
	PartyUpcoming        PartyStatus = "UPCOMING"
	PartyRejected        PartyStatus = "REJECTED"
	PartyCompleted       PartyStatus = "COMPLETED"
)

func (s PartyStatus) IsValid() bool {
	switch s {
	case PartyPendingApproval, PartyUpcoming, PartyRejected, PartyCompleted:
		return true
	}

	return false
}

type ParticipantStatus string

const (
	ParticipantPending  ParticipantStatus = "PENDING"
	ParticipantAccepted ParticipantStatus = "ACCEPTED"
	ParticipantRejected ParticipantStatus = "REJECTED"
	ParticipantAttended ParticipantStatus = "ATTENDED"
)

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantPending, ParticipantAccepted, ParticipantRejected, ParticipantAttended:
		return true
	}

	return false
}

// CanTransitionTo encodes the participant state machine:
// PENDING -> {ACCEPTED, REJECTED}, ACCEPTED -> ATTENDED.
// REJECTED and ATTENDED are terminal.
func (s ParticipantStatus) CanTransitionTo(next ParticipantStatus) bool {
	switch s {
	case ParticipantPending:
		return next == ParticipantAccepted || next == ParticipantRejected
	case ParticipantAccepted:
		return next == ParticipantAttended
	}

	return false
}

// PartyParticipant stores the nickname as a point-in-time snapshot;
// renaming a user does not rewrite participation history.
type PartyParticipant struct {
	UserID   string            `json:"user_id"`
	Nickname string            `json:"nickname"`
	Status   ParticipantStatus `json:"status"`
}

type ImpactStats struct {
	ItemsExchanged int     `json:"items_exchanged"`
	WaterSaved     float64 `json:"water_saved"` // liters
	CO2Reduced     float64 `json:"co2_reduced"` // kg
}

type KitDetails struct {
	Participants   int `json:"participants"`
	ItemsPerPerson int `json:"items_per_person"`
	Cost           int `json:"cost"` // KRW
}

type Party struct {
	ID             string             `json:"id"`
	HostID         string             `json:"host_id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Date           string             `json:"date"` // YYYY-MM-DD
	Location       string             `json:"location"`
	ImageURL       string             `json:"image_url"`
	Details        []string           `json:"details"`
	Status         PartyStatus        `json:"status"`
	InvitationCode string             `json:"invitation_code"`
	Participants   []PartyParticipant `json:"participants"`
	Impact         *ImpactStats       `json:"impact,omitempty"`
	KitDetails     *KitDetails        `json:"kit_details,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Participant returns the participant record for the user, if any.
// At most one record exists per (party, user).
func (p *Party) Participant(userID string) (PartyParticipant, bool) {
	for _, pp := range p.Participants {
		if pp.UserID == userID {
			return pp, true
		}
	}

	return PartyParticipant{}, false
}

// ParticipantByNickname resolves check-in scans, which identify the
// attendee by nickname snapshot rather than user id.
func (p *Party) ParticipantByNickname(nickname string) (PartyParticipant, bool) {
	for _, pp := range p.Participants {
		if pp.Nickname == nickname {
			return pp, true
		}
	}

	return PartyParticipant{}, false
}
