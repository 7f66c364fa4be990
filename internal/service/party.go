package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
)

var (
	ErrPartyNotFound       = repository.ErrPartyNotFound
	ErrAlreadyApplied      = repository.ErrParticipantExists
	ErrParticipantNotFound = repository.ErrParticipantNotFound

	ErrNotPartyHost        = errors.New("only the party host may perform this action")
	ErrCannotRemoveHost    = errors.New("the host cannot be removed from their own party")
	ErrWrongInvitationCode = errors.New("invitation code does not match this party")

	ErrIllegalPartyTransition       = errors.New("party status transition not allowed")
	ErrIllegalParticipantTransition = errors.New("participant status transition not allowed")
	ErrPartyNotCompletable          = errors.New("party cannot be completed from its current status")

	ErrCheckInWrongParty     = errors.New("check-in code belongs to a different party")
	ErrCheckInNotFound       = errors.New("no participant with that nickname")
	ErrCheckInAlreadyDone    = errors.New("participant already checked in")
	ErrCheckInNotAccepted    = errors.New("participant is not in accepted status")
	ErrInvalidCheckInPayload = errors.New("invalid check-in payload")
)

// Kit pricing: base fee plus a per-participant fee, in KRW.
const (
	kitBaseFee            = 50000
	kitPerParticipantFee  = 2183
	kitMinParticipants    = 1
	kitMinItemsPerPerson  = 1
	invitationCodeLength  = 6
	attendActivityPattern = "Party attendance: %s"
)

type PartyRepository interface {
	Create(ctx context.Context, party domain.Party) (domain.Party, error)
	FindByID(ctx context.Context, id string) (domain.Party, error)
	FindByInvitationCode(ctx context.Context, code string) (domain.Party, error)
	List(ctx context.Context, status domain.PartyStatus, search string) ([]domain.Party, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Party, error)
	Update(ctx context.Context, party domain.Party) (domain.Party, error)
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, partyID string, participant domain.PartyParticipant) (domain.Party, error)
	SetParticipantStatus(ctx context.Context, partyID, userID string, status domain.ParticipantStatus) (domain.Party, error)
	RemoveParticipant(ctx context.Context, partyID, userID string) error
}

// CreditLedger is the slice of the credit service the party workflows
// need: awarding attendance credits at check-in.
type CreditLedger interface {
	Earn(ctx context.Context, userID, activityName string, amount int, kind domain.CreditType) (domain.Credit, error)
}

// CheckInPayload is the externally-decoded QR content. Decoding itself
// (camera, barcode detection) happens outside this core.
type CheckInPayload struct {
	Party     string `json:"party"`
	User      string `json:"user"`
	Timestamp int64  `json:"timestamp"`
}

type KitEstimate struct {
	Tickets   int `json:"tickets"`
	Tags      int `json:"tags"`
	Receipts  int `json:"receipts"`
	TotalCost int `json:"total_cost"`
}

type PartyService struct {
	repo   PartyRepository
	ledger CreditLedger
}

func NewPartyService(repo PartyRepository, ledger CreditLedger) *PartyService {
	return &PartyService{
		repo:   repo,
		ledger: ledger,
	}
}

func (s *PartyService) GetParty(ctx context.Context, id string) (domain.Party, error) {
	party, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return party, nil
}

func (s *PartyService) ListParties(ctx context.Context, status domain.PartyStatus, search string) ([]domain.Party, error) {
	parties, err := s.repo.List(ctx, status, search)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return parties, nil
}

func (s *PartyService) ListPartiesForUser(ctx context.Context, userID string) ([]domain.Party, error) {
	parties, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListForUser -> %w", err)
	}

	return parties, nil
}

// HostParty is the user-facing creation path: the party starts at
// PENDING_APPROVAL awaiting admin review, and the host is auto-added as
// an ACCEPTED participant.
func (s *PartyService) HostParty(ctx context.Context, party domain.Party, host domain.User) (domain.Party, error) {
	party.HostID = host.ID
	party.Status = domain.PartyPendingApproval
	party.InvitationCode = newInvitationCode()
	party.Participants = []domain.PartyParticipant{
		{UserID: host.ID, Nickname: host.Nickname, Status: domain.ParticipantAccepted},
	}
	party.Impact = nil
	if party.KitDetails != nil {
		party.KitDetails.Cost = s.EstimateKit(party.KitDetails.Participants, party.KitDetails.ItemsPerPerson).TotalCost
	}

	created, err := s.repo.Create(ctx, party)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("party hosting requested",
		zap.String("partyID", created.ID),
		zap.String("hostID", host.ID))

	return created, nil
}

// AddParty is the admin creation path: the party starts at UPCOMING
// directly, with no participants. A second, intentional entry point
// with a different initial state than HostParty.
func (s *PartyService) AddParty(ctx context.Context, party domain.Party, admin domain.User) (domain.Party, error) {
	party.HostID = admin.ID
	party.Status = domain.PartyUpcoming
	party.InvitationCode = newInvitationCode()
	party.Participants = []domain.PartyParticipant{}
	party.Impact = nil
	if party.KitDetails != nil {
		party.KitDetails.Cost = s.EstimateKit(party.KitDetails.Participants, party.KitDetails.ItemsPerPerson).TotalCost
	}

	created, err := s.repo.Create(ctx, party)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PartyService) UpdateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	updated, err := s.repo.Update(ctx, party)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PartyService) DeleteParty(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Join applies the user to a party using its invitation code. An empty
// partyID resolves the party from the code alone. A user with an
// existing participant record cannot re-apply, even a rejected one.
func (s *PartyService) Join(ctx context.Context, partyID, invitationCode string, user domain.User) (domain.Party, error) {
	var (
		party domain.Party
		err   error
	)
	if partyID == "" {
		party, err = s.repo.FindByInvitationCode(ctx, invitationCode)
		if err != nil {
			return domain.Party{}, fmt.Errorf("s.repo.FindByInvitationCode -> %w", err)
		}
		partyID = party.ID
	} else {
		party, err = s.repo.FindByID(ctx, partyID)
		if err != nil {
			return domain.Party{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}
	}
	if party.InvitationCode != invitationCode {
		return domain.Party{}, ErrWrongInvitationCode
	}

	updated, err := s.repo.AddParticipant(ctx, partyID, domain.PartyParticipant{
		UserID:   user.ID,
		Nickname: user.Nickname,
		Status:   domain.ParticipantPending,
	})
	if err != nil {
		if errors.Is(err, repository.ErrParticipantExists) {
			return domain.Party{}, ErrAlreadyApplied
		}

		return domain.Party{}, fmt.Errorf("s.repo.AddParticipant -> %w", err)
	}

	return updated, nil
}

// Participants returns the roster; only the host or an admin may see it.
func (s *PartyService) Participants(ctx context.Context, partyID string, actor domain.User) ([]domain.PartyParticipant, error) {
	party, err := s.repo.FindByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if party.HostID != actor.ID && !actor.IsAdmin {
		return nil, ErrNotPartyHost
	}

	return party.Participants, nil
}

// UpdateParticipantStatus enforces the participant state machine in the
// mutator itself rather than trusting callers: PENDING -> {ACCEPTED,
// REJECTED}, ACCEPTED -> ATTENDED, everything else is an error.
func (s *PartyService) UpdateParticipantStatus(ctx context.Context, partyID, userID string, newStatus domain.ParticipantStatus, actor domain.User) (domain.Party, error) {
	party, err := s.repo.FindByID(ctx, partyID)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if party.HostID != actor.ID && !actor.IsAdmin {
		return domain.Party{}, ErrNotPartyHost
	}

	participant, ok := party.Participant(userID)
	if !ok {
		return domain.Party{}, ErrParticipantNotFound
	}
	if !participant.Status.CanTransitionTo(newStatus) {
		return domain.Party{}, ErrIllegalParticipantTransition
	}

	updated, err := s.repo.SetParticipantStatus(ctx, partyID, userID, newStatus)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.SetParticipantStatus -> %w", err)
	}

	zap.L().Info("participant status updated",
		zap.String("partyID", partyID),
		zap.String("userID", userID),
		zap.String("from", string(participant.Status)),
		zap.String("to", string(newStatus)))

	return updated, nil
}

func (s *PartyService) RemoveParticipant(ctx context.Context, partyID, userID string, actor domain.User) error {
	party, err := s.repo.FindByID(ctx, partyID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if party.HostID != actor.ID && !actor.IsAdmin {
		return ErrNotPartyHost
	}
	if userID == party.HostID {
		return ErrCannotRemoveHost
	}

	if err := s.repo.RemoveParticipant(ctx, partyID, userID); err != nil {
		return fmt.Errorf("s.repo.RemoveParticipant -> %w", err)
	}

	return nil
}

// CheckIn consumes a decoded QR payload and transitions the matching
// participant ACCEPTED -> ATTENDED, awarding the attendance credit.
// The scan identifies the attendee by nickname snapshot and the party by
// title, both embedded in the QR by the ticketing side.
func (s *PartyService) CheckIn(ctx context.Context, partyID string, payload CheckInPayload, actor domain.User) (domain.PartyParticipant, error) {
	if payload.Party == "" || payload.User == "" {
		return domain.PartyParticipant{}, ErrInvalidCheckInPayload
	}

	party, err := s.repo.FindByID(ctx, partyID)
	if err != nil {
		return domain.PartyParticipant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if party.HostID != actor.ID && !actor.IsAdmin {
		return domain.PartyParticipant{}, ErrNotPartyHost
	}
	if payload.Party != party.Title {
		return domain.PartyParticipant{}, ErrCheckInWrongParty
	}

	participant, ok := party.ParticipantByNickname(payload.User)
	if !ok {
		return domain.PartyParticipant{}, ErrCheckInNotFound
	}

	switch participant.Status {
	case domain.ParticipantAttended:
		return domain.PartyParticipant{}, ErrCheckInAlreadyDone
	case domain.ParticipantAccepted:
		// The only status check-in may proceed from.
	default:
		return domain.PartyParticipant{}, ErrCheckInNotAccepted
	}

	if _, err := s.repo.SetParticipantStatus(ctx, partyID, participant.UserID, domain.ParticipantAttended); err != nil {
		return domain.PartyParticipant{}, fmt.Errorf("s.repo.SetParticipantStatus -> %w", err)
	}

	if _, err := s.ledger.Earn(ctx, participant.UserID, fmt.Sprintf(attendActivityPattern, party.Title), CreditAmountEvent, domain.EarnedEvent); err != nil {
		zap.L().Error("failed to award attendance credit",
			zap.String("partyID", partyID),
			zap.String("userID", participant.UserID),
			zap.Error(err))
	}

	participant.Status = domain.ParticipantAttended

	return participant, nil
}

// UpdateApproval is the admin gate on the party lifecycle:
// PENDING_APPROVAL -> {UPCOMING, REJECTED}. Any other source status is
// rejected; COMPLETED and REJECTED are terminal.
func (s *PartyService) UpdateApproval(ctx context.Context, partyID string, newStatus domain.PartyStatus) (domain.Party, error) {
	if newStatus != domain.PartyUpcoming && newStatus != domain.PartyRejected {
		return domain.Party{}, ErrIllegalPartyTransition
	}

	party, err := s.repo.FindByID(ctx, partyID)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if party.Status != domain.PartyPendingApproval {
		return domain.Party{}, ErrIllegalPartyTransition
	}

	party.Status = newStatus
	updated, err := s.repo.Update(ctx, party)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	zap.L().Info("party approval updated",
		zap.String("partyID", partyID),
		zap.String("status", string(newStatus)))

	return updated, nil
}

// Complete records the host's final report and moves the party to
// COMPLETED. Impact uses the flat per-item averages. Re-submitting a
// report overwrites the previous impact; completion is not guarded
// against double submission.
func (s *PartyService) Complete(ctx context.Context, partyID string, finalParticipants, finalItemsExchanged int, actor domain.User) (domain.Party, error) {
	party, err := s.repo.FindByID(ctx, partyID)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if party.HostID != actor.ID && !actor.IsAdmin {
		return domain.Party{}, ErrNotPartyHost
	}
	if party.Status != domain.PartyUpcoming && party.Status != domain.PartyCompleted {
		return domain.Party{}, ErrPartyNotCompletable
	}

	impact := domain.CompletionImpact(finalItemsExchanged)
	party.Impact = &impact
	party.Status = domain.PartyCompleted
	if party.KitDetails != nil {
		party.KitDetails.Participants = finalParticipants
	}

	updated, err := s.repo.Update(ctx, party)
	if err != nil {
		return domain.Party{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	zap.L().Info("party completed",
		zap.String("partyID", partyID),
		zap.Int("itemsExchanged", finalItemsExchanged))

	return updated, nil
}

// EstimateKit sizes the physical party kit (tickets, tags, receipts)
// and its cost for the expected attendance.
func (s *PartyService) EstimateKit(participants, itemsPerPerson int) KitEstimate {
	if participants < kitMinParticipants {
		participants = kitMinParticipants
	}
	if itemsPerPerson < kitMinItemsPerPerson {
		itemsPerPerson = kitMinItemsPerPerson
	}

	return KitEstimate{
		Tickets:   participants * itemsPerPerson,
		Tags:      participants * itemsPerPerson,
		Receipts:  participants,
		TotalCost: kitBaseFee + participants*kitPerParticipantFee,
	}
}

func newInvitationCode() string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))

	return code[:invitationCodeLength]
}
