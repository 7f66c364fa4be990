package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
)

var (
	ErrItemNotFound = repository.ErrItemNotFound

	ErrNotItemOwner           = errors.New("only the item owner may perform this action")
	ErrItemNotSubmittable     = errors.New("only goodbye-tagged items can be submitted to a party")
	ErrNotAcceptedForParty    = errors.New("item owner is not an accepted participant of this party")
	ErrPartyNotOpen           = errors.New("party is not accepting submissions")
	ErrSubmissionNotRevocable = errors.New("approved submissions cannot be cancelled")
)

const registerActivityPattern = "Item registration: %s"

type ItemRepository interface {
	Create(ctx context.Context, item domain.ClothingItem) (domain.ClothingItem, error)
	FindByID(ctx context.Context, id string) (domain.ClothingItem, error)
	Update(ctx context.Context, item domain.ClothingItem) (domain.ClothingItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ClothingItem, error)
	ListListed(ctx context.Context) ([]domain.ClothingItem, error)
	ListApprovedForParty(ctx context.Context, partyID string) ([]domain.ClothingItem, error)
	ListAll(ctx context.Context) ([]domain.ClothingItem, error)
}

type itemPartyRepository interface {
	FindByID(ctx context.Context, id string) (domain.Party, error)
}

type ItemService struct {
	repo    ItemRepository
	parties itemPartyRepository
	ledger  CreditLedger
}

func NewItemService(repo ItemRepository, parties itemPartyRepository, ledger CreditLedger) *ItemService {
	return &ItemService{
		repo:    repo,
		parties: parties,
		ledger:  ledger,
	}
}

// RegisterItem adds an item to the owner's closet and awards the
// registration credit. Hello-tagged items land already listed for
// exchange; goodbye-tagged items with a target party go straight into
// that party's submission queue.
func (s *ItemService) RegisterItem(ctx context.Context, item domain.ClothingItem, owner domain.User, submitPartyID string) (domain.ClothingItem, error) {
	item.UserID = owner.ID
	item.UserNickname = owner.Nickname

	switch item.Tag.Kind {
	case domain.TagHello:
		item.IsListedForExchange = true
		item.PartySubmissionStatus = ""
		item.SubmittedPartyID = ""
	case domain.TagGoodbye:
		if submitPartyID != "" {
			if err := s.checkSubmission(ctx, &item, owner.ID, submitPartyID); err != nil {
				return domain.ClothingItem{}, err
			}
		}
	default:
		return domain.ClothingItem{}, fmt.Errorf("unknown tag kind %q", item.Tag.Kind)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if _, err := s.ledger.Earn(ctx, owner.ID, fmt.Sprintf(registerActivityPattern, created.Name), CreditAmountClothing, domain.EarnedClothing); err != nil {
		zap.L().Error("failed to award registration credit",
			zap.String("itemID", created.ID),
			zap.String("userID", owner.ID),
			zap.Error(err))
	}

	return created, nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (domain.ClothingItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *ItemService) ListMyItems(ctx context.Context, userID string) ([]domain.ClothingItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	return items, nil
}

// Browse returns either the general exchange view or, when partyID is
// set, the approved lineup of that party. The two predicates stay
// separate: a listed item never leaks into a party lineup and vice
// versa.
func (s *ItemService) Browse(ctx context.Context, partyID string) ([]domain.ClothingItem, error) {
	if partyID != "" {
		items, err := s.repo.ListApprovedForParty(ctx, partyID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.ListApprovedForParty -> %w", err)
		}

		return items, nil
	}

	items, err := s.repo.ListListed(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListListed -> %w", err)
	}

	return items, nil
}

func (s *ItemService) ListAllItems(ctx context.Context) ([]domain.ClothingItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return items, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, item domain.ClothingItem, actorID string) (domain.ClothingItem, error) {
	current, err := s.repo.FindByID(ctx, item.ID)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.UserID != actorID {
		return domain.ClothingItem{}, ErrNotItemOwner
	}

	// Ownership and submission state are not editable through profile
	// updates.
	item.UserID = current.UserID
	item.UserNickname = current.UserNickname
	item.PartySubmissionStatus = current.PartySubmissionStatus
	item.SubmittedPartyID = current.SubmittedPartyID

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ToggleListing flips the general-exchange visibility of an owned item.
func (s *ItemService) ToggleListing(ctx context.Context, itemID, actorID string) (domain.ClothingItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if item.UserID != actorID {
		return domain.ClothingItem{}, ErrNotItemOwner
	}

	item.IsListedForExchange = !item.IsListedForExchange

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SubmitToParty enters an owned goodbye-tagged item into a party's
// review queue. The owner must hold an ACCEPTED participation and the
// party must still be UPCOMING.
func (s *ItemService) SubmitToParty(ctx context.Context, itemID, partyID, actorID string) (domain.ClothingItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if item.UserID != actorID {
		return domain.ClothingItem{}, ErrNotItemOwner
	}

	if err := s.checkSubmission(ctx, &item, actorID, partyID); err != nil {
		return domain.ClothingItem{}, err
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	zap.L().Info("item submitted to party",
		zap.String("itemID", itemID),
		zap.String("partyID", partyID))

	return updated, nil
}

// CancelSubmission withdraws a PENDING or REJECTED submission, clearing
// both submission fields. Approved submissions are locked in: they are
// part of a published lineup.
func (s *ItemService) CancelSubmission(ctx context.Context, itemID, actorID string) (domain.ClothingItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if item.UserID != actorID {
		return domain.ClothingItem{}, ErrNotItemOwner
	}
	if item.PartySubmissionStatus == domain.SubmissionApproved {
		return domain.ClothingItem{}, ErrSubmissionNotRevocable
	}

	item.PartySubmissionStatus = ""
	item.SubmittedPartyID = ""

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ReviewSubmission is the host/admin verdict on a submitted item. The
// write is an unconditional overwrite: reviewers may flip a verdict in
// either direction while curating the lineup.
func (s *ItemService) ReviewSubmission(ctx context.Context, itemID string, status domain.SubmissionStatus, actor domain.User) (domain.ClothingItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !actor.IsAdmin {
		if item.SubmittedPartyID == "" {
			return domain.ClothingItem{}, ErrNotPartyHost
		}
		party, err := s.parties.FindByID(ctx, item.SubmittedPartyID)
		if err != nil {
			return domain.ClothingItem{}, fmt.Errorf("s.parties.FindByID -> %w", err)
		}
		if party.HostID != actor.ID {
			return domain.ClothingItem{}, ErrNotPartyHost
		}
	}

	item.PartySubmissionStatus = status

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.ClothingItem{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	zap.L().Info("submission reviewed",
		zap.String("itemID", itemID),
		zap.String("status", string(status)))

	return updated, nil
}

// PersonalImpact derives the saved-resources figures from the user's
// whole closet, hello and goodbye items alike.
func (s *ItemService) PersonalImpact(ctx context.Context, userID string) (domain.ImpactStats, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return domain.ImpactStats{}, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	return domain.PersonalImpact(items), nil
}

func (s *ItemService) checkSubmission(ctx context.Context, item *domain.ClothingItem, ownerID, partyID string) error {
	if !item.Submittable() {
		return ErrItemNotSubmittable
	}

	party, err := s.parties.FindByID(ctx, partyID)
	if err != nil {
		return fmt.Errorf("s.parties.FindByID -> %w", err)
	}
	if party.Status != domain.PartyUpcoming {
		return ErrPartyNotOpen
	}

	participant, ok := party.Participant(ownerID)
	if !ok || participant.Status != domain.ParticipantAccepted {
		return ErrNotAcceptedForParty
	}

	item.PartySubmissionStatus = domain.SubmissionPending
	item.SubmittedPartyID = partyID

	return nil
}
