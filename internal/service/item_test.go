package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

type itemFixture struct {
	items   *service.ItemService
	parties *service.PartyService
	credits *service.CreditService
	owner   domain.User
	host    domain.User
}

func newItemFixture() *itemFixture {
	st := store.New()
	credits := service.NewCreditService(repository.NewCreditRepository(st))
	partyRepo := repository.NewPartyRepository(st)

	return &itemFixture{
		items:   service.NewItemService(repository.NewItemRepository(st), partyRepo, credits),
		parties: service.NewPartyService(partyRepo, credits),
		credits: credits,
		owner:   domain.User{ID: "u1", Nickname: "EcoOwner"},
		host:    domain.User{ID: "u2", Nickname: "PartyHost"},
	}
}

func goodbyeItem(name string) domain.ClothingItem {
	return domain.ClothingItem{
		Name:     name,
		Category: domain.CategoryJeans,
		Size:     "M",
		Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{
			MetWhen:  "2023",
			WhyLetGo: "outgrown",
		}),
	}
}

func (f *itemFixture) upcomingPartyWithOwnerAccepted(t *testing.T) domain.Party {
	t.Helper()
	ctx := context.Background()

	party, err := f.parties.HostParty(ctx, domain.Party{Title: "Swap Night"}, f.host)
	require.NoError(t, err)
	party, err = f.parties.UpdateApproval(ctx, party.ID, domain.PartyUpcoming)
	require.NoError(t, err)
	_, err = f.parties.Join(ctx, party.ID, party.InvitationCode, f.owner)
	require.NoError(t, err)
	party, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.owner.ID, domain.ParticipantAccepted, f.host)
	require.NoError(t, err)

	return party
}

func TestItemService_RegisterAwardsCredit(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Old Jeans"), f.owner, "")
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, item.UserID)
	assert.Equal(t, "EcoOwner", item.UserNickname)
	assert.False(t, item.IsListedForExchange)

	balance, err := f.credits.Balance(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, service.CreditAmountClothing, balance)

	history, err := f.credits.History(ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Item registration: Old Jeans", history[0].ActivityName)
	assert.Equal(t, domain.EarnedClothing, history[0].Type)
}

func TestItemService_HelloItemIsListedImmediately(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()

	item, err := f.items.RegisterItem(ctx, domain.ClothingItem{
		Name:     "Gifted Dress",
		Category: domain.CategoryDress,
		Size:     "S",
		Tag: domain.NewHelloItemTag(domain.HelloTag{
			ReceivedFrom: "GreenFriend",
			ReceivedAt:   "General Exchange",
		}),
	}, f.owner, "")
	require.NoError(t, err)
	assert.True(t, item.IsListedForExchange)
}

func TestItemService_SubmissionRequiresAcceptedParticipation(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()

	party, err := f.parties.HostParty(ctx, domain.Party{Title: "Swap Night"}, f.host)
	require.NoError(t, err)
	party, err = f.parties.UpdateApproval(ctx, party.ID, domain.PartyUpcoming)
	require.NoError(t, err)

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Old Jeans"), f.owner, "")
	require.NoError(t, err)

	// The owner never applied to the party.
	_, err = f.items.SubmitToParty(ctx, item.ID, party.ID, f.owner.ID)
	assert.ErrorIs(t, err, service.ErrNotAcceptedForParty)

	_, err = f.parties.Join(ctx, party.ID, party.InvitationCode, f.owner)
	require.NoError(t, err)

	// Still only PENDING.
	_, err = f.items.SubmitToParty(ctx, item.ID, party.ID, f.owner.ID)
	assert.ErrorIs(t, err, service.ErrNotAcceptedForParty)

	_, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.owner.ID, domain.ParticipantAccepted, f.host)
	require.NoError(t, err)

	submitted, err := f.items.SubmitToParty(ctx, item.ID, party.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionPending, submitted.PartySubmissionStatus)
	assert.Equal(t, party.ID, submitted.SubmittedPartyID)
}

func TestItemService_HelloItemsAreNotSubmittable(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()
	party := f.upcomingPartyWithOwnerAccepted(t)

	item, err := f.items.RegisterItem(ctx, domain.ClothingItem{
		Name:     "Gifted Hat",
		Category: domain.CategoryAccessory,
		Size:     "F",
		Tag:      domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "X"}),
	}, f.owner, "")
	require.NoError(t, err)

	_, err = f.items.SubmitToParty(ctx, item.ID, party.ID, f.owner.ID)
	assert.ErrorIs(t, err, service.ErrItemNotSubmittable)
}

func TestItemService_RegisterWithDirectSubmission(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()
	party := f.upcomingPartyWithOwnerAccepted(t)

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Winter Coat"), f.owner, party.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionPending, item.PartySubmissionStatus)
	assert.Equal(t, party.ID, item.SubmittedPartyID)
}

func TestItemService_CancelSubmission(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()
	party := f.upcomingPartyWithOwnerAccepted(t)

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Old Jeans"), f.owner, party.ID)
	require.NoError(t, err)

	cancelled, err := f.items.CancelSubmission(ctx, item.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, cancelled.PartySubmissionStatus)
	assert.Empty(t, cancelled.SubmittedPartyID)
}

func TestItemService_ApprovedSubmissionIsLocked(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()
	party := f.upcomingPartyWithOwnerAccepted(t)

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Old Jeans"), f.owner, party.ID)
	require.NoError(t, err)

	_, err = f.items.ReviewSubmission(ctx, item.ID, domain.SubmissionApproved, f.host)
	require.NoError(t, err)

	_, err = f.items.CancelSubmission(ctx, item.ID, f.owner.ID)
	assert.ErrorIs(t, err, service.ErrSubmissionNotRevocable)
}

func TestItemService_ReviewRequiresHostOrAdmin(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()
	party := f.upcomingPartyWithOwnerAccepted(t)

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Old Jeans"), f.owner, party.ID)
	require.NoError(t, err)

	_, err = f.items.ReviewSubmission(ctx, item.ID, domain.SubmissionApproved, f.owner)
	assert.ErrorIs(t, err, service.ErrNotPartyHost)

	admin := domain.User{ID: "a1", Nickname: "Admin", IsAdmin: true}
	reviewed, err := f.items.ReviewSubmission(ctx, item.ID, domain.SubmissionRejected, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRejected, reviewed.PartySubmissionStatus)

	// Reviewers may flip a verdict.
	reviewed, err = f.items.ReviewSubmission(ctx, item.ID, domain.SubmissionApproved, f.host)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, reviewed.PartySubmissionStatus)
}

func TestItemService_BrowsePredicatesStaySeparate(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()
	party := f.upcomingPartyWithOwnerAccepted(t)

	listed, err := f.items.RegisterItem(ctx, domain.ClothingItem{
		Name:     "Hello Scarf",
		Category: domain.CategoryAccessory,
		Size:     "F",
		Tag:      domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "X"}),
	}, f.owner, "")
	require.NoError(t, err)

	submitted, err := f.items.RegisterItem(ctx, goodbyeItem("Party Jeans"), f.owner, party.ID)
	require.NoError(t, err)
	_, err = f.items.ReviewSubmission(ctx, submitted.ID, domain.SubmissionApproved, f.host)
	require.NoError(t, err)

	general, err := f.items.Browse(ctx, "")
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, listed.ID, general[0].ID)

	lineup, err := f.items.Browse(ctx, party.ID)
	require.NoError(t, err)
	require.Len(t, lineup, 1)
	assert.Equal(t, submitted.ID, lineup[0].ID)
}

func TestItemService_ToggleListingOwnerOnly(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()

	item, err := f.items.RegisterItem(ctx, goodbyeItem("Old Jeans"), f.owner, "")
	require.NoError(t, err)

	_, err = f.items.ToggleListing(ctx, item.ID, "someone-else")
	assert.ErrorIs(t, err, service.ErrNotItemOwner)

	toggled, err := f.items.ToggleListing(ctx, item.ID, f.owner.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsListedForExchange)

	toggled, err = f.items.ToggleListing(ctx, item.ID, f.owner.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsListedForExchange)
}

func TestItemService_PersonalImpactIsCategoryWeighted(t *testing.T) {
	f := newItemFixture()
	ctx := context.Background()

	_, err := f.items.RegisterItem(ctx, goodbyeItem("Jeans"), f.owner, "")
	require.NoError(t, err)
	_, err = f.items.RegisterItem(ctx, domain.ClothingItem{
		Name:     "Tee",
		Category: domain.CategoryTShirt,
		Size:     "M",
		Tag:      domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "X"}),
	}, f.owner, "")
	require.NoError(t, err)

	impact, err := f.items.PersonalImpact(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, impact.ItemsExchanged)
	assert.InDelta(t, 7600+2700, impact.WaterSaved, 0.001)
	assert.InDelta(t, 22+5.5, impact.CO2Reduced, 0.001)
}
