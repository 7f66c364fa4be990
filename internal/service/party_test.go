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

type partyFixture struct {
	parties *service.PartyService
	credits *service.CreditService
	host    domain.User
	guest   domain.User
}

func newPartyFixture() *partyFixture {
	st := store.New()
	credits := service.NewCreditService(repository.NewCreditRepository(st))

	return &partyFixture{
		parties: service.NewPartyService(repository.NewPartyRepository(st), credits),
		credits: credits,
		host:    domain.User{ID: "host1", Nickname: "GreenHost"},
		guest:   domain.User{ID: "guest1", Nickname: "EcoGuest"},
	}
}

// hostUpcomingParty runs the host request through admin approval so the
// party lands in UPCOMING with the host accepted.
func (f *partyFixture) hostUpcomingParty(t *testing.T) domain.Party {
	t.Helper()
	ctx := context.Background()

	party, err := f.parties.HostParty(ctx, domain.Party{
		Title:    "Seongsu Exchange",
		Date:     "2026-09-12",
		Location: "Seongsu-dong",
	}, f.host)
	require.NoError(t, err)
	require.Equal(t, domain.PartyPendingApproval, party.Status)
	require.NotEmpty(t, party.InvitationCode)

	approved, err := f.parties.UpdateApproval(ctx, party.ID, domain.PartyUpcoming)
	require.NoError(t, err)
	require.Equal(t, domain.PartyUpcoming, approved.Status)

	return approved
}

func TestPartyService_HostAddsHostAsAccepted(t *testing.T) {
	f := newPartyFixture()
	party := f.hostUpcomingParty(t)

	participant, ok := party.Participant(f.host.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ParticipantAccepted, participant.Status)
	assert.Equal(t, "GreenHost", participant.Nickname)
}

func TestPartyService_ApprovalGate(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()

	party, err := f.parties.HostParty(ctx, domain.Party{Title: "P"}, f.host)
	require.NoError(t, err)

	// COMPLETED is not a legal approval verdict.
	_, err = f.parties.UpdateApproval(ctx, party.ID, domain.PartyCompleted)
	assert.ErrorIs(t, err, service.ErrIllegalPartyTransition)

	rejected, err := f.parties.UpdateApproval(ctx, party.ID, domain.PartyRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.PartyRejected, rejected.Status)

	// REJECTED is terminal.
	_, err = f.parties.UpdateApproval(ctx, party.ID, domain.PartyUpcoming)
	assert.ErrorIs(t, err, service.ErrIllegalPartyTransition)
}

func TestPartyService_JoinRequiresCodeAndIsOncePerUser(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	_, err := f.parties.Join(ctx, party.ID, "WRONG1", f.guest)
	assert.ErrorIs(t, err, service.ErrWrongInvitationCode)

	joined, err := f.parties.Join(ctx, party.ID, party.InvitationCode, f.guest)
	require.NoError(t, err)
	participant, ok := joined.Participant(f.guest.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ParticipantPending, participant.Status)

	_, err = f.parties.Join(ctx, party.ID, party.InvitationCode, f.guest)
	assert.ErrorIs(t, err, service.ErrAlreadyApplied)
}

func TestPartyService_JoinByCodeAlone(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	joined, err := f.parties.Join(ctx, "", party.InvitationCode, f.guest)
	require.NoError(t, err)
	assert.Equal(t, party.ID, joined.ID)
}

func TestPartyService_ParticipantTransitions(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	_, err := f.parties.Join(ctx, party.ID, party.InvitationCode, f.guest)
	require.NoError(t, err)

	// PENDING -> ATTENDED skips acceptance.
	_, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.guest.ID, domain.ParticipantAttended, f.host)
	assert.ErrorIs(t, err, service.ErrIllegalParticipantTransition)

	updated, err := f.parties.UpdateParticipantStatus(ctx, party.ID, f.guest.ID, domain.ParticipantAccepted, f.host)
	require.NoError(t, err)
	participant, _ := updated.Participant(f.guest.ID)
	assert.Equal(t, domain.ParticipantAccepted, participant.Status)

	// ACCEPTED -> REJECTED is not allowed.
	_, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.guest.ID, domain.ParticipantRejected, f.host)
	assert.ErrorIs(t, err, service.ErrIllegalParticipantTransition)
}

func TestPartyService_OnlyHostManagesParticipants(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	_, err := f.parties.Join(ctx, party.ID, party.InvitationCode, f.guest)
	require.NoError(t, err)

	_, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.guest.ID, domain.ParticipantAccepted, f.guest)
	assert.ErrorIs(t, err, service.ErrNotPartyHost)

	admin := domain.User{ID: "admin1", Nickname: "Admin", IsAdmin: true}
	_, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.guest.ID, domain.ParticipantAccepted, admin)
	assert.NoError(t, err)
}

func TestPartyService_HostCannotBeRemoved(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	err := f.parties.RemoveParticipant(ctx, party.ID, f.host.ID, f.host)
	assert.ErrorIs(t, err, service.ErrCannotRemoveHost)
}

func TestPartyService_CheckIn(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	_, err := f.parties.Join(ctx, party.ID, party.InvitationCode, f.guest)
	require.NoError(t, err)

	payload := service.CheckInPayload{Party: party.Title, User: f.guest.Nickname}

	// Not accepted yet.
	_, err = f.parties.CheckIn(ctx, party.ID, payload, f.host)
	assert.ErrorIs(t, err, service.ErrCheckInNotAccepted)

	_, err = f.parties.UpdateParticipantStatus(ctx, party.ID, f.guest.ID, domain.ParticipantAccepted, f.host)
	require.NoError(t, err)

	// Ticket for a different party.
	_, err = f.parties.CheckIn(ctx, party.ID, service.CheckInPayload{Party: "Other Party", User: f.guest.Nickname}, f.host)
	assert.ErrorIs(t, err, service.ErrCheckInWrongParty)

	// Unknown nickname.
	_, err = f.parties.CheckIn(ctx, party.ID, service.CheckInPayload{Party: party.Title, User: "Nobody"}, f.host)
	assert.ErrorIs(t, err, service.ErrCheckInNotFound)

	participant, err := f.parties.CheckIn(ctx, party.ID, payload, f.host)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantAttended, participant.Status)

	// Attendance awards the event credit.
	balance, err := f.credits.Balance(ctx, f.guest.ID)
	require.NoError(t, err)
	assert.Equal(t, service.CreditAmountEvent, balance)

	// Scanning the same ticket twice.
	_, err = f.parties.CheckIn(ctx, party.ID, payload, f.host)
	assert.ErrorIs(t, err, service.ErrCheckInAlreadyDone)
}

func TestPartyService_Complete(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()
	party := f.hostUpcomingParty(t)

	completed, err := f.parties.Complete(ctx, party.ID, 30, 10, f.host)
	require.NoError(t, err)
	assert.Equal(t, domain.PartyCompleted, completed.Status)
	require.NotNil(t, completed.Impact)
	assert.Equal(t, 10, completed.Impact.ItemsExchanged)
	assert.InDelta(t, 27000.0, completed.Impact.WaterSaved, 0.001)
	assert.InDelta(t, 55.0, completed.Impact.CO2Reduced, 0.001)

	// Re-submitting overwrites rather than accumulating.
	again, err := f.parties.Complete(ctx, party.ID, 30, 12, f.host)
	require.NoError(t, err)
	assert.Equal(t, 12, again.Impact.ItemsExchanged)
	assert.InDelta(t, 32400.0, again.Impact.WaterSaved, 0.001)
}

func TestPartyService_CompleteRejectsUnapprovedParty(t *testing.T) {
	f := newPartyFixture()
	ctx := context.Background()

	party, err := f.parties.HostParty(ctx, domain.Party{Title: "P"}, f.host)
	require.NoError(t, err)

	_, err = f.parties.Complete(ctx, party.ID, 10, 5, f.host)
	assert.ErrorIs(t, err, service.ErrPartyNotCompletable)
}

func TestPartyService_EstimateKit(t *testing.T) {
	f := newPartyFixture()

	kit := f.parties.EstimateKit(30, 3)
	assert.Equal(t, 90, kit.Tickets)
	assert.Equal(t, 90, kit.Tags)
	assert.Equal(t, 30, kit.Receipts)
	assert.Equal(t, 50000+30*2183, kit.TotalCost)

	// Inputs are clamped to at least one participant and one item.
	kit = f.parties.EstimateKit(0, 0)
	assert.Equal(t, 1, kit.Tickets)
	assert.Equal(t, 1, kit.Receipts)
}
