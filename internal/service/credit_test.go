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

func newCreditService() *service.CreditService {
	return service.NewCreditService(repository.NewCreditRepository(store.New()))
}

func TestCreditService_BalanceIsDerived(t *testing.T) {
	svc := newCreditService()
	ctx := context.Background()

	_, err := svc.Earn(ctx, "u1", "Item registration: Denim Jacket", 1000, domain.EarnedClothing)
	require.NoError(t, err)
	_, err = svc.Earn(ctx, "u1", "Party attendance: Eco Party", 500, domain.EarnedEvent)
	require.NoError(t, err)
	_, err = svc.Spend(ctx, "u1", "Reward redemption: Tote Bag", 800, domain.SpentReward)
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 700, balance)

	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestCreditService_SpendNeverOverdraws(t *testing.T) {
	svc := newCreditService()
	ctx := context.Background()

	_, err := svc.Earn(ctx, "u1", "Item registration: Shirt", 1000, domain.EarnedClothing)
	require.NoError(t, err)

	_, err = svc.Spend(ctx, "u1", "Reward redemption: Workshop", 1200, domain.SpentReward)
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	// The failed spend must leave the ledger unchanged.
	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	balance, err := svc.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1000, balance)
}

func TestCreditService_SpendExactBalance(t *testing.T) {
	svc := newCreditService()
	ctx := context.Background()

	_, err := svc.Earn(ctx, "u1", "Item registration: Shirt", 1000, domain.EarnedClothing)
	require.NoError(t, err)

	_, err = svc.Spend(ctx, "u1", "Credit offset", 1000, domain.SpentOffset)
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestCreditService_KindAndAmountGuards(t *testing.T) {
	svc := newCreditService()
	ctx := context.Background()

	_, err := svc.Earn(ctx, "u1", "bogus", 100, domain.SpentReward)
	assert.ErrorIs(t, err, service.ErrInvalidCreditKind)

	_, err = svc.Spend(ctx, "u1", "bogus", 100, domain.EarnedClothing)
	assert.ErrorIs(t, err, service.ErrInvalidCreditKind)

	_, err = svc.Earn(ctx, "u1", "bogus", 0, domain.EarnedClothing)
	assert.ErrorIs(t, err, service.ErrInvalidCreditAmount)

	_, err = svc.Earn(ctx, "u1", "bogus", -5, domain.EarnedClothing)
	assert.ErrorIs(t, err, service.ErrInvalidCreditAmount)
}

func TestCreditService_BalancesAreIndependentPerUser(t *testing.T) {
	svc := newCreditService()
	ctx := context.Background()

	_, err := svc.Earn(ctx, "u1", "Item registration: A", 1000, domain.EarnedClothing)
	require.NoError(t, err)
	_, err = svc.Earn(ctx, "u2", "Item registration: B", 500, domain.EarnedEvent)
	require.NoError(t, err)

	b1, err := svc.Balance(ctx, "u1")
	require.NoError(t, err)
	b2, err := svc.Balance(ctx, "u2")
	require.NoError(t, err)

	assert.Equal(t, 1000, b1)
	assert.Equal(t, 500, b2)
}
