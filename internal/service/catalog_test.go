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

type catalogFixture struct {
	catalog *service.CatalogService
	credits *service.CreditService
	items   *service.ItemService
}

// newCatalogFixture runs on the seeded demo catalog.
func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	st := store.New()
	require.NoError(t, store.Seed(st))

	credits := service.NewCreditService(repository.NewCreditRepository(st))

	return &catalogFixture{
		catalog: service.NewCatalogService(repository.NewCatalogRepository(st), credits),
		credits: credits,
		items:   service.NewItemService(repository.NewItemRepository(st), repository.NewPartyRepository(st), credits),
	}
}

func TestCatalogService_RedeemReward(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	// Seeded ledger leaves user1 at 700 OL.
	balance, err := f.credits.Balance(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, 700, balance)

	// reward3 costs 500.
	credit, err := f.catalog.RedeemReward(ctx, "reward3", "user1")
	require.NoError(t, err)
	assert.Equal(t, domain.SpentReward, credit.Type)
	assert.Equal(t, 500, credit.Amount)
	assert.Contains(t, credit.ActivityName, "Reward redemption:")

	balance, err = f.credits.Balance(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 200, balance)
}

func TestCatalogService_RedeemBeyondBalanceFails(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	before, err := f.credits.History(ctx, "user1")
	require.NoError(t, err)

	// reward2 costs 1200 against a 700 balance.
	_, err = f.catalog.RedeemReward(ctx, "reward2", "user1")
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	after, err := f.credits.History(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCatalogService_RedeemUnknownReward(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.catalog.RedeemReward(context.Background(), "nope", "user1")
	assert.ErrorIs(t, err, service.ErrRewardNotFound)
}

func TestCatalogService_PurchaseProduct(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	// prod4 costs 500.
	credit, err := f.catalog.PurchaseProduct(ctx, "prod4", "user1")
	require.NoError(t, err)
	assert.Equal(t, domain.SpentMakerPurchase, credit.Type)
	assert.Equal(t, 500, credit.Amount)

	balance, err := f.credits.Balance(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 200, balance)
}

func TestCatalogService_ListProductsByMaker(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	all, err := f.catalog.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	byMaker, err := f.catalog.ListProducts(ctx, "maker2")
	require.NoError(t, err)
	require.Len(t, byMaker, 2)
	for _, p := range byMaker {
		assert.Equal(t, "maker2", p.MakerID)
	}
}

func TestCatalogService_OffsetCredits(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	credit, err := f.catalog.OffsetCredits(ctx, "user1", 300)
	require.NoError(t, err)
	assert.Equal(t, domain.SpentOffset, credit.Type)
	assert.Equal(t, "Credit offset", credit.ActivityName)

	balance, err := f.credits.Balance(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 400, balance)
}

// A new member earns by registering an item, redeems what they can
// afford, and is stopped at the ledger boundary.
func TestCatalogService_EarnThenSpendJourney(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	newcomer := domain.User{ID: "newbie", Nickname: "Newbie"}

	_, err := f.items.RegisterItem(ctx, domain.ClothingItem{
		Name:     "First Jacket",
		Category: domain.CategoryJacket,
		Size:     "L",
		Tag:      domain.NewGoodbyeItemTag(domain.GoodbyeTag{WhyLetGo: "too small"}),
	}, newcomer, "")
	require.NoError(t, err)

	balance, err := f.credits.Balance(ctx, newcomer.ID)
	require.NoError(t, err)
	require.Equal(t, 1000, balance)

	_, err = f.catalog.RedeemReward(ctx, "reward1", newcomer.ID) // 800
	require.NoError(t, err)

	balance, err = f.credits.Balance(ctx, newcomer.ID)
	require.NoError(t, err)
	require.Equal(t, 200, balance)

	_, err = f.catalog.RedeemReward(ctx, "reward3", newcomer.ID) // 500
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	balance, err = f.credits.Balance(ctx, newcomer.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, balance)
}
