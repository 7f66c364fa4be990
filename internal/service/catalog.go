package service

import (
	"context"
	"fmt"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
)

var (
	ErrRewardNotFound  = repository.ErrRewardNotFound
	ErrMakerNotFound   = repository.ErrMakerNotFound
	ErrProductNotFound = repository.ErrProductNotFound
)

const (
	redeemActivityPattern   = "Reward redemption: %s"
	purchaseActivityPattern = "Maker purchase: %s"
	offsetActivityName      = "Credit offset"
)

type CatalogRepository interface {
	ListRewards(ctx context.Context) ([]domain.Reward, error)
	FindRewardByID(ctx context.Context, id string) (domain.Reward, error)
	ListMakers(ctx context.Context) ([]domain.Maker, error)
	FindMakerByID(ctx context.Context, id string) (domain.Maker, error)
	ListProducts(ctx context.Context) ([]domain.MakerProduct, error)
	ListProductsByMaker(ctx context.Context, makerID string) ([]domain.MakerProduct, error)
	FindProductByID(ctx context.Context, id string) (domain.MakerProduct, error)
}

// creditSpender is the spend side of the ledger; every catalog operation
// that costs OL goes through it so the non-negative balance guarantee
// applies uniformly.
type creditSpender interface {
	Spend(ctx context.Context, userID, activityName string, amount int, kind domain.CreditType) (domain.Credit, error)
}

type CatalogService struct {
	repo    CatalogRepository
	credits creditSpender
}

func NewCatalogService(repo CatalogRepository, credits creditSpender) *CatalogService {
	return &CatalogService{
		repo:    repo,
		credits: credits,
	}
}

func (s *CatalogService) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	rewards, err := s.repo.ListRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRewards -> %w", err)
	}

	return rewards, nil
}

// RedeemReward spends the reward's cost. There is no stock or fulfilment
// tracking; the ledger entry is the whole record of the redemption.
func (s *CatalogService) RedeemReward(ctx context.Context, rewardID, userID string) (domain.Credit, error) {
	reward, err := s.repo.FindRewardByID(ctx, rewardID)
	if err != nil {
		return domain.Credit{}, fmt.Errorf("s.repo.FindRewardByID -> %w", err)
	}

	credit, err := s.credits.Spend(ctx, userID, fmt.Sprintf(redeemActivityPattern, reward.Name), reward.Cost, domain.SpentReward)
	if err != nil {
		return domain.Credit{}, fmt.Errorf("s.credits.Spend -> %w", err)
	}

	return credit, nil
}

func (s *CatalogService) ListMakers(ctx context.Context) ([]domain.Maker, error) {
	makers, err := s.repo.ListMakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMakers -> %w", err)
	}

	return makers, nil
}

func (s *CatalogService) GetMaker(ctx context.Context, id string) (domain.Maker, error) {
	maker, err := s.repo.FindMakerByID(ctx, id)
	if err != nil {
		return domain.Maker{}, fmt.Errorf("s.repo.FindMakerByID -> %w", err)
	}

	return maker, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, makerID string) ([]domain.MakerProduct, error) {
	if makerID != "" {
		products, err := s.repo.ListProductsByMaker(ctx, makerID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.ListProductsByMaker -> %w", err)
		}

		return products, nil
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListProducts -> %w", err)
	}

	return products, nil
}

// PurchaseProduct spends the product's price against the buyer's
// balance. Makers are paid off-platform; the ledger only debits the
// buyer.
func (s *CatalogService) PurchaseProduct(ctx context.Context, productID, userID string) (domain.Credit, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return domain.Credit{}, fmt.Errorf("s.repo.FindProductByID -> %w", err)
	}

	credit, err := s.credits.Spend(ctx, userID, fmt.Sprintf(purchaseActivityPattern, product.Name), product.Price, domain.SpentMakerPurchase)
	if err != nil {
		return domain.Credit{}, fmt.Errorf("s.credits.Spend -> %w", err)
	}

	return credit, nil
}

// OffsetCredits voluntarily retires part of the user's balance toward
// community environmental funds.
func (s *CatalogService) OffsetCredits(ctx context.Context, userID string, amount int) (domain.Credit, error) {
	credit, err := s.credits.Spend(ctx, userID, offsetActivityName, amount, domain.SpentOffset)
	if err != nil {
		return domain.Credit{}, fmt.Errorf("s.credits.Spend -> %w", err)
	}

	return credit, nil
}
