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
	ErrInsufficientBalance = repository.ErrInsufficientBalance
	ErrInvalidCreditKind   = errors.New("invalid credit kind for this operation")
	ErrInvalidCreditAmount = errors.New("credit amount must be positive")
)

// CreditAmountClothing is awarded for every item registration,
// CreditAmountEvent for every party check-in.
const (
	CreditAmountClothing = 1000
	CreditAmountEvent    = 500
)

type CreditRepository interface {
	Append(ctx context.Context, credit domain.Credit) (domain.Credit, error)
	AppendSpend(ctx context.Context, credit domain.Credit) (domain.Credit, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Credit, error)
	ListAll(ctx context.Context) ([]domain.Credit, error)
}

// CreditService owns the OL ledger. Entries are append-only and the
// balance is always derived: balance = Σ(EARNED*) − Σ(SPENT*).
type CreditService struct {
	repo CreditRepository
}

func NewCreditService(repo CreditRepository) *CreditService {
	return &CreditService{
		repo: repo,
	}
}

func (s *CreditService) Balance(ctx context.Context, userID string) (int, error) {
	credits, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	balance := 0
	for _, c := range credits {
		if c.Type.IsEarned() {
			balance += c.Amount
		} else {
			balance -= c.Amount
		}
	}

	return balance, nil
}

func (s *CreditService) History(ctx context.Context, userID string) ([]domain.Credit, error) {
	credits, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	return credits, nil
}

// Earn appends an EARNED entry. Amounts are caller-supplied constants
// per activity; no further validation beyond positivity and kind.
func (s *CreditService) Earn(ctx context.Context, userID, activityName string, amount int, kind domain.CreditType) (domain.Credit, error) {
	if !kind.IsEarned() {
		return domain.Credit{}, ErrInvalidCreditKind
	}
	if amount <= 0 {
		return domain.Credit{}, ErrInvalidCreditAmount
	}

	credit, err := s.repo.Append(ctx, domain.Credit{
		UserID:       userID,
		ActivityName: activityName,
		Type:         kind,
		Amount:       amount,
	})
	if err != nil {
		return domain.Credit{}, fmt.Errorf("s.repo.Append -> %w", err)
	}

	zap.L().Info("credit earned",
		zap.String("userID", userID),
		zap.String("activity", activityName),
		zap.Int("amount", amount),
		zap.String("kind", string(kind)))

	return credit, nil
}

// Spend appends a SPENT entry, failing with ErrInsufficientBalance and
// no ledger change when the amount exceeds the derived balance.
func (s *CreditService) Spend(ctx context.Context, userID, activityName string, amount int, kind domain.CreditType) (domain.Credit, error) {
	if !kind.IsSpent() {
		return domain.Credit{}, ErrInvalidCreditKind
	}
	if amount <= 0 {
		return domain.Credit{}, ErrInvalidCreditAmount
	}

	credit, err := s.repo.AppendSpend(ctx, domain.Credit{
		UserID:       userID,
		ActivityName: activityName,
		Type:         kind,
		Amount:       amount,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return domain.Credit{}, ErrInsufficientBalance
		}

		return domain.Credit{}, fmt.Errorf("s.repo.AppendSpend -> %w", err)
	}

	zap.L().Info("credit spent",
		zap.String("userID", userID),
		zap.String("activity", activityName),
		zap.Int("amount", amount),
		zap.String("kind", string(kind)))

	return credit, nil
}
