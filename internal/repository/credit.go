package repository

import (
	"context"
	"errors"
	"time"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

var ErrInsufficientBalance = errors.New("insufficient credit balance")

type CreditRepository struct {
	store *store.Store
}

func NewCreditRepository(st *store.Store) *CreditRepository {
	return &CreditRepository{
		store: st,
	}
}

// Append adds a ledger entry. Entries are immutable once written; there
// is no update or delete.
func (r *CreditRepository) Append(ctx context.Context, credit domain.Credit) (domain.Credit, error) {
	err := r.store.Update(func(st *store.State) error {
		if credit.ID == "" {
			credit.ID = store.NewID()
		}
		if credit.Date == "" {
			credit.Date = time.Now().Format("2006-01-02")
		}

		st.Credits = append(st.Credits, credit)

		return nil
	})
	if err != nil {
		return domain.Credit{}, err
	}

	return credit, nil
}

// AppendSpend appends a SPENT entry, failing without any write when the
// amount exceeds the user's derived balance. The check and the append
// happen under one store update, so the balance can never go negative.
func (r *CreditRepository) AppendSpend(ctx context.Context, credit domain.Credit) (domain.Credit, error) {
	err := r.store.Update(func(st *store.State) error {
		balance := 0
		for i := range st.Credits {
			if st.Credits[i].UserID != credit.UserID {
				continue
			}
			if st.Credits[i].Type.IsEarned() {
				balance += st.Credits[i].Amount
			} else {
				balance -= st.Credits[i].Amount
			}
		}
		if credit.Amount > balance {
			return ErrInsufficientBalance
		}

		if credit.ID == "" {
			credit.ID = store.NewID()
		}
		if credit.Date == "" {
			credit.Date = time.Now().Format("2006-01-02")
		}

		st.Credits = append(st.Credits, credit)

		return nil
	})
	if err != nil {
		return domain.Credit{}, err
	}

	return credit, nil
}

func (r *CreditRepository) ListByUser(ctx context.Context, userID string) ([]domain.Credit, error) {
	var credits []domain.Credit
	r.store.View(func(st *store.State) {
		for i := range st.Credits {
			if st.Credits[i].UserID == userID {
				credits = append(credits, st.Credits[i])
			}
		}
	})

	return credits, nil
}

func (r *CreditRepository) ListAll(ctx context.Context) ([]domain.Credit, error) {
	var credits []domain.Credit
	r.store.View(func(st *store.State) {
		credits = append(credits, st.Credits...)
	})

	return credits, nil
}
