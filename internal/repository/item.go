package repository

import (
	"context"
	"errors"
	"time"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

var ErrItemNotFound = errors.New("clothing item not found")

type ItemRepository struct {
	store *store.Store
}

func NewItemRepository(st *store.Store) *ItemRepository {
	return &ItemRepository{
		store: st,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.ClothingItem) (domain.ClothingItem, error) {
	err := r.store.Update(func(st *store.State) error {
		if item.ID == "" {
			item.ID = store.NewID()
		}
		item.CreatedAt = time.Now()
		item.UpdatedAt = item.CreatedAt

		// Newest first, matching the closet ordering of the product.
		st.Items = append([]domain.ClothingItem{item}, st.Items...)

		return nil
	})
	if err != nil {
		return domain.ClothingItem{}, err
	}

	return item, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (domain.ClothingItem, error) {
	var (
		found bool
		item  domain.ClothingItem
	)
	r.store.View(func(st *store.State) {
		for i := range st.Items {
			if st.Items[i].ID == id {
				item = st.Items[i]
				found = true
				return
			}
		}
	})
	if !found {
		return domain.ClothingItem{}, ErrItemNotFound
	}

	return item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.ClothingItem) (domain.ClothingItem, error) {
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Items {
			if st.Items[i].ID == item.ID {
				item.CreatedAt = st.Items[i].CreatedAt
				item.UpdatedAt = time.Now()
				st.Items[i] = item
				return nil
			}
		}

		return ErrItemNotFound
	})
	if err != nil {
		return domain.ClothingItem{}, err
	}

	return item, nil
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]domain.ClothingItem, error) {
	var items []domain.ClothingItem
	r.store.View(func(st *store.State) {
		for i := range st.Items {
			if st.Items[i].UserID == userID {
				items = append(items, st.Items[i])
			}
		}
	})

	return items, nil
}

// ListListed returns the general browse view: items their owners flagged
// as listed for exchange.
func (r *ItemRepository) ListListed(ctx context.Context) ([]domain.ClothingItem, error) {
	var items []domain.ClothingItem
	r.store.View(func(st *store.State) {
		for i := range st.Items {
			if st.Items[i].IsListedForExchange {
				items = append(items, st.Items[i])
			}
		}
	})

	return items, nil
}

// ListApprovedForParty returns the party lineup view: items submitted to
// the party and approved. The two visibility predicates, this and
// ListListed, are never merged.
func (r *ItemRepository) ListApprovedForParty(ctx context.Context, partyID string) ([]domain.ClothingItem, error) {
	var items []domain.ClothingItem
	r.store.View(func(st *store.State) {
		for i := range st.Items {
			if st.Items[i].SubmittedPartyID == partyID && st.Items[i].PartySubmissionStatus == domain.SubmissionApproved {
				items = append(items, st.Items[i])
			}
		}
	})

	return items, nil
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]domain.ClothingItem, error) {
	var items []domain.ClothingItem
	r.store.View(func(st *store.State) {
		items = append(items, st.Items...)
	})

	return items, nil
}
