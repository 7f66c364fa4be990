package repository

import (
	"context"
	"errors"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

var (
	ErrRewardNotFound  = errors.New("reward not found")
	ErrMakerNotFound   = errors.New("maker not found")
	ErrProductNotFound = errors.New("maker product not found")
)

// CatalogRepository serves the static reward and maker catalogs. The
// collections are read-only; redemptions and purchases write credit
// entries, never touch these.
type CatalogRepository struct {
	store *store.Store
}

func NewCatalogRepository(st *store.Store) *CatalogRepository {
	return &CatalogRepository{
		store: st,
	}
}

func (r *CatalogRepository) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	var rewards []domain.Reward
	r.store.View(func(st *store.State) {
		rewards = append(rewards, st.Rewards...)
	})

	return rewards, nil
}

func (r *CatalogRepository) FindRewardByID(ctx context.Context, id string) (domain.Reward, error) {
	var (
		found  bool
		reward domain.Reward
	)
	r.store.View(func(st *store.State) {
		for i := range st.Rewards {
			if st.Rewards[i].ID == id {
				reward = st.Rewards[i]
				found = true
				return
			}
		}
	})
	if !found {
		return domain.Reward{}, ErrRewardNotFound
	}

	return reward, nil
}

func (r *CatalogRepository) ListMakers(ctx context.Context) ([]domain.Maker, error) {
	var makers []domain.Maker
	r.store.View(func(st *store.State) {
		makers = append(makers, st.Makers...)
	})

	return makers, nil
}

func (r *CatalogRepository) FindMakerByID(ctx context.Context, id string) (domain.Maker, error) {
	var (
		found bool
		maker domain.Maker
	)
	r.store.View(func(st *store.State) {
		for i := range st.Makers {
			if st.Makers[i].ID == id {
				maker = st.Makers[i]
				found = true
				return
			}
		}
	})
	if !found {
		return domain.Maker{}, ErrMakerNotFound
	}

	return maker, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.MakerProduct, error) {
	var products []domain.MakerProduct
	r.store.View(func(st *store.State) {
		products = append(products, st.MakerProducts...)
	})

	return products, nil
}

func (r *CatalogRepository) ListProductsByMaker(ctx context.Context, makerID string) ([]domain.MakerProduct, error) {
	var products []domain.MakerProduct
	r.store.View(func(st *store.State) {
		for i := range st.MakerProducts {
			if st.MakerProducts[i].MakerID == makerID {
				products = append(products, st.MakerProducts[i])
			}
		}
	})

	return products, nil
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, id string) (domain.MakerProduct, error) {
	var (
		found   bool
		product domain.MakerProduct
	)
	r.store.View(func(st *store.State) {
		for i := range st.MakerProducts {
			if st.MakerProducts[i].ID == id {
				product = st.MakerProducts[i]
				found = true
				return
			}
		}
	})
	if !found {
		return domain.MakerProduct{}, ErrProductNotFound
	}

	return product, nil
}
