package repository

import (
	"context"
	"errors"
	"time"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type UserRepository struct {
	store *store.Store
}

func NewUserRepository(st *store.Store) *UserRepository {
	return &UserRepository{
		store: st,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Users {
			if st.Users[i].Email == user.Email {
				return ErrUserEmailExists
			}
		}

		if user.ID == "" {
			user.ID = store.NewID()
		}
		if user.Neighbors == nil {
			user.Neighbors = []string{}
		}
		user.CreatedAt = time.Now()
		user.UpdatedAt = user.CreatedAt

		st.Users = append(st.Users, user)

		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var (
		found bool
		user  domain.User
	)
	r.store.View(func(st *store.State) {
		for i := range st.Users {
			if st.Users[i].ID == id {
				user = st.Users[i]
				found = true
				return
			}
		}
	})
	if !found {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var (
		found bool
		user  domain.User
	)
	r.store.View(func(st *store.State) {
		for i := range st.Users {
			if st.Users[i].Email == email {
				user = st.Users[i]
				found = true
				return
			}
		}
	})
	if !found {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	r.store.View(func(st *store.State) {
		users = append(users, st.Users...)
	})

	return users, nil
}

// Update replaces the stored user matching user.ID.
func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Users {
			if st.Users[i].ID == user.ID {
				user.CreatedAt = st.Users[i].CreatedAt
				user.UpdatedAt = time.Now()
				st.Users[i] = user
				return nil
			}
		}

		return ErrUserNotFound
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// SetNeighbors replaces the acting user's whole neighbor list.
func (r *UserRepository) SetNeighbors(ctx context.Context, userID string, neighborIDs []string) (domain.User, error) {
	var user domain.User
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Users {
			if st.Users[i].ID == userID {
				st.Users[i].Neighbors = neighborIDs
				st.Users[i].UpdatedAt = time.Now()
				user = st.Users[i]
				return nil
			}
		}

		return ErrUserNotFound
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
