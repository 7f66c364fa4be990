package service

import (
	"context"
	"fmt"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	SetNeighbors(ctx context.Context, userID string, neighborIDs []string) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return users, nil
}

// UpdateProfile changes nickname and phone number. Historical nickname
// snapshots (participants, comments, item uploads) are left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID, nickname, phoneNumber string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if nickname != "" {
		user.Nickname = nickname
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SetNeighbors replaces the acting user's neighbor list. Lists are
// one-directional: this never touches the other users' lists.
func (s *UserService) SetNeighbors(ctx context.Context, userID string, neighborIDs []string) (domain.User, error) {
	for _, id := range neighborIDs {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return domain.User{}, fmt.Errorf("s.repo.FindByID(%v) -> %w", id, err)
		}
	}

	user, err := s.repo.SetNeighbors(ctx, userID, neighborIDs)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.SetNeighbors -> %w", err)
	}

	return user, nil
}

// ToggleNeighbor adds the neighbor if absent, removes it if present.
func (s *UserService) ToggleNeighbor(ctx context.Context, userID, neighborID string) (domain.User, error) {
	if _, err := s.repo.FindByID(ctx, neighborID); err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	neighbors := make([]string, 0, len(user.Neighbors)+1)
	removed := false
	for _, id := range user.Neighbors {
		if id == neighborID {
			removed = true
			continue
		}
		neighbors = append(neighbors, id)
	}
	if !removed {
		neighbors = append(neighbors, neighborID)
	}

	updated, err := s.repo.SetNeighbors(ctx, userID, neighbors)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.SetNeighbors -> %w", err)
	}

	return updated, nil
}
