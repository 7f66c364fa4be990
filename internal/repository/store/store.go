// Package store holds every entity collection of the Ot-gil platform in
// process memory. There is no persistence layer: state lives for the
// lifetime of the process, matching the product's mock-data bootstrapping.
//
// All access goes through View/Update, which take the store lock and hand
// callers the collections. Mutations replace whole elements (or whole
// slices), so readers that copied values out never observe partial writes.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
)

// State is the single consistent snapshot of all entity collections.
type State struct {
	Users         []domain.User
	Items         []domain.ClothingItem
	Parties       []domain.Party
	Stories       []domain.Story
	Comments      []domain.Comment
	Reports       []domain.PerformanceReport
	Credits       []domain.Credit
	Rewards       []domain.Reward
	Makers        []domain.Maker
	MakerProducts []domain.MakerProduct
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// View runs fn with read access to the state. fn must not retain the
// *State or any slice it holds beyond the call; copy values out.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(&s.state)
}

// Update runs fn with exclusive access to the state. If fn returns an
// error the caller treats the operation as failed; fn is expected to
// leave the state untouched in that case (validate first, then mutate).
func (s *Store) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&s.state)
}

// NewID mints an opaque entity id.
func NewID() string {
	return uuid.NewString()
}
