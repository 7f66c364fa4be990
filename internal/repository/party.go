package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

var (
	ErrPartyNotFound       = errors.New("party not found")
	ErrParticipantExists   = errors.New("participant already applied to this party")
	ErrParticipantNotFound = errors.New("participant not found")
)

type PartyRepository struct {
	store *store.Store
}

func NewPartyRepository(st *store.Store) *PartyRepository {
	return &PartyRepository{
		store: st,
	}
}

func (r *PartyRepository) Create(ctx context.Context, party domain.Party) (domain.Party, error) {
	err := r.store.Update(func(st *store.State) error {
		if party.ID == "" {
			party.ID = store.NewID()
		}
		if party.Participants == nil {
			party.Participants = []domain.PartyParticipant{}
		}
		party.CreatedAt = time.Now()
		party.UpdatedAt = party.CreatedAt

		st.Parties = append(st.Parties, party)
		sortPartiesByDateDesc(st.Parties)

		return nil
	})
	if err != nil {
		return domain.Party{}, err
	}

	return party, nil
}

func (r *PartyRepository) FindByID(ctx context.Context, id string) (domain.Party, error) {
	var (
		found bool
		party domain.Party
	)
	r.store.View(func(st *store.State) {
		for i := range st.Parties {
			if st.Parties[i].ID == id {
				party = copyParty(st.Parties[i])
				found = true
				return
			}
		}
	})
	if !found {
		return domain.Party{}, ErrPartyNotFound
	}

	return party, nil
}

func (r *PartyRepository) FindByInvitationCode(ctx context.Context, code string) (domain.Party, error) {
	var (
		found bool
		party domain.Party
	)
	r.store.View(func(st *store.State) {
		for i := range st.Parties {
			if st.Parties[i].InvitationCode == code {
				party = copyParty(st.Parties[i])
				found = true
				return
			}
		}
	})
	if !found {
		return domain.Party{}, ErrPartyNotFound
	}

	return party, nil
}

// List filters by status (empty = all) and a case-insensitive search over
// title and description, date-descending.
func (r *PartyRepository) List(ctx context.Context, status domain.PartyStatus, search string) ([]domain.Party, error) {
	var parties []domain.Party
	needle := strings.ToLower(search)
	r.store.View(func(st *store.State) {
		for i := range st.Parties {
			p := st.Parties[i]
			if status != "" && p.Status != status {
				continue
			}
			if needle != "" &&
				!strings.Contains(strings.ToLower(p.Title), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
			parties = append(parties, copyParty(p))
		}
	})
	sortPartiesByDateDesc(parties)

	return parties, nil
}

// ListForUser returns parties the user hosts or has a participant record
// in, regardless of participant status.
func (r *PartyRepository) ListForUser(ctx context.Context, userID string) ([]domain.Party, error) {
	var parties []domain.Party
	r.store.View(func(st *store.State) {
		for i := range st.Parties {
			p := st.Parties[i]
			if p.HostID == userID {
				parties = append(parties, copyParty(p))
				continue
			}
			if _, ok := p.Participant(userID); ok {
				parties = append(parties, copyParty(p))
			}
		}
	})
	sortPartiesByDateDesc(parties)

	return parties, nil
}

// Update replaces the stored party matching party.ID wholesale.
func (r *PartyRepository) Update(ctx context.Context, party domain.Party) (domain.Party, error) {
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Parties {
			if st.Parties[i].ID == party.ID {
				party.CreatedAt = st.Parties[i].CreatedAt
				party.UpdatedAt = time.Now()
				st.Parties[i] = party
				return nil
			}
		}

		return ErrPartyNotFound
	})
	if err != nil {
		return domain.Party{}, err
	}

	return party, nil
}

func (r *PartyRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(st *store.State) error {
		for i := range st.Parties {
			if st.Parties[i].ID == id {
				st.Parties = append(st.Parties[:i], st.Parties[i+1:]...)
				return nil
			}
		}

		return ErrPartyNotFound
	})
}

// AddParticipant inserts a PENDING participant record. At most one record
// exists per (party, user): a second application fails regardless of the
// existing record's status.
func (r *PartyRepository) AddParticipant(ctx context.Context, partyID string, participant domain.PartyParticipant) (domain.Party, error) {
	var party domain.Party
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Parties {
			if st.Parties[i].ID != partyID {
				continue
			}
			if _, ok := st.Parties[i].Participant(participant.UserID); ok {
				return ErrParticipantExists
			}

			st.Parties[i].Participants = append(st.Parties[i].Participants, participant)
			st.Parties[i].UpdatedAt = time.Now()
			party = copyParty(st.Parties[i])

			return nil
		}

		return ErrPartyNotFound
	})
	if err != nil {
		return domain.Party{}, err
	}

	return party, nil
}

// SetParticipantStatus overwrites the participant's status. Transition
// legality is the service's concern; the repository is a dumb mutator.
func (r *PartyRepository) SetParticipantStatus(ctx context.Context, partyID, userID string, status domain.ParticipantStatus) (domain.Party, error) {
	var party domain.Party
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Parties {
			if st.Parties[i].ID != partyID {
				continue
			}
			for j := range st.Parties[i].Participants {
				if st.Parties[i].Participants[j].UserID == userID {
					st.Parties[i].Participants[j].Status = status
					st.Parties[i].UpdatedAt = time.Now()
					party = copyParty(st.Parties[i])
					return nil
				}
			}

			return ErrParticipantNotFound
		}

		return ErrPartyNotFound
	})
	if err != nil {
		return domain.Party{}, err
	}

	return party, nil
}

func (r *PartyRepository) RemoveParticipant(ctx context.Context, partyID, userID string) error {
	return r.store.Update(func(st *store.State) error {
		for i := range st.Parties {
			if st.Parties[i].ID != partyID {
				continue
			}
			for j := range st.Parties[i].Participants {
				if st.Parties[i].Participants[j].UserID == userID {
					st.Parties[i].Participants = append(st.Parties[i].Participants[:j], st.Parties[i].Participants[j+1:]...)
					st.Parties[i].UpdatedAt = time.Now()
					return nil
				}
			}

			return ErrParticipantNotFound
		}

		return ErrPartyNotFound
	})
}

func copyParty(p domain.Party) domain.Party {
	out := p
	out.Participants = append([]domain.PartyParticipant(nil), p.Participants...)
	out.Details = append([]string(nil), p.Details...)
	if p.Impact != nil {
		impact := *p.Impact
		out.Impact = &impact
	}
	if p.KitDetails != nil {
		kit := *p.KitDetails
		out.KitDetails = &kit
	}

	return out
}

func sortPartiesByDateDesc(parties []domain.Party) {
	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].Date > parties[j].Date
	})
}
