package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
)

// PlatformStats is the admin dashboard aggregate. Everything here is
// derived on demand from the live collections; nothing is cached or
// incremented.
type PlatformStats struct {
	TotalUsers     int             `json:"total_users"`
	TotalItems     int             `json:"total_items"`
	TotalExchanges int             `json:"total_exchanges"`
	TotalEvents    int             `json:"total_events"`
	Categories     []CategorySlice `json:"categories"`
	DailyActivity  []DailyActivity `json:"daily_activity"`
}

type CategorySlice struct {
	Category domain.ClothingCategory `json:"category"`
	Count    int                     `json:"count"`
}

type DailyActivity struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type statsUserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
}

type statsCreditRepository interface {
	ListAll(ctx context.Context) ([]domain.Credit, error)
}

type statsItemRepository interface {
	ListAll(ctx context.Context) ([]domain.ClothingItem, error)
}

type statsPartyRepository interface {
	List(ctx context.Context, status domain.PartyStatus, search string) ([]domain.Party, error)
}

type AdminService struct {
	users   statsUserRepository
	items   statsItemRepository
	parties statsPartyRepository
	credits statsCreditRepository
}

func NewAdminService(users statsUserRepository, items statsItemRepository, parties statsPartyRepository, credits statsCreditRepository) *AdminService {
	return &AdminService{
		users:   users,
		items:   items,
		parties: parties,
		credits: credits,
	}
}

// Stats assembles the dashboard numbers. Total exchanges sum the
// reported per-party impact of completed parties, not raw submissions.
func (s *AdminService) Stats(ctx context.Context) (PlatformStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("s.users.List -> %w", err)
	}
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("s.items.ListAll -> %w", err)
	}
	parties, err := s.parties.List(ctx, "", "")
	if err != nil {
		return PlatformStats{}, fmt.Errorf("s.parties.List -> %w", err)
	}
	credits, err := s.credits.ListAll(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("s.credits.ListAll -> %w", err)
	}

	stats := PlatformStats{
		TotalUsers:  len(users),
		TotalItems:  len(items),
		TotalEvents: len(parties),
	}

	for _, p := range parties {
		if p.Status == domain.PartyCompleted && p.Impact != nil {
			stats.TotalExchanges += p.Impact.ItemsExchanged
		}
	}

	byCategory := map[domain.ClothingCategory]int{}
	for _, it := range items {
		byCategory[it.Category]++
	}
	for category, count := range byCategory {
		stats.Categories = append(stats.Categories, CategorySlice{Category: category, Count: count})
	}
	sort.Slice(stats.Categories, func(i, j int) bool {
		return stats.Categories[i].Category < stats.Categories[j].Category
	})

	byDate := map[string]int{}
	for _, c := range credits {
		byDate[c.Date]++
	}
	for date, count := range byDate {
		stats.DailyActivity = append(stats.DailyActivity, DailyActivity{Date: date, Count: count})
	}
	sort.Slice(stats.DailyActivity, func(i, j int) bool {
		return stats.DailyActivity[i].Date < stats.DailyActivity[j].Date
	})

	return stats, nil
}
