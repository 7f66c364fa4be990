package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

func TestAdminService_StatsOverSeededData(t *testing.T) {
	st := store.New()
	require.NoError(t, store.Seed(st))

	svc := service.NewAdminService(
		repository.NewUserRepository(st),
		repository.NewItemRepository(st),
		repository.NewPartyRepository(st),
		repository.NewCreditRepository(st),
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, stats.TotalUsers)
	assert.Equal(t, 17, stats.TotalItems)
	assert.Equal(t, 3, stats.TotalEvents)
	// Only the one completed party contributes exchanges.
	assert.Equal(t, 50, stats.TotalExchanges)

	total := 0
	for _, c := range stats.Categories {
		total += c.Count
	}
	assert.Equal(t, 17, total)

	entries := 0
	for _, d := range stats.DailyActivity {
		entries += d.Count
	}
	assert.Equal(t, 3, entries)
}
