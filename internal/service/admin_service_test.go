package service

import (
	"context"
	"testing"

	"jf-travels-be/internal/mapper"
	"jf-travels-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService() IAdminService {
	converter := testConverter()
	return NewAdminService(
		memory.NewTourRepository(memory.DefaultTours()),
		memory.NewBookingRepository(memory.DefaultBookings()),
		memory.NewUserRepository(memory.SeedUsers()),
		converter,
		mapper.NewCatalogMapper(converter),
		nopLogger{},
	)
}

func TestAdminStats(t *testing.T) {
	svc := newTestAdminService()

	stats, err := svc.GetStats(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "30308.00 USD", stats.TotalRevenue)
	assert.Equal(t, "USD", stats.Currency)
	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 8, stats.ActiveTours)
	assert.Equal(t, 8, stats.Countries)
	assert.Equal(t, 4, stats.TotalUsers)
}

func TestAdminStatsRevenueInDisplayCurrency(t *testing.T) {
	svc := newTestAdminService()

	stats, err := svc.GetStats(context.Background(), "NGN")
	require.NoError(t, err)
	assert.Equal(t, "46734936.00 NGN", stats.TotalRevenue)
	assert.Equal(t, "NGN", stats.Currency)
}

func TestAdminStatsUnknownCurrencyReportsPivot(t *testing.T) {
	svc := newTestAdminService()

	stats, err := svc.GetStats(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "30308.00 USD", stats.TotalRevenue)
	assert.Equal(t, "USD", stats.Currency)
}

func TestAdminListBookings(t *testing.T) {
	svc := newTestAdminService()

	bookings, err := svc.ListBookings(context.Background(), "USD")
	require.NoError(t, err)
	assert.Len(t, bookings, 5)
}
