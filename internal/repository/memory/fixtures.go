package memory

import (
	"log"
	"time"

	"jf-travels-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultRates is the posted bureau table. The pivot row carries rate 1 by
// construction; every other row is units per 1 USD.
func DefaultRates() []entity.CurrencyRate {
	return []entity.CurrencyRate{
		{Code: "USD", Name: "US Dollar", Flag: "🇺🇸", Rate: dec("1"), BuyRate: dec("1"), SellRate: dec("1")},
		{Code: "EUR", Name: "Euro", Flag: "🇪🇺", Rate: dec("0.92"), BuyRate: dec("0.91"), SellRate: dec("0.93")},
		{Code: "GBP", Name: "British Pound", Flag: "🇬🇧", Rate: dec("0.79"), BuyRate: dec("0.78"), SellRate: dec("0.80")},
		{Code: "NGN", Name: "Nigerian Naira", Flag: "🇳🇬", Rate: dec("1542"), BuyRate: dec("1538"), SellRate: dec("1545")},
		{Code: "JPY", Name: "Japanese Yen", Flag: "🇯🇵", Rate: dec("149.50"), BuyRate: dec("148.90"), SellRate: dec("150.20")},
		{Code: "CAD", Name: "Canadian Dollar", Flag: "🇨🇦", Rate: dec("1.36"), BuyRate: dec("1.35"), SellRate: dec("1.37")},
		{Code: "AUD", Name: "Australian Dollar", Flag: "🇦🇺", Rate: dec("1.52"), BuyRate: dec("1.51"), SellRate: dec("1.53")},
		{Code: "CHF", Name: "Swiss Franc", Flag: "🇨🇭", Rate: dec("0.88"), BuyRate: dec("0.87"), SellRate: dec("0.89")},
	}
}

func DefaultTours() []*entity.Tour {
	return []*entity.Tour{
		{Id: "t-001", Name: "Santorini Sunset Escape", Destination: "Santorini", Country: "Greece", Price: dec("1899"), Duration: "7 days", Rating: 4.9, Category: entity.TourCategoryBeach},
		{Id: "t-002", Name: "Serengeti Safari Adventure", Destination: "Serengeti", Country: "Tanzania", Price: dec("3450"), Duration: "10 days", Rating: 4.8, Category: entity.TourCategorySafari},
		{Id: "t-003", Name: "Kyoto Cultural Journey", Destination: "Kyoto", Country: "Japan", Price: dec("2350"), Duration: "8 days", Rating: 4.9, Category: entity.TourCategoryCultural},
		{Id: "t-004", Name: "Swiss Alps Expedition", Destination: "Zermatt", Country: "Switzerland", Price: dec("2780"), Duration: "6 days", Rating: 4.7, Category: entity.TourCategoryAdventure},
		{Id: "t-005", Name: "Maldives Overwater Retreat", Destination: "Malé Atolls", Country: "Maldives", Price: dec("4200"), Duration: "5 days", Rating: 5.0, Category: entity.TourCategoryLuxury},
		{Id: "t-006", Name: "Lagos City & Coast", Destination: "Lagos", Country: "Nigeria", Price: dec("980"), Duration: "4 days", Rating: 4.5, Category: entity.TourCategoryBeach},
		{Id: "t-007", Name: "Rocky Mountain Trail", Destination: "Banff", Country: "Canada", Price: dec("1650"), Duration: "6 days", Rating: 4.6, Category: entity.TourCategoryAdventure},
		{Id: "t-008", Name: "Great Barrier Reef Dive", Destination: "Cairns", Country: "Australia", Price: dec("2150"), Duration: "7 days", Rating: 4.8, Category: entity.TourCategoryAdventure},
	}
}

// SeedUsers provides the demo accounts the mock identity provider knows
// about. Passwords are hashed at startup; this store never persists.
func SeedUsers() []*entity.User {
	mk := func(email, name, password string, role entity.UserRole) *entity.User {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Panicf("Unable to hash seed password: %v", err)
		}
		hashStr := string(hash)
		now := time.Now()
		return &entity.User{
			Id:           uuid.New(),
			Email:        email,
			FullName:     name,
			PasswordHash: &hashStr,
			Role:         role,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return []*entity.User{
		mk("admin@jftravels.com", "JF Admin", "admin123", entity.UserRoleAdmin),
		mk("amaka@example.com", "Amaka Obi", "password1", entity.UserRoleUser),
		mk("john@example.com", "John Mensah", "password1", entity.UserRoleUser),
		mk("david@example.com", "David Kim", "password1", entity.UserRoleUser),
	}
}

func DefaultBookings() []*entity.Booking {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []*entity.Booking{
		{Id: "BK-1001", TourId: "t-001", TourName: "Santorini Sunset Escape", UserEmail: "amaka@example.com", Date: day("2025-11-02"), Travelers: 2, TotalPrice: dec("3798"), Status: entity.BookingStatusConfirmed, CreatedAt: day("2025-09-14")},
		{Id: "BK-1002", TourId: "t-003", TourName: "Kyoto Cultural Journey", UserEmail: "john@example.com", Date: day("2025-12-10"), Travelers: 1, TotalPrice: dec("2350"), Status: entity.BookingStatusPending, CreatedAt: day("2025-10-01")},
		{Id: "BK-1003", TourId: "t-005", TourName: "Maldives Overwater Retreat", UserEmail: "amaka@example.com", Date: day("2026-01-20"), Travelers: 2, TotalPrice: dec("8400"), Status: entity.BookingStatusConfirmed, CreatedAt: day("2025-10-05")},
		{Id: "BK-1004", TourId: "t-002", TourName: "Serengeti Safari Adventure", UserEmail: "david@example.com", Date: day("2025-11-25"), Travelers: 4, TotalPrice: dec("13800"), Status: entity.BookingStatusCancelled, CreatedAt: day("2025-08-30")},
		{Id: "BK-1005", TourId: "t-006", TourName: "Lagos City & Coast", UserEmail: "john@example.com", Date: day("2026-02-14"), Travelers: 2, TotalPrice: dec("1960"), Status: entity.BookingStatusPending, CreatedAt: day("2025-10-18")},
	}
}
