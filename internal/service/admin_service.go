package service

import (
	"context"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
	"jf-travels-be/internal/mapper"
	"jf-travels-be/internal/pkg/logger"
	"jf-travels-be/internal/repository/contract"
	"jf-travels-be/pkg/exchange"

	"github.com/shopspring/decimal"
)

type IAdminService interface {
	GetStats(ctx context.Context, currency string) (*dto.AdminDashboardStats, error)
	ListBookings(ctx context.Context, currency string) ([]dto.BookingResponse, error)
}

type adminService struct {
	tourRepo    contract.TourRepository
	bookingRepo contract.BookingRepository
	userRepo    contract.UserRepository
	converter   *exchange.Converter
	mapper      *mapper.CatalogMapper
	logger      logger.ILogger
}

func NewAdminService(
	tourRepo contract.TourRepository,
	bookingRepo contract.BookingRepository,
	userRepo contract.UserRepository,
	converter *exchange.Converter,
	catalogMapper *mapper.CatalogMapper,
	sysLogger logger.ILogger,
) IAdminService {
	return &adminService{
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		converter:   converter,
		mapper:      catalogMapper,
		logger:      sysLogger,
	}
}

// GetStats aggregates the admin overview numbers. Revenue is the sum of all
// booking totals converted into the requested display currency; the sum runs
// over pivot amounts so only the final figure is converted.
func (s *adminService) GetStats(ctx context.Context, currency string) (*dto.AdminDashboardStats, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	activeTours, err := s.tourRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	countries, err := s.tourRepo.CountCountries(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.converter.Convert(sumBookings(bookings), entity.PivotCurrency, currency)
	code := currency
	if err != nil {
		s.logger.Warn("Admin", "Revenue conversion failed, reporting pivot amount", map[string]interface{}{
			"currency": currency,
			"error":    err.Error(),
		})
		revenue = sumBookings(bookings)
		code = entity.PivotCurrency
	}

	return &dto.AdminDashboardStats{
		TotalRevenue:  s.converter.Format(revenue, code),
		Currency:      code,
		TotalBookings: len(bookings),
		ActiveTours:   activeTours,
		Countries:     countries,
		TotalUsers:    totalUsers,
	}, nil
}

func (s *adminService) ListBookings(ctx context.Context, currency string) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToBookingResponses(bookings, currency), nil
}

func sumBookings(bookings []*entity.Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		total = total.Add(b.TotalPrice)
	}
	return total
}
