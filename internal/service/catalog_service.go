package service

import (
	"context"
	"errors"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
	"jf-travels-be/internal/mapper"
	"jf-travels-be/internal/repository/contract"
	"jf-travels-be/pkg/exchange"
)

var ErrTourNotFound = errors.New("tour not found")

type ICatalogService interface {
	ListTours(ctx context.Context, country, currency string) ([]dto.TourResponse, error)
	GetTour(ctx context.Context, id, currency string) (*dto.TourResponse, error)
	UserDashboard(ctx context.Context, email, currency string) (*dto.UserDashboardResponse, error)
}

type catalogService struct {
	tourRepo    contract.TourRepository
	bookingRepo contract.BookingRepository
	converter   *exchange.Converter
	mapper      *mapper.CatalogMapper
}

func NewCatalogService(
	tourRepo contract.TourRepository,
	bookingRepo contract.BookingRepository,
	converter *exchange.Converter,
	catalogMapper *mapper.CatalogMapper,
) ICatalogService {
	return &catalogService{
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
		converter:   converter,
		mapper:      catalogMapper,
	}
}

func (s *catalogService) ListTours(ctx context.Context, country, currency string) ([]dto.TourResponse, error) {
	var (
		tours []*entity.Tour
		err   error
	)
	if country != "" {
		tours, err = s.tourRepo.FindByCountry(ctx, country)
	} else {
		tours, err = s.tourRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.mapper.ToTourResponses(tours, currency), nil
}

func (s *catalogService) GetTour(ctx context.Context, id, currency string) (*dto.TourResponse, error) {
	tour, err := s.tourRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}
	res := s.mapper.ToTourResponse(tour, currency)
	return &res, nil
}

// UserDashboard aggregates the signed-in traveller's bookings and their
// total spend, converted into the session currency.
func (s *catalogService) UserDashboard(ctx context.Context, email, currency string) (*dto.UserDashboardResponse, error) {
	bookings, err := s.bookingRepo.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	total, err := s.converter.Convert(sumBookings(bookings), entity.PivotCurrency, currency)
	code := currency
	if err != nil {
		total = sumBookings(bookings)
		code = entity.PivotCurrency
	}

	return &dto.UserDashboardResponse{
		Email:      email,
		Bookings:   s.mapper.ToBookingResponses(bookings, currency),
		TotalSpent: s.converter.Format(total, code),
	}, nil
}
