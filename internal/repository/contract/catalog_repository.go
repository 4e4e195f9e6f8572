package contract

import (
	"context"

	"jf-travels-be/internal/entity"
)

type TourRepository interface {
	FindAll(ctx context.Context) ([]*entity.Tour, error)
	FindByCountry(ctx context.Context, country string) ([]*entity.Tour, error)
	FindById(ctx context.Context, id string) (*entity.Tour, error)
	Count(ctx context.Context) (int, error)
	CountCountries(ctx context.Context) (int, error)
}

type BookingRepository interface {
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	Count(ctx context.Context) (int, error)
}
