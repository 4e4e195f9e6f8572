package memory

import (
	"context"
	"strings"

	"jf-travels-be/internal/entity"
)

type TourRepository struct {
	tours []*entity.Tour
}

func NewTourRepository(tours []*entity.Tour) *TourRepository {
	return &TourRepository{tours: tours}
}

func (r *TourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	return append([]*entity.Tour(nil), r.tours...), nil
}

func (r *TourRepository) FindByCountry(ctx context.Context, country string) ([]*entity.Tour, error) {
	var out []*entity.Tour
	for _, t := range r.tours {
		if strings.EqualFold(t.Country, country) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TourRepository) FindById(ctx context.Context, id string) (*entity.Tour, error) {
	for _, t := range r.tours {
		if t.Id == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *TourRepository) Count(ctx context.Context) (int, error) {
	return len(r.tours), nil
}

func (r *TourRepository) CountCountries(ctx context.Context) (int, error) {
	seen := map[string]struct{}{}
	for _, t := range r.tours {
		seen[strings.ToLower(t.Country)] = struct{}{}
	}
	return len(seen), nil
}

type BookingRepository struct {
	bookings []*entity.Booking
}

func NewBookingRepository(bookings []*entity.Booking) *BookingRepository {
	return &BookingRepository{bookings: bookings}
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return append([]*entity.Booking(nil), r.bookings...), nil
}

func (r *BookingRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if strings.EqualFold(b.UserEmail, email) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	return len(r.bookings), nil
}
