package mapper

import (
	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
	"jf-travels-be/pkg/exchange"
)

// CatalogMapper projects fixture records into responses priced in the
// session currency. Conversion failures fall back to the stored USD amount
// rather than breaking the listing.
type CatalogMapper struct {
	converter *exchange.Converter
}

func NewCatalogMapper(converter *exchange.Converter) *CatalogMapper {
	return &CatalogMapper{converter: converter}
}

func (m *CatalogMapper) ToTourResponse(t *entity.Tour, currency string) dto.TourResponse {
	price := t.Price
	code := entity.PivotCurrency
	if converted, err := m.converter.Convert(t.Price, entity.PivotCurrency, currency); err == nil {
		price = converted
		code = currency
	}
	return dto.TourResponse{
		Id:          t.Id,
		Name:        t.Name,
		Destination: t.Destination,
		Country:     t.Country,
		Price:       m.converter.Format(price, code),
		Duration:    t.Duration,
		Rating:      t.Rating,
		Category:    string(t.Category),
	}
}

func (m *CatalogMapper) ToTourResponses(tours []*entity.Tour, currency string) []dto.TourResponse {
	out := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, m.ToTourResponse(t, currency))
	}
	return out
}

func (m *CatalogMapper) ToBookingResponse(b *entity.Booking, currency string) dto.BookingResponse {
	price := b.TotalPrice
	code := entity.PivotCurrency
	if converted, err := m.converter.Convert(b.TotalPrice, entity.PivotCurrency, currency); err == nil {
		price = converted
		code = currency
	}
	return dto.BookingResponse{
		Id:         b.Id,
		TourId:     b.TourId,
		TourName:   b.TourName,
		Date:       b.Date,
		Travelers:  b.Travelers,
		TotalPrice: m.converter.Format(price, code),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

func (m *CatalogMapper) ToBookingResponses(bookings []*entity.Booking, currency string) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, m.ToBookingResponse(b, currency))
	}
	return out
}
