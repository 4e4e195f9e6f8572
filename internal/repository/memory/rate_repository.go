package memory

import (
	"context"
	"fmt"

	"jf-travels-be/internal/entity"
)

// RateRepository serves the rate table from memory. Rows are copied in at
// construction and never mutated afterwards.
type RateRepository struct {
	rates []entity.CurrencyRate
}

func NewRateRepository(rates []entity.CurrencyRate) *RateRepository {
	return &RateRepository{rates: rates}
}

func (r *RateRepository) FindAll(ctx context.Context) ([]entity.CurrencyRate, error) {
	out := make([]entity.CurrencyRate, len(r.rates))
	copy(out, r.rates)
	return out, nil
}

func (r *RateRepository) FindByCode(ctx context.Context, code string) (*entity.CurrencyRate, error) {
	for i := range r.rates {
		if r.rates[i].Code == code {
			rate := r.rates[i]
			return &rate, nil
		}
	}
	return nil, fmt.Errorf("rate not found: %s", code)
}
