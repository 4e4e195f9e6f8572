package contract

import (
	"context"

	"jf-travels-be/internal/entity"
)

// RateRepository exposes the fixed bureau rate table. The table is loaded
// once and never written back; the admin edit surface has no commit path.
type RateRepository interface {
	FindAll(ctx context.Context) ([]entity.CurrencyRate, error)
	FindByCode(ctx context.Context, code string) (*entity.CurrencyRate, error)
}
