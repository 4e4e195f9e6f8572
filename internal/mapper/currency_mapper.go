package mapper

import (
	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
)

type CurrencyMapper struct{}

func NewCurrencyMapper() *CurrencyMapper {
	return &CurrencyMapper{}
}

func (m *CurrencyMapper) ToRateResponse(r entity.CurrencyRate) dto.RateResponse {
	return dto.RateResponse{
		Code:     r.Code,
		Name:     r.Name,
		Flag:     r.Flag,
		Rate:     r.Rate.StringFixed(2),
		BuyRate:  r.BuyRate.StringFixed(2),
		SellRate: r.SellRate.StringFixed(2),
	}
}

func (m *CurrencyMapper) ToRateResponses(rates []entity.CurrencyRate) []dto.RateResponse {
	out := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, m.ToRateResponse(r))
	}
	return out
}
