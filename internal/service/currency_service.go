package service

import (
	"context"
	"errors"
	"fmt"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/mapper"
	"jf-travels-be/internal/pkg/logger"
	"jf-travels-be/internal/repository/contract"
	"jf-travels-be/pkg/exchange"

	"github.com/shopspring/decimal"
)

var ErrBadAmount = errors.New("amount is not a number")

type ICurrencyService interface {
	Convert(ctx context.Context, req *dto.ConvertRequest) (*dto.ConvertResponse, error)
	Swap(ctx context.Context, req *dto.SwapRequest) (*dto.ConvertResponse, error)
	ListRates(ctx context.Context) ([]dto.RateResponse, error)
}

type currencyService struct {
	converter *exchange.Converter
	rateRepo  contract.RateRepository
	mapper    *mapper.CurrencyMapper
	logger    logger.ILogger
}

func NewCurrencyService(
	converter *exchange.Converter,
	rateRepo contract.RateRepository,
	currencyMapper *mapper.CurrencyMapper,
	sysLogger logger.ILogger,
) ICurrencyService {
	return &currencyService{
		converter: converter,
		rateRepo:  rateRepo,
		mapper:    currencyMapper,
		logger:    sysLogger,
	}
}

// Convert parses and converts. An unparseable amount is rejected before any
// computation so the caller's previously displayed value stays intact.
func (s *currencyService) Convert(ctx context.Context, req *dto.ConvertRequest) (*dto.ConvertResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadAmount, req.Amount)
	}

	converted, err := s.converter.Convert(amount, req.From, req.To)
	if err != nil {
		return nil, err
	}
	rate, err := s.converter.RateBetween(req.From, req.To)
	if err != nil {
		return nil, err
	}

	return &dto.ConvertResponse{
		Amount:    amount.String(),
		From:      req.From,
		To:        req.To,
		Converted: s.converter.Format(converted, req.To),
		Rate:      rate.StringFixed(4),
	}, nil
}

// Swap reverses the pair and immediately recomputes, so the response can
// never carry a stale converted amount.
func (s *currencyService) Swap(ctx context.Context, req *dto.SwapRequest) (*dto.ConvertResponse, error) {
	from, to := exchange.Swap(req.From, req.To)
	return s.Convert(ctx, &dto.ConvertRequest{
		Amount: req.Amount,
		From:   from,
		To:     to,
	})
}

func (s *currencyService) ListRates(ctx context.Context) ([]dto.RateResponse, error) {
	rates, err := s.rateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToRateResponses(rates), nil
}
