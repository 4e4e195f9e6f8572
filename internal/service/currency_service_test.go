package service

import (
	"context"
	"testing"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/mapper"
	"jf-travels-be/internal/repository/memory"
	"jf-travels-be/pkg/exchange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurrencyService() ICurrencyService {
	rates := memory.DefaultRates()
	return NewCurrencyService(
		exchange.NewConverter(rates),
		memory.NewRateRepository(rates),
		mapper.NewCurrencyMapper(),
		nopLogger{},
	)
}

func TestConvertThroughPivot(t *testing.T) {
	svc := newTestCurrencyService()

	resp, err := svc.Convert(context.Background(), &dto.ConvertRequest{
		Amount: "100",
		From:   "USD",
		To:     "NGN",
	})
	require.NoError(t, err)
	assert.Equal(t, "154200.00 NGN", resp.Converted)
	assert.Equal(t, "1542.0000", resp.Rate)
}

func TestConvertRejectsBadAmount(t *testing.T) {
	svc := newTestCurrencyService()

	for _, amount := range []string{"", "abc", "12,5", "1.2.3"} {
		_, err := svc.Convert(context.Background(), &dto.ConvertRequest{
			Amount: amount,
			From:   "USD",
			To:     "EUR",
		})
		assert.ErrorIs(t, err, ErrBadAmount, "amount %q", amount)
	}
}

func TestConvertRejectsUnknownCurrency(t *testing.T) {
	svc := newTestCurrencyService()

	_, err := svc.Convert(context.Background(), &dto.ConvertRequest{
		Amount: "10",
		From:   "USD",
		To:     "XYZ",
	})
	assert.ErrorIs(t, err, exchange.ErrUnknownCurrency)
}

func TestSwapRecomputesWithReversedPair(t *testing.T) {
	svc := newTestCurrencyService()

	resp, err := svc.Swap(context.Background(), &dto.SwapRequest{
		Amount: "100",
		From:   "USD",
		To:     "NGN",
	})
	require.NoError(t, err)
	assert.Equal(t, "NGN", resp.From)
	assert.Equal(t, "USD", resp.To)
	assert.Equal(t, "0.06 USD", resp.Converted)
}

func TestListRatesFormatsTwoDecimals(t *testing.T) {
	svc := newTestCurrencyService()

	rates, err := svc.ListRates(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rates)

	byCode := make(map[string]dto.RateResponse, len(rates))
	for _, r := range rates {
		byCode[r.Code] = r
	}
	assert.Equal(t, "1.00", byCode["USD"].Rate)
	assert.Equal(t, "1542.00", byCode["NGN"].Rate)
	assert.Equal(t, "1538.00", byCode["NGN"].BuyRate)
	assert.Equal(t, "1545.00", byCode["NGN"].SellRate)
	assert.Equal(t, "🇳🇬", byCode["NGN"].Flag)
}
