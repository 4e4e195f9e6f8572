package dto

type ConvertRequest struct {
	Amount string `json:"amount" validate:"required"`
	From   string `json:"from" validate:"required,len=3"`
	To     string `json:"to" validate:"required,len=3"`
}

type ConvertResponse struct {
	Amount    string `json:"amount"`
	From      string `json:"from"`
	To        string `json:"to"`
	Converted string `json:"converted"` // formatted, two decimals + code
	Rate      string `json:"rate"`      // 1 From = Rate To, four decimals
}

// SwapRequest reverses the pair and returns a freshly converted amount, so a
// swap can never leave a stale display behind.
type SwapRequest struct {
	Amount string `json:"amount" validate:"required"`
	From   string `json:"from" validate:"required,len=3"`
	To     string `json:"to" validate:"required,len=3"`
}

type RateResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Flag     string `json:"flag"`
	Rate     string `json:"rate"`
	BuyRate  string `json:"buy_rate"`
	SellRate string `json:"sell_rate"`
}

type SelectCurrencyRequest struct {
	Code string `json:"code" validate:"required,len=3"`
}
