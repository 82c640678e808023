package usecasees

import (
	"fmt"

	"integrate/internal/usecasees/structs"

	"github.com/shopspring/decimal"
)

// sizeByAmount turns a notional amount into a share quantity. The
// reference price is the explicit limit price when one is given,
// otherwise the last traded price. quantity = floor(amount / price);
// anything below one share fails before an order is built.
func (u *orderUseCase) sizeByAmount(req structs.OrderRequest) (int, decimal.Decimal, error) {
	refPrice := decimal.Zero

	if req.PriceType == structs.PriceTypeLimit && req.Price.IsPositive() {
		refPrice = req.Price
	} else {
		ltp, err := u.quoteUseCase.LTP(req.Exchange, req.Tradingsymbol)
		if err != nil {
			return 0, decimal.Zero, &structs.ValidationError{Field: "amount", Reason: fmt.Sprintf("no reference price: %s", err)}
		}

		refPrice = ltp
	}

	if !refPrice.IsPositive() {
		return 0, decimal.Zero, &structs.ValidationError{Field: "amount", Reason: "no usable reference price"}
	}

	quantity := req.Amount.Div(refPrice).IntPart()
	if quantity < 1 {
		return 0, decimal.Zero, &structs.ValidationError{Field: "amount", Reason: fmt.Sprintf("amount %s buys less than one share at %s", req.Amount, refPrice)}
	}

	return int(quantity), refPrice, nil
}
