package structs

import "strings"

// The dashboard pages accept single-letter shorthand for the
// enumerated order fields. Expansion is case-insensitive and total:
// a code that matches nothing passes through unchanged and surfaces
// as a broker-side rejection instead. "B" is deliberately scoped per
// field, since it reads as BSE on exchange and BUY on side.

func NormalizeExchange(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "N", "NSE":
		return ExchangeNSE
	case "B", "BSE":
		return ExchangeBSE
	}

	return v
}

func NormalizeSide(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "B", "BUY":
		return SideBuy
	case "S", "SELL":
		return SideSell
	}

	return v
}

func NormalizePriceType(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "L", "LIMIT":
		return PriceTypeLimit
	case "M", "MARKET":
		return PriceTypeMarket
	}

	return v
}

func NormalizeValidity(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "D", "DAY":
		return ValidityDay
	case "I", "IOC":
		return ValidityIOC
	}

	return v
}

func (r OrderRequest) Normalized() OrderRequest {
	r.Exchange = NormalizeExchange(r.Exchange)
	r.OrderType = NormalizeSide(r.OrderType)
	r.PriceType = NormalizePriceType(r.PriceType)
	r.Validity = NormalizeValidity(r.Validity)

	return r
}

func (r ModifyRequest) Normalized() ModifyRequest {
	r.Exchange = NormalizeExchange(r.Exchange)
	r.OrderType = NormalizeSide(r.OrderType)
	r.PriceType = NormalizePriceType(r.PriceType)
	r.Validity = NormalizeValidity(r.Validity)

	return r
}

func (r GTTRequest) Normalized() GTTRequest {
	r.Exchange = NormalizeExchange(r.Exchange)
	r.OrderType = NormalizeSide(r.OrderType)

	return r
}

func (r OCORequest) Normalized() OCORequest {
	r.Exchange = NormalizeExchange(r.Exchange)
	r.OrderType = NormalizeSide(r.OrderType)

	return r
}
