package structs

import (
	"github.com/shopspring/decimal"
)

const (
	ExchangeNSE = "NSE"
	ExchangeBSE = "BSE"

	SideBuy  = "BUY"
	SideSell = "SELL"

	PriceTypeLimit  = "LIMIT"
	PriceTypeMarket = "MARKET"

	ProductCNC = "CNC"
	ProductMIS = "MIS"

	ValidityDay = "DAY"
	ValidityIOC = "IOC"

	ConditionLTPAbove = "LTP_ABOVE"
	ConditionLTPBelow = "LTP_BELOW"
)

// OrderRequest is the /placeorder payload. Amount is a sizing input
// only: when set, the quantity is derived from it against a reference
// price before the request goes out, and the field itself is cleared.
//
// Prices marshal as strings, which is the format the broker expects.
type OrderRequest struct {
	Tradingsymbol     string           `json:"tradingsymbol"`
	Exchange          string           `json:"exchange"`
	OrderType         string           `json:"order_type"`
	Quantity          int              `json:"quantity"`
	Price             decimal.Decimal  `json:"price"`
	PriceType         string           `json:"price_type"`
	ProductType       string           `json:"product_type"`
	Validity          string           `json:"validity,omitempty"`
	DisclosedQuantity int              `json:"disclosed_quantity"`
	Remarks           string           `json:"remarks,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
}

func (r *OrderRequest) Validate() error {
	if r.Tradingsymbol == "" {
		return &ValidationError{Field: "tradingsymbol", Reason: "required"}
	}

	if r.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	if r.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}

	if r.Quantity == 0 && (r.Amount == nil || !r.Amount.IsPositive()) {
		return &ValidationError{Field: "quantity", Reason: "quantity or amount required"}
	}

	return nil
}

// ModifyRequest is the /modify payload. The broker requires the full
// order alongside the identifier, not a delta.
type ModifyRequest struct {
	OrderID           string           `json:"order_id"`
	Tradingsymbol     string           `json:"tradingsymbol"`
	Exchange          string           `json:"exchange"`
	OrderType         string           `json:"order_type"`
	Quantity          int              `json:"quantity"`
	Price             decimal.Decimal  `json:"price"`
	TriggerPrice      *decimal.Decimal `json:"trigger_price,omitempty"`
	PriceType         string           `json:"price_type"`
	ProductType       string           `json:"product_type"`
	Validity          string           `json:"validity,omitempty"`
	DisclosedQuantity int              `json:"disclosed_quantity"`
	Remarks           string           `json:"remarks,omitempty"`
}

func (r *ModifyRequest) Validate() error {
	if r.OrderID == "" {
		return &ValidationError{Field: "order_id", Reason: "required"}
	}

	if r.Tradingsymbol == "" {
		return &ValidationError{Field: "tradingsymbol", Reason: "required"}
	}

	if r.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	if r.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	return nil
}

// GTTRequest covers /gttplace and, with AlertID set, /gttmodify.
type GTTRequest struct {
	Tradingsymbol string          `json:"tradingsymbol"`
	Exchange      string          `json:"exchange"`
	OrderType     string          `json:"order_type"`
	Quantity      int             `json:"quantity"`
	AlertPrice    decimal.Decimal `json:"alert_price"`
	Price         decimal.Decimal `json:"price"`
	Condition     string          `json:"condition"`
	Remarks       string          `json:"remarks,omitempty"`
	AlertID       string          `json:"alert_id,omitempty"`
}

func (r *GTTRequest) Validate() error {
	if r.Tradingsymbol == "" {
		return &ValidationError{Field: "tradingsymbol", Reason: "required"}
	}

	if r.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	if !r.AlertPrice.IsPositive() {
		return &ValidationError{Field: "alert_price", Reason: "must be positive"}
	}

	return nil
}

// OCORequest covers /ocoplace and, with AlertID set, /ocomodify.
// The target and stoploss legs are both mandatory; a GTT with a single
// leg goes through GTTRequest instead.
type OCORequest struct {
	Tradingsymbol    string          `json:"tradingsymbol"`
	Exchange         string          `json:"exchange"`
	OrderType        string          `json:"order_type"`
	TargetQuantity   int             `json:"target_quantity"`
	StoplossQuantity int             `json:"stoploss_quantity"`
	TargetPrice      decimal.Decimal `json:"target_price"`
	StoplossPrice    decimal.Decimal `json:"stoploss_price"`
	ProductType      string          `json:"product_type,omitempty"`
	Remarks          string          `json:"remarks,omitempty"`
	AlertID          string          `json:"alert_id,omitempty"`
}

func (r *OCORequest) Validate() error {
	if r.Tradingsymbol == "" {
		return &ValidationError{Field: "tradingsymbol", Reason: "required"}
	}

	if r.TargetQuantity < 1 {
		return &ValidationError{Field: "target_quantity", Reason: "must be at least 1"}
	}

	if r.StoplossQuantity < 1 {
		return &ValidationError{Field: "stoploss_quantity", Reason: "must be at least 1"}
	}

	if !r.TargetPrice.IsPositive() {
		return &ValidationError{Field: "target_price", Reason: "must be positive"}
	}

	if !r.StoplossPrice.IsPositive() {
		return &ValidationError{Field: "stoploss_price", Reason: "must be positive"}
	}

	return nil
}

// IsOCO reports whether a GTT book row belongs to an OCO pair. The
// book mixes single and OCO alerts; the paired legs are recognizable
// by their target/stoploss fields.
func IsOCO(row map[string]interface{}) bool {
	for _, key := range []string{"stoploss_price", "stoploss_trigger", "target_price", "target_trigger"} {
		if v, ok := row[key]; ok && v != nil && v != "" {
			return true
		}
	}

	return false
}
