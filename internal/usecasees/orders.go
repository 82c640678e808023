package usecasees

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"integrate/internal/controllers"
	"integrate/internal/usecasees/structs"

	"github.com/google/uuid"
	"github.com/ic2hrmk/promtail"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	holdingsUrlPath  = "/holdings"
	positionsUrlPath = "/positions"
	ordersUrlPath    = "/orders"
	gttOrdersUrlPath = "/gttorders"
	tradesUrlPath    = "/trades"

	placeOrderUrlPath  = "/placeorder"
	modifyOrderUrlPath = "/modify"
	cancelOrderUrlPath = "/cancel"

	gttPlaceUrlPath  = "/gttplace"
	gttModifyUrlPath = "/gttmodify"
	gttCancelUrlPath = "/gttcancel"

	ocoPlaceUrlPath  = "/ocoplace"
	ocoModifyUrlPath = "/ocomodify"
	ocoCancelUrlPath = "/ococancel"
)

// Order book rows still working at the exchange.
var pendingOrderStatuses = map[string]struct{}{
	"NEW":      {},
	"OPEN":     {},
	"REPLACED": {},
}

type orderUseCase struct {
	clientController  controllers.ClientCtrl
	sessionController controllers.SessionCtrl
	tgmController     controllers.TgmCtrl

	quoteUseCase *quoteUseCase

	promTail promtail.Client
	metrics  map[structs.MetricConst]prometheus.Counter

	url string

	logger *logrus.Logger
}

func NewOrderUseCase(
	client controllers.ClientCtrl,
	session controllers.SessionCtrl,
	tgmController controllers.TgmCtrl,
	quoteUseCase *quoteUseCase,
	promTail promtail.Client,
	metrics map[structs.MetricConst]prometheus.Counter,
	url string,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		clientController:  client,
		sessionController: session,
		tgmController:     tgmController,
		quoteUseCase:      quoteUseCase,
		promTail:          promTail,
		metrics:           metrics,
		url:               url,
		logger:            logger,
	}
}

func buildURL(base string, parts ...string) (*url.URL, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(append([]string{baseURL.Path}, parts...)...)

	return baseURL, nil
}

func (u *orderUseCase) get(parts ...string) (structs.Envelope, error) {
	baseURL, err := buildURL(u.url, parts...)
	if err != nil {
		return structs.Envelope{}, err
	}

	body, err := u.clientController.Send(http.MethodGet, baseURL, nil, u.sessionController.Headers())
	if err != nil {
		return structs.Envelope{}, err
	}

	return structs.ParseEnvelope(body)
}

func (u *orderUseCase) post(urlPath string, req interface{}) (structs.Envelope, error) {
	baseURL, err := buildURL(u.url, urlPath)
	if err != nil {
		return structs.Envelope{}, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return structs.Envelope{}, err
	}

	body, err := u.clientController.Send(http.MethodPost, baseURL, payload, u.sessionController.Headers())
	if err != nil {
		return structs.Envelope{}, err
	}

	return structs.ParseEnvelope(body)
}

func (u *orderUseCase) Holdings() (structs.Envelope, error) {
	return u.get(holdingsUrlPath)
}

func (u *orderUseCase) Positions() (structs.Envelope, error) {
	return u.get(positionsUrlPath)
}

func (u *orderUseCase) Orders() (structs.Envelope, error) {
	return u.get(ordersUrlPath)
}

func (u *orderUseCase) GTTOrders() (structs.Envelope, error) {
	return u.get(gttOrdersUrlPath)
}

func (u *orderUseCase) Trades() (structs.Envelope, error) {
	return u.get(tradesUrlPath)
}

// PendingOrders filters the order book down to rows that can still be
// modified or cancelled.
func (u *orderUseCase) PendingOrders() ([]map[string]interface{}, error) {
	env, err := u.Orders()
	if err != nil {
		return nil, err
	}

	rows, err := env.Rows(structs.OrderListKeys...)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		status, _ := row["order_status"].(string)
		if _, ok := pendingOrderStatuses[status]; !ok {
			continue
		}

		if numField(row, "pending_qty") <= 0 {
			continue
		}

		out = append(out, row)
	}

	return out, nil
}

func (u *orderUseCase) PlaceOrder(req structs.OrderRequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()

	if err := req.Validate(); err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	if req.Amount != nil && req.Amount.IsPositive() {
		quantity, refPrice, err := u.sizeByAmount(req)
		if err != nil {
			return structs.Envelope{}, structs.BusinessOutcome{}, err
		}

		req.Quantity = quantity
		if req.PriceType == structs.PriceTypeLimit && !req.Price.IsPositive() {
			req.Price = refPrice
		}
	}
	req.Amount = nil

	if req.Quantity < 1 {
		return structs.Envelope{}, structs.BusinessOutcome{}, &structs.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	// The server ignores the price on market orders; send an explicit zero.
	if req.PriceType == structs.PriceTypeMarket {
		req.Price = decimal.Zero
	}

	if req.Remarks == "" {
		req.Remarks = fmt.Sprintf("ref-%s", uuid.NewString())
	}

	env, err := u.post(placeOrderUrlPath, req)
	if err != nil {
		u.countMetric(structs.MetricOrderRejected)

		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(structs.MetricOrderPlaced)
		u.notify(fmt.Sprintf("[ Order ]\n%s %s x%d\n%s @ %s", req.OrderType, req.Tradingsymbol, req.Quantity, req.PriceType, req.Price))
	} else {
		u.countMetric(structs.MetricOrderRejected)
	}

	u.audit("placeorder %s %s qty=%d accepted=%t id=%s", req.OrderType, req.Tradingsymbol, req.Quantity, out.Accepted, out.Identifier)

	return env, out, nil
}

func (u *orderUseCase) ModifyOrder(req structs.ModifyRequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()

	if err := req.Validate(); err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	if req.PriceType == structs.PriceTypeMarket {
		req.Price = decimal.Zero
	}

	env, err := u.post(modifyOrderUrlPath, req)
	if err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(structs.MetricOrderModified)
	}

	u.audit("modify order_id=%s accepted=%t", req.OrderID, out.Accepted)

	return env, out, nil
}

func (u *orderUseCase) CancelOrder(orderID string) (structs.Envelope, structs.BusinessOutcome, error) {
	return u.cancel(cancelOrderUrlPath, "order_id", orderID, structs.MetricOrderCancelled)
}

func (u *orderUseCase) PlaceGTTOrder(req structs.GTTRequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()
	req.AlertID = ""

	if err := req.Validate(); err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	env, err := u.post(gttPlaceUrlPath, req)
	if err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(structs.MetricGTTPlaced)
		u.notify(fmt.Sprintf("[ GTT ]\n%s %s x%d\ntrigger %s %s", req.OrderType, req.Tradingsymbol, req.Quantity, req.Condition, req.AlertPrice))
	}

	u.audit("gttplace %s %s accepted=%t id=%s", req.OrderType, req.Tradingsymbol, out.Accepted, out.Identifier)

	return env, out, nil
}

func (u *orderUseCase) ModifyGTTOrder(req structs.GTTRequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()

	if req.AlertID == "" {
		return structs.Envelope{}, structs.BusinessOutcome{}, &structs.ValidationError{Field: "alert_id", Reason: "required"}
	}

	if err := req.Validate(); err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	env, err := u.post(gttModifyUrlPath, req)
	if err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(structs.MetricGTTModified)
	}

	u.audit("gttmodify alert_id=%s accepted=%t", req.AlertID, out.Accepted)

	return env, out, nil
}

func (u *orderUseCase) CancelGTTOrder(alertID string) (structs.Envelope, structs.BusinessOutcome, error) {
	return u.cancel(gttCancelUrlPath, "alert_id", alertID, structs.MetricGTTCancelled)
}

func (u *orderUseCase) PlaceOCOOrder(req structs.OCORequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()
	req.AlertID = ""

	if err := req.Validate(); err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	env, err := u.post(ocoPlaceUrlPath, req)
	if err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(structs.MetricGTTPlaced)
		u.notify(fmt.Sprintf("[ OCO ]\n%s %s\ntarget %s x%d / stoploss %s x%d",
			req.OrderType, req.Tradingsymbol, req.TargetPrice, req.TargetQuantity, req.StoplossPrice, req.StoplossQuantity))
	}

	u.audit("ocoplace %s %s accepted=%t id=%s", req.OrderType, req.Tradingsymbol, out.Accepted, out.Identifier)

	return env, out, nil
}

func (u *orderUseCase) ModifyOCOOrder(req structs.OCORequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()

	if req.AlertID == "" {
		return structs.Envelope{}, structs.BusinessOutcome{}, &structs.ValidationError{Field: "alert_id", Reason: "required"}
	}

	if err := req.Validate(); err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	env, err := u.post(ocoModifyUrlPath, req)
	if err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(structs.MetricGTTModified)
	}

	u.audit("ocomodify alert_id=%s accepted=%t", req.AlertID, out.Accepted)

	return env, out, nil
}

func (u *orderUseCase) CancelOCOOrder(alertID string) (structs.Envelope, structs.BusinessOutcome, error) {
	return u.cancel(ocoCancelUrlPath, "alert_id", alertID, structs.MetricGTTCancelled)
}

// ExitPosition sells out of a holding or an open position. For limit
// exits without an explicit price the last traded price is used, the
// same prefill the dashboard offers.
func (u *orderUseCase) ExitPosition(req structs.OrderRequest) (structs.Envelope, structs.BusinessOutcome, error) {
	req = req.Normalized()
	req.OrderType = structs.SideSell

	if req.ProductType == "" {
		req.ProductType = structs.ProductCNC
	}
	if req.Validity == "" {
		req.Validity = structs.ValidityDay
	}

	if req.PriceType == structs.PriceTypeLimit && !req.Price.IsPositive() {
		ltp, err := u.quoteUseCase.LTP(req.Exchange, req.Tradingsymbol)
		if err != nil {
			return structs.Envelope{}, structs.BusinessOutcome{}, err
		}

		req.Price = ltp
	}

	return u.PlaceOrder(req)
}

// cancel issues the GET cancel call shared by regular, GTT and OCO
// orders; only the path and identifier name differ.
func (u *orderUseCase) cancel(urlPath, idField, id string, metric structs.MetricConst) (structs.Envelope, structs.BusinessOutcome, error) {
	if strings.TrimSpace(id) == "" {
		return structs.Envelope{}, structs.BusinessOutcome{}, &structs.ValidationError{Field: idField, Reason: "required"}
	}

	env, err := u.get(urlPath, id)
	if err != nil {
		return structs.Envelope{}, structs.BusinessOutcome{}, err
	}

	out := env.Outcome()
	if out.Accepted {
		u.countMetric(metric)
		u.notify(fmt.Sprintf("[ Cancel ]\n%s %s", idField, id))
	}

	u.audit("%s %s=%s accepted=%t", path.Base(urlPath), idField, id, out.Accepted)

	return env, out, nil
}

func (u *orderUseCase) notify(text string) {
	if u.tgmController == nil {
		return
	}

	if err := u.tgmController.Send(text); err != nil {
		u.logger.Debug(err)
	}
}

func (u *orderUseCase) audit(format string, args ...interface{}) {
	if u.promTail == nil {
		return
	}

	u.promTail.Logf(promtail.Info, format, args...)
}

func (u *orderUseCase) countMetric(m structs.MetricConst) {
	if counter, ok := u.metrics[m]; ok {
		counter.Inc()
	}
}

func numField(row map[string]interface{}, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case string:
		out, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}

		return out
	case json.Number:
		out, _ := v.Float64()

		return out
	}

	return 0
}
