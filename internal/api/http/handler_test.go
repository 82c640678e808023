package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apiHttp "integrate/internal/api/http"
	"integrate/internal/usecasees/structs"
	"integrate/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubOrders struct {
	apiHttp.OrdersUC
	ordersEnv structs.Envelope
	gttEnv    structs.Envelope
	pending   []map[string]interface{}
}

func (s *stubOrders) Orders() (structs.Envelope, error)    { return s.ordersEnv, nil }
func (s *stubOrders) GTTOrders() (structs.Envelope, error) { return s.gttEnv, nil }

func (s *stubOrders) PendingOrders() ([]map[string]interface{}, error) {
	return s.pending, nil
}

type stubInstruments struct {
	gotExchange string
	rows        []models.Instrument
}

func (s *stubInstruments) GetByExchange(exchange string) ([]models.Instrument, error) {
	s.gotExchange = exchange

	return s.rows, nil
}

func mustEnvelope(t *testing.T, raw string) structs.Envelope {
	t.Helper()

	env, err := structs.ParseEnvelope([]byte(raw))
	assert.NoError(t, err)

	return env
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))

	return body
}

func Test_Handler_Orders(t *testing.T) {
	orders := &stubOrders{
		ordersEnv: mustEnvelope(t, `{"orders":[{"order_id":"1"},{"order_id":"2"}]}`),
		pending:   []map[string]interface{}{{"order_id": "1"}},
	}

	f := fiber.New()
	apiHttp.RegisterHTTPEndpoints(f, orders, nil, nil, nil, logrus.New())

	t.Run("full book", func(t *testing.T) {
		resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Len(t, body["rows"], 2)
	})

	t.Run("pending query flag", func(t *testing.T) {
		resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/api/orders?pending=true", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Len(t, body["rows"], 1)
	})
}

func Test_Handler_GTTOrders(t *testing.T) {
	orders := &stubOrders{
		gttEnv: mustEnvelope(t, `{"pendingGTTOrderBook":[
			{"alert_id":"1","stoploss_price":"144","target_price":"164"},
			{"alert_id":"2","alert_price":"1850"}
		]}`),
	}

	f := fiber.New()
	apiHttp.RegisterHTTPEndpoints(f, orders, nil, nil, nil, logrus.New())

	resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/api/gttorders", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	rows := decodeBody(t, resp)["rows"].([]interface{})
	assert.Len(t, rows, 2)

	oco := rows[0].(map[string]interface{})
	assert.Equal(t, true, oco["is_oco"])
	assert.Equal(t, "1", oco["alert_id"])

	single := rows[1].(map[string]interface{})
	assert.Equal(t, false, single["is_oco"])
}

func Test_Handler_Instruments(t *testing.T) {
	instruments := &stubInstruments{
		rows: []models.Instrument{
			{Tradingsymbol: "SBIN-EQ", Exchange: "NSE", Token: "3045"},
		},
	}

	f := fiber.New()
	apiHttp.RegisterHTTPEndpoints(f, &stubOrders{}, nil, nil, instruments, logrus.New())

	resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/api/instruments/n", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "NSE", instruments.gotExchange)

	list := decodeBody(t, resp)["instruments"].([]interface{})
	assert.Len(t, list, 1)

	row := list[0].(map[string]interface{})
	assert.Equal(t, "3045", row["token"])
	assert.Equal(t, "SBIN-EQ", row["tradingsymbol"])
}
