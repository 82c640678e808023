package http

import (
	"errors"

	"integrate/internal/controllers"
	mongoStructs "integrate/internal/repository/mongo/structs"
	"integrate/internal/usecasees/structs"
	"integrate/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --case=snake --name=OrdersUC
//go:generate mockery --case=snake --name=QuotesUC
//go:generate mockery --case=snake --name=PresetsRepo
//go:generate mockery --case=snake --name=InstrumentsRepo

type OrdersUC interface {
	Holdings() (structs.Envelope, error)
	Positions() (structs.Envelope, error)
	Orders() (structs.Envelope, error)
	GTTOrders() (structs.Envelope, error)
	Trades() (structs.Envelope, error)
	PendingOrders() ([]map[string]interface{}, error)

	PlaceOrder(req structs.OrderRequest) (structs.Envelope, structs.BusinessOutcome, error)
	ModifyOrder(req structs.ModifyRequest) (structs.Envelope, structs.BusinessOutcome, error)
	CancelOrder(orderID string) (structs.Envelope, structs.BusinessOutcome, error)
	ExitPosition(req structs.OrderRequest) (structs.Envelope, structs.BusinessOutcome, error)

	PlaceGTTOrder(req structs.GTTRequest) (structs.Envelope, structs.BusinessOutcome, error)
	ModifyGTTOrder(req structs.GTTRequest) (structs.Envelope, structs.BusinessOutcome, error)
	CancelGTTOrder(alertID string) (structs.Envelope, structs.BusinessOutcome, error)

	PlaceOCOOrder(req structs.OCORequest) (structs.Envelope, structs.BusinessOutcome, error)
	ModifyOCOOrder(req structs.OCORequest) (structs.Envelope, structs.BusinessOutcome, error)
	CancelOCOOrder(alertID string) (structs.Envelope, structs.BusinessOutcome, error)
}

type QuotesUC interface {
	Quote(exchange, tradingsymbol string) (structs.Envelope, error)
	LTP(exchange, tradingsymbol string) (decimal.Decimal, error)
}

type PresetsRepo interface {
	Load(page string) (*mongoStructs.Preset, error)
	Update(preset *mongoStructs.Preset) error
}

type InstrumentsRepo interface {
	GetByExchange(exchange string) ([]models.Instrument, error)
}

type Handler struct {
	fiber       *fiber.App
	orders      OrdersUC
	quotes      QuotesUC
	presets     PresetsRepo
	instruments InstrumentsRepo
	logger      *logrus.Logger
}

func NewHandler(f *fiber.App, orders OrdersUC, quotes QuotesUC, presets PresetsRepo, instruments InstrumentsRepo, l *logrus.Logger) *Handler {
	return &Handler{
		fiber:       f,
		orders:      orders,
		quotes:      quotes,
		presets:     presets,
		instruments: instruments,
		logger:      l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

func (h *Handler) Holdings(c *fiber.Ctx) error {
	env, err := h.orders.Holdings()
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondRows(c, env, structs.HoldingListKeys)
}

func (h *Handler) Positions(c *fiber.Ctx) error {
	env, err := h.orders.Positions()
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondRows(c, env, structs.PositionListKeys)
}

func (h *Handler) Orders(c *fiber.Ctx) error {
	if c.Query("pending") == "true" {
		rows, err := h.orders.PendingOrders()
		if err != nil {
			return h.respondErr(c, err)
		}

		return c.JSON(fiber.Map{"rows": rows})
	}

	env, err := h.orders.Orders()
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondRows(c, env, structs.OrderListKeys)
}

func (h *Handler) GTTOrders(c *fiber.Ctx) error {
	env, err := h.orders.GTTOrders()
	if err != nil {
		return h.respondErr(c, err)
	}

	rows, err := env.Rows(structs.GTTListKeys...)
	if err != nil {
		return h.respondErr(c, err)
	}

	// The book mixes single and OCO alerts; tag each row so the caller
	// routes cancels and modifies to the right endpoint.
	for _, row := range rows {
		row["is_oco"] = structs.IsOCO(row)
	}

	return c.JSON(fiber.Map{"rows": rows})
}

func (h *Handler) Trades(c *fiber.Ctx) error {
	env, err := h.orders.Trades()
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondRows(c, env, structs.TradeListKeys)
}

func (h *Handler) Quote(c *fiber.Ctx) error {
	ltp, err := h.quotes.LTP(c.Params("exchange"), c.Params("tradingsymbol"))
	if err != nil {
		return h.respondErr(c, err)
	}

	return c.JSON(fiber.Map{"ltp": ltp})
}

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	var req structs.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.PlaceOrder(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) ModifyOrder(c *fiber.Ctx) error {
	var req structs.ModifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.ModifyOrder(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	env, out, err := h.orders.CancelOrder(c.Params("order_id"))
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) ExitPosition(c *fiber.Ctx) error {
	var req structs.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.ExitPosition(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) PlaceGTTOrder(c *fiber.Ctx) error {
	var req structs.GTTRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.PlaceGTTOrder(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) ModifyGTTOrder(c *fiber.Ctx) error {
	var req structs.GTTRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.ModifyGTTOrder(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) CancelGTTOrder(c *fiber.Ctx) error {
	env, out, err := h.orders.CancelGTTOrder(c.Params("alert_id"))
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) PlaceOCOOrder(c *fiber.Ctx) error {
	var req structs.OCORequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.PlaceOCOOrder(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) ModifyOCOOrder(c *fiber.Ctx) error {
	var req structs.OCORequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	env, out, err := h.orders.ModifyOCOOrder(req)
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) CancelOCOOrder(c *fiber.Ctx) error {
	env, out, err := h.orders.CancelOCOOrder(c.Params("alert_id"))
	if err != nil {
		return h.respondErr(c, err)
	}

	return h.respondOutcome(c, env, out)
}

func (h *Handler) Instruments(c *fiber.Ctx) error {
	exchange := structs.NormalizeExchange(c.Params("exchange"))

	instruments, err := h.instruments.GetByExchange(exchange)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"instruments": instruments})
}

func (h *Handler) LoadPreset(c *fiber.Ctx) error {
	preset, err := h.presets.Load(c.Params("page"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(preset)
}

func (h *Handler) UpdatePreset(c *fiber.Ctx) error {
	var preset mongoStructs.Preset
	if err := c.BodyParser(&preset); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	preset.Page = c.Params("page")

	if err := h.presets.Update(&preset); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(preset)
}

func (h *Handler) respondRows(c *fiber.Ctx, env structs.Envelope, keys []string) error {
	rows, err := env.Rows(keys...)
	if err != nil {
		return h.respondErr(c, err)
	}

	return c.JSON(fiber.Map{"rows": rows})
}

// respondOutcome hands both the verdict and the untouched broker body
// back to the caller, so a 200-with-error payload stays inspectable.
func (h *Handler) respondOutcome(c *fiber.Ctx, env structs.Envelope, out structs.BusinessOutcome) error {
	return c.JSON(fiber.Map{
		"outcome":  out,
		"response": env.Body,
	})
}

func (h *Handler) respondErr(c *fiber.Ctx, err error) error {
	h.logger.Debug(err)

	var validationErr *structs.ValidationError
	var apiErr *controllers.APIError
	var transportErr *controllers.TransportError
	var ambiguousErr *structs.AmbiguousResponseError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &apiErr):
		// Broker status and body pass through untouched.
		return c.Status(apiErr.Status).Send(apiErr.Body)
	case errors.As(err, &transportErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &ambiguousErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
