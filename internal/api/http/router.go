package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// The routes mirror the broker's own paths so the dashboard pages map
// one to one onto this API.
func RegisterHTTPEndpoints(f *fiber.App, orders OrdersUC, quotes QuotesUC, presets PresetsRepo, instruments InstrumentsRepo, l *logrus.Logger) {
	h := NewHandler(f, orders, quotes, presets, instruments, l)
	router := f.Group("api")

	router.Get("/healthcheck", h.HealthCheck)

	router.Get("/holdings", h.Holdings)
	router.Get("/positions", h.Positions)
	router.Get("/orders", h.Orders)
	router.Get("/gttorders", h.GTTOrders)
	router.Get("/trades", h.Trades)
	router.Get("/quotes/:exchange/:tradingsymbol", h.Quote)
	router.Get("/instruments/:exchange", h.Instruments)

	router.Post("/placeorder", h.PlaceOrder)
	router.Post("/modify", h.ModifyOrder)
	router.Get("/cancel/:order_id", h.CancelOrder)
	router.Post("/exit", h.ExitPosition)

	router.Post("/gttplace", h.PlaceGTTOrder)
	router.Post("/gttmodify", h.ModifyGTTOrder)
	router.Get("/gttcancel/:alert_id", h.CancelGTTOrder)

	router.Post("/ocoplace", h.PlaceOCOOrder)
	router.Post("/ocomodify", h.ModifyOCOOrder)
	router.Get("/ococancel/:alert_id", h.CancelOCOOrder)

	router.Get("/presets/:page", h.LoadPreset)
	router.Put("/presets/:page", h.UpdatePreset)
}
