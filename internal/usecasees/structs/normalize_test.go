package structs_test

import (
	"testing"

	"integrate/internal/usecasees/structs"

	"github.com/stretchr/testify/assert"
)

func Test_Normalize(t *testing.T) {
	t.Run("exchange", func(t *testing.T) {
		for _, in := range []string{"N", "n", "NSE", "nse"} {
			assert.Equal(t, "NSE", structs.NormalizeExchange(in))
		}
		for _, in := range []string{"B", "b", "BSE", "bse"} {
			assert.Equal(t, "BSE", structs.NormalizeExchange(in))
		}
	})

	t.Run("side", func(t *testing.T) {
		for _, in := range []string{"B", "b", "BUY", "buy"} {
			assert.Equal(t, "BUY", structs.NormalizeSide(in))
		}
		for _, in := range []string{"S", "s", "SELL", "sell"} {
			assert.Equal(t, "SELL", structs.NormalizeSide(in))
		}
	})

	t.Run("price type", func(t *testing.T) {
		assert.Equal(t, "LIMIT", structs.NormalizePriceType("l"))
		assert.Equal(t, "LIMIT", structs.NormalizePriceType("LIMIT"))
		assert.Equal(t, "MARKET", structs.NormalizePriceType("M"))
		assert.Equal(t, "MARKET", structs.NormalizePriceType("market"))
	})

	t.Run("validity", func(t *testing.T) {
		assert.Equal(t, "DAY", structs.NormalizeValidity("d"))
		assert.Equal(t, "IOC", structs.NormalizeValidity("i"))
		assert.Equal(t, "DAY", structs.NormalizeValidity("DAY"))
	})

	t.Run("unrecognized codes pass through", func(t *testing.T) {
		assert.Equal(t, "MCX", structs.NormalizeExchange("MCX"))
		assert.Equal(t, "x", structs.NormalizeSide("x"))
		assert.Equal(t, "SL-LIMIT", structs.NormalizePriceType("SL-LIMIT"))
		assert.Equal(t, "GTD", structs.NormalizeValidity("GTD"))
	})

	t.Run("request expansion", func(t *testing.T) {
		req := structs.OrderRequest{
			Tradingsymbol: "SBIN-EQ",
			Exchange:      "n",
			OrderType:     "b",
			PriceType:     "l",
			Validity:      "d",
		}.Normalized()

		assert.Equal(t, "NSE", req.Exchange)
		assert.Equal(t, "BUY", req.OrderType)
		assert.Equal(t, "LIMIT", req.PriceType)
		assert.Equal(t, "DAY", req.Validity)
	})
}
