package usecasees

import (
	"net/http"

	"integrate/internal/controllers"
	"integrate/internal/usecasees/structs"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const quotesUrlPath = "/quotes"

type quoteUseCase struct {
	clientController  controllers.ClientCtrl
	sessionController controllers.SessionCtrl

	tokens TokenSource

	url string

	logger *logrus.Logger
}

func NewQuoteUseCase(
	client controllers.ClientCtrl,
	session controllers.SessionCtrl,
	tokens TokenSource,
	url string,
	logger *logrus.Logger,
) *quoteUseCase {
	return &quoteUseCase{
		clientController:  client,
		sessionController: session,
		tokens:            tokens,
		url:               url,
		logger:            logger,
	}
}

// Quote fetches the raw quote for a symbol. The quotes endpoint is
// keyed by instrument token, not by trading symbol, so the symbol is
// resolved through the token source first.
func (u *quoteUseCase) Quote(exchange, tradingsymbol string) (structs.Envelope, error) {
	exchange = structs.NormalizeExchange(exchange)

	token, err := u.tokens.Token(exchange, tradingsymbol)
	if err != nil {
		return structs.Envelope{}, &structs.ValidationError{Field: "tradingsymbol", Reason: "no instrument token for " + exchange + ":" + tradingsymbol}
	}

	baseURL, err := buildURL(u.url, quotesUrlPath, exchange, token)
	if err != nil {
		return structs.Envelope{}, err
	}

	body, err := u.clientController.Send(http.MethodGet, baseURL, nil, u.sessionController.Headers())
	if err != nil {
		return structs.Envelope{}, err
	}

	return structs.ParseEnvelope(body)
}

// LTP returns the last traded price. The broker serves ltp either as
// a JSON number or as a numeric string.
func (u *quoteUseCase) LTP(exchange, tradingsymbol string) (decimal.Decimal, error) {
	env, err := u.Quote(exchange, tradingsymbol)
	if err != nil {
		return decimal.Zero, err
	}

	switch v := env.Body["ltp"].(type) {
	case string:
		out, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, &structs.AmbiguousResponseError{Tried: []string{"ltp"}}
		}

		return out, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	}

	return decimal.Zero, &structs.AmbiguousResponseError{Tried: []string{"ltp"}}
}
