package usecasees

//go:generate mockery --case=snake --name=TokenSource

// TokenSource resolves a trading symbol to the instrument token the
// quotes endpoint is keyed by. Backed by the instrument master, with
// an optional cache in front.
type TokenSource interface {
	Token(exchange, tradingsymbol string) (string, error)
}
