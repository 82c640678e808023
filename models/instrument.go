package models

import "time"

// Instrument maps a broker trading symbol to the numeric token the
// quotes endpoint is addressed by. The token is assigned by the
// exchange and cannot be derived from the symbol.
type Instrument struct {
	ID            int       `db:"id" json:"-"`
	Tradingsymbol string    `db:"tradingsymbol" json:"tradingsymbol"`
	Exchange      string    `db:"exchange" json:"exchange"`
	Token         string    `db:"token" json:"token"`
	CreatedAt     time.Time `db:"created_at" json:"-"`
}
