package postgres

import (
	"integrate/models"
)

//go:generate mockery --case=snake --name=InstrumentRepo

type InstrumentRepo interface {
	Store(m *models.Instrument) error
	Token(exchange, tradingsymbol string) (string, error)
	GetByExchange(exchange string) ([]models.Instrument, error)
	SetDefault() error
}
