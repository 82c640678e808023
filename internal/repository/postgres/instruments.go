package postgres

import (
	"integrate/models"

	"github.com/jmoiron/sqlx"
)

type InstrumentRepository struct {
	conn *sqlx.DB
}

func NewInstrumentRepository(conn *sqlx.DB) InstrumentRepo {
	return &InstrumentRepository{
		conn: conn,
	}
}

func (r *InstrumentRepository) Store(m *models.Instrument) error {
	if _, err := r.conn.NamedExec(
		"INSERT INTO instruments (tradingsymbol,exchange,token) VALUES (:tradingsymbol,:exchange,:token) "+
			"ON CONFLICT (exchange,tradingsymbol) DO UPDATE SET token = EXCLUDED.token", m); err != nil {
		return err
	}

	return nil
}

func (r *InstrumentRepository) Token(exchange, tradingsymbol string) (string, error) {
	var token string

	if err := r.conn.QueryRowx(
		"SELECT token FROM instruments WHERE exchange = $1 AND tradingsymbol = $2 LIMIT 1",
		exchange, tradingsymbol).Scan(&token); err != nil {
		return "", err
	}

	return token, nil
}

func (r *InstrumentRepository) GetByExchange(exchange string) ([]models.Instrument, error) {
	var instruments []models.Instrument

	if err := r.conn.Select(&instruments,
		"SELECT * FROM instruments WHERE exchange = $1 ORDER BY tradingsymbol;", exchange); err != nil {
		return nil, err
	}

	return instruments, nil
}

func (r *InstrumentRepository) SetDefault() error {
	instruments := []models.Instrument{
		{
			Tradingsymbol: "TEXRAIL-EQ",
			Exchange:      "NSE",
			Token:         "5489",
		},
		{
			Tradingsymbol: "SBIN-EQ",
			Exchange:      "NSE",
			Token:         "3045",
		},
	}

	for i := range instruments {
		if err := r.Store(&instruments[i]); err != nil {
			return err
		}
	}

	return nil
}
