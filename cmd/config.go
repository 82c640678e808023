package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	IntegrateApiToken  string
	IntegrateApiSecret string
	IntegrateUrl       string

	// Session keys are issued out of band and may be absent at boot;
	// without them the broker rejects every call with 401.
	IntegrateUID           string
	IntegrateActID         string
	IntegrateApiSessionKey string
	IntegrateWsSessionKey  string

	ListenAddr string
	LogLevel   string

	TelegramApiToken string
	TelegramChatID   string

	RedisUrl string
	LokiAddr string

	DB    *DB
	Mongo *Mongo
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var db DB
	var mongo Mongo

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	if cfg.IntegrateApiToken, err = cfg.set("INTEGRATE_API_TOKEN"); err != nil {
		return err
	}

	if cfg.IntegrateApiSecret, err = cfg.set("INTEGRATE_API_SECRET"); err != nil {
		return err
	}

	if cfg.IntegrateUrl, err = cfg.set("INTEGRATE_URL"); err != nil {
		return err
	}

	if cfg.ListenAddr, err = cfg.set("LISTEN_ADDR"); err != nil {
		return err
	}

	cfg.IntegrateUID = os.Getenv("INTEGRATE_UID")
	cfg.IntegrateActID = os.Getenv("INTEGRATE_ACTID")
	cfg.IntegrateApiSessionKey = os.Getenv("INTEGRATE_API_SESSION_KEY")
	cfg.IntegrateWsSessionKey = os.Getenv("INTEGRATE_WS_SESSION_KEY")

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.TelegramApiToken = os.Getenv("TELEGRAM_API_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	cfg.RedisUrl = os.Getenv("REDIS_URL")
	cfg.LokiAddr = os.Getenv("LOKI_ADDR")

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
		return err
	}

	if mongo.Host, err = cfg.set("MONGO_HOST"); err != nil {
		return err
	}

	if mongo.Port, err = cfg.set("MONGO_PORT"); err != nil {
		return err
	}

	if mongo.User, err = cfg.set("MONGO_USER"); err != nil {
		return err
	}

	if mongo.Password, err = cfg.set("MONGO_PASSWORD"); err != nil {
		return err
	}

	if mongo.DBName, err = cfg.set("MONGO_DBNAME"); err != nil {
		return err
	}

	cfg.DB = &db
	cfg.Mongo = &mongo

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", ErrEnvNotFound
	}

	return os.Getenv(key), nil
}
