package controllers

import (
	"net/url"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=SessionCtrl
//go:generate mockery --case=snake --name=TgmCtrl

type ClientCtrl interface {
	Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, error)
}

type SessionCtrl interface {
	Headers() map[string]string
}

type TgmCtrl interface {
	Send(text string) error
}
