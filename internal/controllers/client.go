package controllers

import (
	"bytes"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		logger: logger,
	}
}

// Send issues a single HTTP call and returns the raw response body.
// Every call is at-most-once: there is no retry on any failure path.
func (c *ClientController) Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	for k, v := range headers {
		req.Header.Add(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "do request")}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "read body")}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debugf("%s %s: status %d", method, url.Path, resp.StatusCode)

		return nil, &APIError{Status: resp.StatusCode, Body: out}
	}

	return out, nil
}
