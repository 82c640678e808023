package controllers

// SessionController carries the Integrate API credentials and derives
// the headers attached to every call. It performs no network I/O of
// its own: session keys are issued elsewhere and handed in once.
type SessionController struct {
	apiToken  string
	apiSecret string

	uid           string
	actID         string
	apiSessionKey string
	wsSessionKey  string
}

func NewSessionController(
	apiToken string,
	apiSecret string,
) *SessionController {
	return &SessionController{
		apiToken:  apiToken,
		apiSecret: apiSecret,
	}
}

func (c *SessionController) SetSessionKeys(uid, actID, apiSessionKey, wsSessionKey string) {
	c.uid = uid
	c.actID = actID
	c.apiSessionKey = apiSessionKey
	c.wsSessionKey = wsSessionKey
}

func (c *SessionController) SessionKeys() (string, string, string, string) {
	return c.uid, c.actID, c.apiSessionKey, c.wsSessionKey
}

// Headers always carries the static key pair. Authorization is added
// only once a session key is set; without it the broker rejects the
// call and that rejection surfaces as an APIError, not here.
func (c *SessionController) Headers() map[string]string {
	headers := map[string]string{
		"x-api-key":    c.apiToken,
		"x-api-secret": c.apiSecret,
	}

	if c.apiSessionKey != "" {
		headers["Authorization"] = c.apiSessionKey
	}

	return headers
}
