package structs

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// The broker does not keep one envelope across endpoints: the order
// book may arrive under "orders" or "data", the GTT book under
// "pendingGTTOrderBook", and so on. Each response type declares the
// keys to probe, in priority order; after that any list-valued field
// is accepted.
var (
	OrderListKeys    = []string{"orders", "data"}
	GTTListKeys      = []string{"pendingGTTOrderBook", "gtt_orders", "data"}
	TradeListKeys    = []string{"trades", "data"}
	HoldingListKeys  = []string{"data", "holdings"}
	PositionListKeys = []string{"positions", "data"}
)

// Envelope is a parsed 2xx response. Raw is the body exactly as
// received, so callers can judge business-level success themselves.
type Envelope struct {
	Raw  []byte
	Body map[string]interface{}
}

func ParseEnvelope(raw []byte) (Envelope, error) {
	e := Envelope{
		Raw:  raw,
		Body: map[string]interface{}{},
	}

	if len(raw) == 0 {
		return e, nil
	}

	if err := json.Unmarshal(raw, &e.Body); err != nil {
		return e, err
	}

	return e, nil
}

// List extracts the list payload by probing keys in order, then any
// list-valued field (smallest key first, for determinism).
func (e Envelope) List(keys ...string) ([]interface{}, error) {
	for _, key := range keys {
		if list, ok := e.Body[key].([]interface{}); ok {
			return list, nil
		}
	}

	fallback := make([]string, 0, len(e.Body))
	for key := range e.Body {
		if _, ok := e.Body[key].([]interface{}); ok {
			fallback = append(fallback, key)
		}
	}
	sort.Strings(fallback)

	if len(fallback) > 0 {
		return e.Body[fallback[0]].([]interface{}), nil
	}

	return nil, &AmbiguousResponseError{Tried: keys}
}

// Rows is List with non-object elements dropped.
func (e Envelope) Rows(keys ...string) ([]map[string]interface{}, error) {
	list, err := e.List(keys...)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if row, ok := item.(map[string]interface{}); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// BusinessOutcome is the verdict on a 2xx body. The broker returns
// 200 for some rejections, so transport success alone proves nothing;
// acceptance is inferred from an echoed identifier or an explicit
// status field.
type BusinessOutcome struct {
	Accepted   bool   `json:"accepted"`
	Identifier string `json:"identifier,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (e Envelope) Outcome() BusinessOutcome {
	var out BusinessOutcome

	for _, key := range []string{"order_id", "alert_id"} {
		if id := stringField(e.Body, key); id != "" {
			out.Accepted = true
			out.Identifier = id

			break
		}
	}

	status := stringField(e.Body, "status")
	if !out.Accepted && status != "" {
		switch strings.ToUpper(status) {
		case "ERROR", "FAILED", "REJECTED":
		default:
			out.Accepted = true
		}
	}

	out.Message = stringField(e.Body, "message")
	if out.Message == "" {
		out.Message = status
	}

	return out
}

func stringField(body map[string]interface{}, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}

	return ""
}
