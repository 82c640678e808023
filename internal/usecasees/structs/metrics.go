package structs

type MetricConst int

const (
	MetricOrderPlaced MetricConst = iota
	MetricOrderModified
	MetricOrderCancelled
	MetricOrderRejected
	MetricGTTPlaced
	MetricGTTModified
	MetricGTTCancelled
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricOrderPlaced:
		return "order_placed_total"
	case MetricOrderModified:
		return "order_modified_total"
	case MetricOrderCancelled:
		return "order_cancelled_total"
	case MetricOrderRejected:
		return "order_rejected_total"
	case MetricGTTPlaced:
		return "gtt_placed_total"
	case MetricGTTModified:
		return "gtt_modified_total"
	case MetricGTTCancelled:
		return "gtt_cancelled_total"
	}

	return "unknown"
}
