package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameShopOperationsTotal = "shop_operations_total"
	MetricNameItemsBought         = "items_bought_total"
	MetricNameItemsSold           = "items_sold_total"
	MetricNameGachaDraws          = "gacha_draws_total"
	MetricNameGoldSpent           = "gold_spent_total"
	MetricNameGoldEarned          = "gold_earned_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextShopOperationsTotal = "Total number of shop operations by outcome"
	HelpTextItemsBought         = "Total number of items bought"
	HelpTextItemsSold           = "Total number of items sold"
	HelpTextGachaDraws          = "Total number of gacha rewards drawn"
	HelpTextGoldSpent           = "Total gold spent on purchases and gacha"
	HelpTextGoldEarned          = "Total gold earned from selling items"
)

// Metric label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelItem      = "item"
	LabelMode      = "mode"
	LabelRarity    = "rarity"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Gacha mode label values
const (
	ModeFixed   = "fixed"
	ModeDynamic = "dynamic"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
