package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSessionsStarted   = "crafting_sessions_started_total"
	MetricNameSessionsCompleted = "crafting_sessions_completed_total"
	MetricNameSkillsUsed        = "crafting_skills_used_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameGoldEarned        = "gold_earned_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSessionsStarted   = "Total number of crafting sessions started"
	HelpTextSessionsCompleted = "Total number of crafting sessions completed"
	HelpTextSkillsUsed        = "Total number of skill activations applied to sessions"
	HelpTextItemsSold         = "Total number of items sold to the guild"
	HelpTextGoldEarned        = "Total gold earned from guild sales"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRecipe = "recipe"
	LabelSkill  = "skill"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
