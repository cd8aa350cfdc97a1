package constants

// Route prefixes of the site
const (
	PublicRoute  = "/"
	NewsRoute    = "/news"
	AboutRoute   = "/about"
	AdminRoute   = "/admin"
	APIRoute     = "/api"
	HealthRoute  = "/healthz"
	MetricsRoute = "/metrics"
	// PrometheusRoute serves the metrics in the Prometheus text format
	PrometheusRoute = "/metrics/prometheus"
	// MediaRoute serves the uploads of the local media backend
	MediaRoute = "/media"
	// Media path without leading slash, relative to the working directory
	MediaPath = "media"
)
