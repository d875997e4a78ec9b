package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultWindowDays is the productivity window size when the request
	// does not specify one.
	DefaultWindowDays = 30
)
