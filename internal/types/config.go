package types

type RunMode string

const (
	// ModeLocal is the mode for running the dashboard with the seed dataset
	ModeLocal RunMode = "local"
	// ModeDemo is the mode for running the dashboard with an empty store
	ModeDemo RunMode = "demo"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
