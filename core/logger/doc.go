// Package logger builds the zap logger shared by the CLI and the HTTP server.
//
// Level "debug" selects zap's development preset; any other level uses the
// production preset at that level. Format picks console or json encoding.
//
// WithRayID attaches the request's ray ID (set by the rayid middleware) so
// all log lines of one request can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
