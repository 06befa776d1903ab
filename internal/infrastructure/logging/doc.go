// Package logging provides structured logging using uber/zap.
//
// Production loggers write JSON; development loggers write colored console
// output. The engine packages never log; providers, handlers and the server
// take a *Logger and attach structured fields.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Named("solver").Debug("matched", zap.String("classifier", name))
package logging
