// Package logging provides structured logging using uber/zap.
//
// Two output modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The server logs requests and slow factorizations; primectl logs to stderr
// at warn level unless --verbose is set. The number theory packages never log.
//
// Example Usage:
//
//	logger, err := logging.New(logging.ServerConfig("info", false))
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Component("ws").Debug("stream opened", zap.String("stream_id", id))
package logging
