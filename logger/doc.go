// Package logger provides structured logging for larc using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The maybe pipeline logs
// short-circuits through the "maybe" component logger.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("csvrows")
//	log.Info("rows written", logger.Fields("path", path, "rows", n))
package logger
