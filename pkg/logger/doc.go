// Package logger builds the *slog.Logger instances used across brforms and
// provides attribute helpers so that field names stay consistent between the
// validator, the form binding layer and the HTTP adapter.
//
// New creates a logger from functional options. Text output with DEBUG level
// is used for development, JSON with INFO level for staging and production.
// Context extractors registered with WithContextExtractors (for example
// requestid.LoggerExtractor) are executed on every record, so request-scoped
// values show up without threading loggers through call chains.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "unknown validation rule",
//	    logger.Rule("bogus"),
//	    logger.Component("validator"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
