// Package requestid tags every request with an identifier carried in the
// X-Request-ID header and in the request context, so log records written
// while serving a form submission can be correlated.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Incoming identifiers are reused only when they are short and limited to
// letters, digits, '-' and '_'; anything else is replaced with a fresh UUID.
package requestid
