// Package errs defines the error taxonomy shared by the domain, the use cases
// and the adapters.
//
// Every kind has a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) and a
// struct carrying the details, built by NewXError or NewXErrorWithCause. The
// structs unwrap to their sentinel, so callers branch with errors.Is and read
// details with errors.As:
//
//	var upstream *errs.UpstreamUnavailableError
//	if errors.As(err, &upstream) {
//		logger.Warn("upstream failed", "service", upstream.Service)
//	}
//
// The HTTP adapter maps the sentinels to status codes; nothing outside this
// package should compare error strings.
package errs
