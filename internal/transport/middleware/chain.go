package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior such as
// request logging, panic recovery, or token validation.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one. The first argument becomes the
// outermost wrapper: Chain(mw1, mw2)(handler) yields mw1(mw2(handler)),
// so mw1 sees the request first. The router relies on this ordering to
// run request ID assignment before logging.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
