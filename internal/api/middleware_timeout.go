package api

import (
	"net/http"
	"time"
)

// TimeoutMiddleware cancels the request context after timeout and answers
// 503 when the handler has not written a response by then.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, `{"response":"Request timeout"}`)
	}
}
