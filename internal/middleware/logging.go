package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/weblogin/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestIDHeader carries the id assigned to each request, both in the response and in log entries.
const RequestIDHeader = "X-Request-Id"

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set(RequestIDHeader, requestID)

			userIP, err := pkg.ReadUserIP(r)
			if err != nil {
				userIP = r.RemoteAddr
			}

			entry := log.WithFields(log.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"ip":         userIP,
				"ua":         r.Header.Get("User-Agent"),
			})
			entry.Trace(" ====> request")

			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			begin := time.Now()
			next.ServeHTTP(resp, r)

			entry.WithFields(log.Fields{
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
			}).Debug(" <==== response")
		})
	}
}
