package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("http")

// RequestLogger logs one line per request with its status, size and
// duration. 5xx responses are logged at ERROR, 4xx at WARNING.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			reqID := chimw.GetReqID(r.Context())
			elapsed := time.Since(start)

			switch {
			case status >= 500:
				log.Errorf("[%s] %s %s -> %d (%dB) in %s", reqID, r.Method, r.URL.RequestURI(), status, ww.BytesWritten(), elapsed)
			case status >= 400:
				log.Warningf("[%s] %s %s -> %d (%dB) in %s", reqID, r.Method, r.URL.RequestURI(), status, ww.BytesWritten(), elapsed)
			default:
				log.Infof("[%s] %s %s -> %d (%dB) in %s", reqID, r.Method, r.URL.RequestURI(), status, ww.BytesWritten(), elapsed)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
