package middleware

import (
	"net/http"
)

// maxBodyBytes bounds the inbound request body.
const maxBodyBytes = 64 * 1024

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Recover → Logging → Metrics → ServerHeader → MaxBytes → mux
func Chain(handler http.Handler, serverName string) http.Handler {
	h := handler
	h = MaxBytes(maxBodyBytes)(h)
	h = ServerHeader(serverName)(h)
	h = Metrics(h)
	h = Logging(h)
	h = Recover(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}

// CORS adds permissive CORS headers and answers preflight requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// MaxBytes limits the request body to the specified number of bytes.
func MaxBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// ServerHeader sets the Server response header.
func ServerHeader(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if name != "" {
				w.Header().Set("Server", name)
			}
			next.ServeHTTP(w, r)
		})
	}
}
