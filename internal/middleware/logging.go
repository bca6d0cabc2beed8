package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, result code and duration. Calls made while a profile
// is logged in also carry its username.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{"procedure", req.Spec().Procedure}
			if username := GetUsername(ctx); username != "" {
				attrs = append(attrs, "username", username)
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
				slog.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr):
				attrs = append(attrs,
					"code", connectErr.Code(),
					"error", connectErr.Message(),
					"duration_ms", time.Since(start).Milliseconds(),
				)
				// Internal and Unknown are server faults.
				if connectErr.Code() == connect.CodeInternal || connectErr.Code() == connect.CodeUnknown {
					slog.Error("RPC failed", attrs...)
				} else {
					slog.Warn("RPC rejected", attrs...)
				}
			default:
				attrs = append(attrs, "error", err, "duration_ms", time.Since(start).Milliseconds())
				slog.Error("RPC failed", attrs...)
			}

			return resp, err
		}
	}
}

// HTTPLogging logs all incoming requests.
func HTTPLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// CORS adds CORS headers for browser access.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
