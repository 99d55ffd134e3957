package middleware

import (
	"fmt"
	"net/http"
	"resort/config"
	"resort/infras/otel"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/logger"
	"resort/transport/http/response"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Recover(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": ww.Status(),
		})
	})
}

// Recover converts panics into a 500 envelope so a single bad request
// cannot take the process down.
func (a *appMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}

				logger.ErrorWithStack(errors.Wrap(err, "panic recovered"))
				response.WithError(w, failure.InternalError(err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}
