package middleware

import (
	"context"
	"errors"
	"net/http"
	"resort/infras/jwt"
	"resort/infras/otel"
	"resort/permissions"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/transport/http/response"
)

// Auth gates routes on the session cookie and the role policy of the
// route class.
type Auth interface {
	RequireRoles(class permissions.RouteClass) func(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

// RequireRoles validates the session cookie, then checks the caller's role
// against the route class. A missing or invalid cookie is 401; a valid
// session with an insufficient role is 403.
func (m *authImpl) RequireRoles(class permissions.RouteClass) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

			scope.SetAttributes(map[string]any{
				"middleware.type": "auth",
				"http.path":       request.URL.Path,
				"http.method":     request.Method,
				"route.class":     string(class),
			})

			cookie, err := request.Cookie(constant.AuthCookieName)
			if err != nil || cookie.Value == "" {
				err := failure.Unauthorized("Missing authentication token")
				response.WithError(writer, err)

				scope.TraceError(err)
				scope.End()

				return
			}

			claims, err := m.jwtService.ValidateToken(cookie.Value)
			if err != nil {
				var message string

				switch {
				case errors.Is(err, jwt.ErrExpiredToken):
					message = "Token has expired"
				case errors.Is(err, jwt.ErrEmptyClaims):
					message = "Invalid token claims"
				default:
					message = "Invalid token"
				}

				err := failure.Unauthorized(message)
				response.WithError(writer, err)

				scope.TraceError(err)
				scope.End()

				return
			}

			if m.permission == nil || !m.permission.Allowed(class, claims.Role) {
				err := failure.ForbiddenError
				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role": claims.Role,
					"reason":    "role_not_allowed",
				})
				scope.End()
				response.WithError(writer, err)

				return
			}

			ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

			scope.End()

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
