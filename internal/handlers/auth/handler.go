package auth

import (
	"net/http"
	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	"resort/shared/constant"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Auth, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/verify-email", handler.VerifyEmail)
		routerGroup.Post("/create-user", handler.CreateUser)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/logout", handler.Logout)
	})
}

// VerifyEmail checks whether an email address is acceptable for signup.
// @Summary Verify an email address
// @Description Check the address against the disposable-domain denylist and the configured organization domain.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyEmailRequest true "Verify Email Request"
// @Success 200 {object} response.Envelope "Email is acceptable"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/auth/verify-email [post]
func (handler *Handler) VerifyEmail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyEmail")
	defer scope.End()

	req := dto.VerifyEmailRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.VerifyEmail(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("email verification failed")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "email is acceptable")
}

// CreateUser registers a new staff account and starts a session.
// @Summary Register a new user
// @Description Create a new staff account. The session cookie is set on success.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Envelope "User created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/auth/create-user [post]
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, token, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(writer, err)

		return
	}

	handler.setAuthCookie(writer, token)

	scope.AddEvent("User registered: " + user.Email)

	response.WithData(writer, http.StatusCreated, "user created successfully", user)
}

// Login authenticates a staff account and starts a session.
// @Summary Log in
// @Description Authenticate with email and password. The session cookie is set on success.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Envelope "Logged in successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, token, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login failed")

		response.WithError(writer, err)

		return
	}

	handler.setAuthCookie(writer, token)

	response.WithData(writer, http.StatusOK, "logged in successfully", user)
}

// Logout ends the current session.
// @Summary Log out
// @Description Clear the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope "Logged out successfully"
// @Router /api/auth/logout [post]
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.clearAuthCookie(writer)

	response.WithMessage(writer, http.StatusOK, "logged out successfully")
}

func (handler *Handler) setAuthCookie(writer http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     constant.AuthCookieName,
		Value:    token,
		Path:     constant.AuthCookiePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if handler.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Domain = handler.cfg.Auth.CookieDomain
	}

	http.SetCookie(writer, cookie)
}

func (handler *Handler) clearAuthCookie(writer http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     constant.AuthCookieName,
		Value:    constant.Empty,
		Path:     constant.AuthCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if handler.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Domain = handler.cfg.Auth.CookieDomain
	}

	http.SetCookie(writer, cookie)
}
