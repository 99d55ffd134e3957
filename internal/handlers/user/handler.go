package user

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/user/model"
	"resort/internal/domains/user/model/dto"
	"resort/internal/domains/user/service"
	"resort/permissions"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/middleware"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.User, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.RequireRoles(permissions.AdminOnly))

		routerGroup.Get("/all", handler.GetUsers)
		routerGroup.Put("/update/{userId}", handler.UpdateUser)
		routerGroup.Delete("/delete/{userId}", handler.DeleteUser)
	})
}

// GetUsers retrieves all staff accounts.
// @Summary Get all users
// @Description Retrieve all staff accounts. Administrators only.
// @Tags User
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role (Admin, Receptionist, Manager)"
// @Success 200 {object} response.Envelope "List of users"
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/user/all [get]
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	role := r.URL.Query().Get(model.FieldRole)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "users retrieved successfully", users)
}

// UpdateUser replaces a staff account's profile fields.
// @Summary Update a user
// @Description Update an existing staff account by its ID. Administrators only.
// @Tags User
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Envelope "User updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/user/update/{userId} [put]
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamUserID)

	req := dto.UpdateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "user updated successfully", user)
}

// DeleteUser removes a staff account.
// @Summary Delete a user
// @Description Delete an existing staff account by its ID. Administrators only.
// @Tags User
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope "User deleted successfully"
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/user/delete/{userId} [delete]
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamUserID)

	user, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "user deleted successfully", user)
}
