package holiday

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/holiday/model/dto"
	"resort/internal/domains/holiday/service"
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
	service service.Holiday
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.Holiday, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/holiday", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.RequireRoles(permissions.Staff))

		routerGroup.Get("/all", handler.GetHolidays)
		routerGroup.Post("/create", handler.CreateHoliday)
		routerGroup.Put("/update/{holidayId}", handler.UpdateHoliday)
		routerGroup.Delete("/delete/{holidayId}", handler.DeleteHoliday)
	})
}

// GetHolidays retrieves the holiday calendar.
// @Summary Get all holidays
// @Description Retrieve all holidays with optional pagination.
// @Tags Holiday
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Envelope "List of holidays"
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/holiday/all [get]
func (handler *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHolidays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	holidays, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get holidays")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "holidays retrieved successfully", holidays)
}

// CreateHoliday adds a holiday to the calendar.
// @Summary Create a new holiday
// @Description Create a new holiday entry with the provided details.
// @Tags Holiday
// @Accept json
// @Produce json
// @Param request body dto.CreateHolidayRequest true "Create Holiday Request"
// @Success 201 {object} response.Envelope "Holiday created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/holiday/create [post]
func (handler *Handler) CreateHoliday(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHoliday")
	defer scope.End()

	req := dto.CreateHolidayRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	holiday, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create holiday")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusCreated, "holiday created successfully", holiday)
}

// UpdateHoliday replaces a holiday's fields.
// @Summary Update a holiday
// @Description Update an existing holiday by its ID.
// @Tags Holiday
// @Accept json
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Param request body dto.UpdateHolidayRequest true "Update Holiday Request"
// @Success 200 {object} response.Envelope "Holiday updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/holiday/update/{holidayId} [put]
func (handler *Handler) UpdateHoliday(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHoliday")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamHolidayID)

	req := dto.UpdateHolidayRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	holiday, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update holiday")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "holiday updated successfully", holiday)
}

// DeleteHoliday removes a holiday from the calendar.
// @Summary Delete a holiday
// @Description Delete an existing holiday by its ID.
// @Tags Holiday
// @Accept json
// @Produce json
// @Param holidayId path string true "Holiday ID"
// @Success 200 {object} response.Envelope "Holiday deleted successfully"
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/holiday/delete/{holidayId} [delete]
func (handler *Handler) DeleteHoliday(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHoliday")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamHolidayID)

	holiday, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete holiday")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "holiday deleted successfully", holiday)
}
