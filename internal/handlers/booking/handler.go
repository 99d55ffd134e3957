package booking

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/service"
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
	service service.Booking
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.Booking, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.With(handler.auth.RequireRoles(permissions.Staff)).Get("/all", handler.GetBookings)
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.With(handler.auth.RequireRoles(permissions.Staff)).Put("/update/{bookingId}", handler.UpdateBooking)
		routerGroup.With(handler.auth.RequireRoles(permissions.AdminOnly)).Delete("/delete/{bookingId}", handler.DeleteBooking)
	})
}

// GetBookings retrieves all bookings.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_status query string false "Filter by booking status (Pending, Confirmed, Cancelled)"
// @Param check_in_date query string false "Filter by check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/booking/all [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	bookingStatus := r.URL.Query().Get(model.FieldBookingStatus)
	checkInDate := r.URL.Query().Get(model.FieldCheckInDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingStatus,
			Table:    model.TableName,
		})
	}

	if checkInDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorEq,
			Value:    checkInDate,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "bookings retrieved successfully", bookings)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new booking with the provided details. Open to guests.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Envelope "Booking created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/booking/create [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created for " + booking.Email)

	response.WithData(writer, http.StatusCreated, "booking created successfully", booking)
}

// UpdateBooking replaces a booking's fields.
// @Summary Update a booking
// @Description Update an existing booking by its ID.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Envelope "Booking updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/booking/update/{bookingId} [put]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamBookingID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "booking updated successfully", booking)
}

// DeleteBooking removes a booking.
// @Summary Delete a booking
// @Description Delete an existing booking by its ID. Administrators only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Envelope "Booking deleted successfully"
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/booking/delete/{bookingId} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamBookingID)

	booking, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, "booking deleted successfully", booking)
}
