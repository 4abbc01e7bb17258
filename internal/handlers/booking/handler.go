package booking

import (
	"fmt"
	"net/http"
	"rideflow/infras/otel"
	"rideflow/internal/domains/booking/model"
	"rideflow/internal/domains/booking/model/dto"
	"rideflow/internal/domains/booking/service"
	fareDto "rideflow/internal/domains/fare/model/dto"
	fareService "rideflow/internal/domains/fare/service"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"rideflow/shared/timezone"
	"rideflow/shared/validator"
	"rideflow/transport/http/middleware"
	"rideflow/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const exportFileName = "bookings-%s.xlsx"

type Handler struct {
	service service.Booking
	fare    fareService.Fare
	otel    otel.Otel
}

func New(service service.Booking, fare fareService.Fare, otel otel.Otel) Handler {
	return Handler{
		service: service,
		fare:    fare,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/calculate-fare", handler.CalculateFare)
		routerGroup.Get("/export", handler.ExportBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/cancel", handler.CancelBooking)
		routerGroup.Put("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Put("/{id}/rate", handler.RateBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a pending booking for the authenticated rider. The fare stays zero until the booking is confirmed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
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

	riderID := middleware.CallerID(ctx)

	booking, err := handler.service.Create(ctx, riderID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by rider " + riderID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists the caller's bookings.
// @Summary List my bookings
// @Description Newest first, paginated. Assigned drivers are projected as name and phone.
// @Tags Booking
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size"
// @Param status query string false "pending, confirmed, driver_assigned, pickup, in_progress, completed or cancelled"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	status, err := model.ParseStatusFilter(r.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.ListForRider(ctx, middleware.CallerID(ctx), status, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID returns one booking to its rider or assigned driver.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.GetByID(ctx, id, middleware.CallerID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a non-terminal booking.
// @Summary Cancel a booking
// @Description Only the rider may cancel. Completed or cancelled bookings are rejected with 400.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelBookingRequest{}

	if err := validator.ValidateOptional(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Cancel(ctx, id, middleware.CallerID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// ConfirmBooking prices a pending booking and confirms it.
// @Summary Confirm a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ConfirmBookingRequest true "Trip measurements and payment"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/confirm [put]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	req := dto.ConfirmBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Confirm(ctx, id, middleware.CallerID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// RateBooking records the caller's rating of a completed trip.
// @Summary Rate a completed booking
// @Description The rider fills userRating, the assigned driver fills driverRating. Each side rates once.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RateBookingRequest true "Rating"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/rate [put]
// @Security BearerAuth
func (handler *Handler) RateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RateBooking")
	defer scope.End()

	req := dto.RateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Rate(ctx, id, middleware.CallerID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to rate booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking rated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CalculateFare estimates a fare without creating anything.
// @Summary Estimate a fare
// @Description Unknown vehicle types are charged mini rates. Missing or negative distance and duration count as zero.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body fareDto.CalculateFareRequest true "Trip parameters"
// @Success 200 {object} response.Data[fareDto.FareResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/calculate-fare [post]
func (handler *Handler) CalculateFare(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculateFare")
	defer scope.End()

	req := fareDto.CalculateFareRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	fare, err := handler.fare.Calculate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate fare")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, fare)
}

// ExportBookings streams the caller's booking history as a spreadsheet.
// @Summary Export my bookings
// @Tags Booking
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Status filter"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	status, err := model.ParseStatusFilter(r.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	workbook, err := handler.service.Export(ctx, middleware.CallerID(ctx), status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	fileName := fmt.Sprintf(exportFileName, timezone.Now().Format("20060102"))

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeXLSX)
	w.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(workbook); err != nil {
		log.Error().Err(err).Msg("failed to write export")
	}
}
