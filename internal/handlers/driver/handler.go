package driver

import (
	"context"
	"net/http"
	"rideflow/infras/otel"
	"rideflow/internal/domains/booking/model"
	bookingDto "rideflow/internal/domains/booking/model/dto"
	bookingService "rideflow/internal/domains/booking/service"
	"rideflow/internal/domains/user/model/dto"
	userService "rideflow/internal/domains/user/service"
	"rideflow/shared/constant"
	"rideflow/shared/validator"
	"rideflow/transport/http/middleware"
	"rideflow/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	users    userService.User
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(users userService.User, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		users:    users,
		bookings: bookings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/drivers", func(routerGroup chi.Router) {
		routerGroup.Post("/nearby-drivers", handler.NearbyDrivers)
		routerGroup.Put("/location", handler.UpdateLocation)
		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Put("/bookings/{id}/accept", handler.AcceptBooking)
		routerGroup.Put("/bookings/{id}/arrive", handler.ArriveAtPickup)
		routerGroup.Put("/bookings/{id}/start", handler.StartTrip)
		routerGroup.Put("/bookings/{id}/complete", handler.CompleteTrip)
	})
}

// NearbyDrivers finds active drivers around a point.
// @Summary Find nearby drivers
// @Description Active drivers with a known location inside the radius, nearest first. Radius defaults to 5000 meters.
// @Tags Driver
// @Accept json
// @Produce json
// @Param request body dto.NearbyDriversRequest true "Search point"
// @Success 200 {object} response.Data[dto.NearbyDriversResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/nearby-drivers [post]
func (handler *Handler) NearbyDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NearbyDrivers")
	defer scope.End()

	req := dto.NearbyDriversRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	drivers, err := handler.users.NearbyDrivers(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find nearby drivers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Nearby drivers retrieved successfully")

	response.WithJSON(w, http.StatusOK, drivers)
}

// UpdateLocation stores the calling driver's current position.
// @Summary Update driver location
// @Tags Driver
// @Accept json
// @Produce json
// @Param request body dto.UpdateLocationRequest true "Current position as [lng, lat]"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/location [put]
// @Security BearerAuth
func (handler *Handler) UpdateLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocation")
	defer scope.End()

	req := dto.UpdateLocationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.users.UpdateLocation(ctx, middleware.CallerID(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update driver location")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Driver location updated")

	response.WithMessage(writer, http.StatusOK, "Location updated successfully")
}

// GetBookings lists the bookings assigned to the caller.
// @Summary List driver bookings
// @Description Newest first, with the rider projected as name and phone.
// @Tags Driver
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} response.Data[bookingDto.DriverBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDriverBookings")
	defer scope.End()

	status, err := model.ParseStatusFilter(r.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := handler.bookings.ListForDriver(ctx, middleware.CallerID(ctx), status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get driver bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// AcceptBooking assigns a pending booking to the calling driver.
// @Summary Accept a booking
// @Tags Driver
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drivers/bookings/{id}/accept [put]
// @Security BearerAuth
func (handler *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "AcceptBooking", handler.bookings.Accept)
}

// ArriveAtPickup marks the assigned driver as arrived.
// @Summary Arrive at pickup
// @Tags Driver
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/drivers/bookings/{id}/arrive [put]
// @Security BearerAuth
func (handler *Handler) ArriveAtPickup(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ArriveAtPickup", handler.bookings.Arrive)
}

// StartTrip starts the ride.
// @Summary Start a trip
// @Tags Driver
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingDto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/drivers/bookings/{id}/start [put]
// @Security BearerAuth
func (handler *Handler) StartTrip(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "StartTrip", handler.bookings.Start)
}

// CompleteTrip finishes the ride and settles payment.
// @Summary Complete a trip
// @Tags Driver
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.CompleteBookingRequest false "Actual duration in minutes"
// @Success 200 {object} response.Data[bookingDto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/drivers/bookings/{id}/complete [put]
// @Security BearerAuth
func (handler *Handler) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteTrip")
	defer scope.End()

	req := bookingDto.CompleteBookingRequest{}

	if err := validator.ValidateOptional(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.bookings.Complete(ctx, id, middleware.CallerID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to complete trip")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip completed")

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	apply func(ctx context.Context, id, driverID string) (bookingDto.BookingResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := apply(ctx, id, middleware.CallerID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("action", name).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(name + " succeeded for booking " + id)

	response.WithJSON(w, http.StatusOK, booking)
}
