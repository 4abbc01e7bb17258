package user

import (
	"net/http"
	"rideflow/infras/otel"
	bookingDto "rideflow/internal/domains/booking/model/dto"
	bookingService "rideflow/internal/domains/booking/service"
	"rideflow/internal/domains/user/model/dto"
	"rideflow/internal/domains/user/service"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"rideflow/shared/validator"
	"rideflow/transport/http/middleware"
	"rideflow/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.User
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(service service.User, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Put("/profile", handler.UpdateProfile)
		routerGroup.Put("/profile/image", handler.UploadProfileImage)
		routerGroup.Get("/bookings", handler.GetBookings)
	})
}

// GetProfile returns the caller's profile.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	user, err := handler.service.GetProfile(ctx, middleware.CallerID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.ProfileResponse{User: user})
}

// UpdateProfile changes the caller's name or phone.
// @Summary Update my profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/profile [put]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.UpdateProfile(ctx, middleware.CallerID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithJSON(writer, http.StatusOK, dto.ProfileResponse{User: user})
}

// UploadProfileImage replaces the caller's profile picture.
// @Summary Upload profile image
// @Description Accepts a png or jpeg data URL of at most 2 MB.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UploadImageRequest true "Base64 data URL"
// @Success 200 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/profile/image [put]
// @Security BearerAuth
func (handler *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadProfileImage")
	defer scope.End()

	req := dto.UploadImageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadProfileImage(ctx, middleware.CallerID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload profile image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile image uploaded")

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookings lists the caller's bookings without a status filter.
// @Summary List my bookings
// @Tags User
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	var bookings bookingDto.GetBookingsResponse

	bookings, err := handler.bookings.ListForRider(ctx, middleware.CallerID(ctx), nil, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
