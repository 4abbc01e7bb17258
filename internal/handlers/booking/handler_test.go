package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	otelMocks "rideflow/infras/otel/mocks"
	"rideflow/internal/domains/booking/model"
	"rideflow/internal/domains/booking/model/dto"
	bookingMocks "rideflow/internal/domains/booking/service/mocks"
	fareDto "rideflow/internal/domains/fare/model/dto"
	fareMocks "rideflow/internal/domains/fare/service/mocks"
	"rideflow/internal/handlers/booking"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"rideflow/shared/failure"
	"strings"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const riderID = "rider-1"

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBooking, *fareMocks.MockFare) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)
	fare := fareMocks.NewMockFare(ctrl)

	handler := booking.New(svc, fare, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, riderID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, svc, fare
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestCreateBooking(t *testing.T) {
	const body = `{
		"pickupLocation": {"address": "Connaught Place", "coordinates": [77.2167, 28.6315]},
		"dropLocation": {"address": "India Gate", "coordinates": [77.2295, 28.6129]},
		"vehicleType": "sedan"
	}`

	t.Run("created", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), riderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, "sedan", req.VehicleType)
				assert.Equal(t, "India Gate", req.DropLocation.Address)

				return dto.BookingResponse{ID: "b-1", Status: string(model.StatusPending)}, nil
			})

		rec := do(router, http.MethodPost, "/bookings/", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "b-1", decodeData[dto.BookingResponse](t, rec).ID)
	})

	t.Run("invalid vehicle type", func(t *testing.T) {
		router, _, _ := newRouter(t)

		rec := do(router, http.MethodPost, "/bookings/", strings.Replace(body, "sedan", "rickshaw", 1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		router, _, _ := newRouter(t)

		rec := do(router, http.MethodPost, "/bookings/", `{
			"pickupLocation": {"address": "Connaught Place"},
			"dropLocation": {"address": "India Gate", "coordinates": [77.2295, 28.6129]},
			"vehicleType": "mini"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBookings(t *testing.T) {
	t.Run("passes pagination and status", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			ListForRider(gomock.Any(), riderID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, status *model.Status, params gDto.QueryParams) (dto.GetBookingsResponse, error) {
				require.NotNil(t, status)
				assert.Equal(t, model.StatusCompleted, *status)
				assert.Equal(t, 2, params.Page)
				assert.Equal(t, 5, params.Limit)

				return dto.GetBookingsResponse{CurrentPage: 2, TotalPages: 3, Total: 12}, nil
			})

		rec := do(router, http.MethodGet, "/bookings/?page=2&limit=5&status=completed", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		res := decodeData[dto.GetBookingsResponse](t, rec)
		assert.Equal(t, 12, res.Total)
		assert.Equal(t, 2, res.CurrentPage)
	})

	t.Run("unknown status", func(t *testing.T) {
		router, _, _ := newRouter(t)

		rec := do(router, http.MethodGet, "/bookings/?status=teleported", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBookingByID(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "found", expected: http.StatusOK},
		{name: "not found", err: failure.NotFound("booking not found"), expected: http.StatusNotFound},
		{name: "not a party", err: failure.Forbidden("access denied"), expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc, _ := newRouter(t)

			svc.EXPECT().GetByID(gomock.Any(), "b-1", riderID).Return(dto.BookingResponse{ID: "b-1"}, tt.err)

			rec := do(router, http.MethodGet, "/bookings/b-1", "")

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Cancel(gomock.Any(), "b-1", riderID, dto.CancelBookingRequest{}).
			Return(dto.BookingResponse{ID: "b-1", Status: string(model.StatusCancelled)}, nil)

		rec := do(router, http.MethodPut, "/bookings/b-1/cancel", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(model.StatusCancelled), decodeData[dto.BookingResponse](t, rec).Status)
	})

	t.Run("with reason", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Cancel(gomock.Any(), "b-1", riderID, dto.CancelBookingRequest{Reason: pointer.To("plans changed")}).
			Return(dto.BookingResponse{ID: "b-1"}, nil)

		rec := do(router, http.MethodPut, "/bookings/b-1/cancel", `{"reason":"plans changed"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("terminal booking", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Cancel(gomock.Any(), "b-1", riderID, gomock.Any()).
			Return(dto.BookingResponse{}, failure.InvalidState("booking cannot be cancelled"))

		rec := do(router, http.MethodPut, "/bookings/b-1/cancel", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "booking cannot be cancelled")
	})
}

func TestConfirmBooking(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Confirm(gomock.Any(), "b-1", riderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error) {
				assert.InDelta(t, 10.0, *req.Distance, 0.0001)
				assert.InDelta(t, 20.0, *req.Duration, 0.0001)
				assert.Equal(t, "upi", req.PaymentMethod)

				return dto.BookingResponse{ID: "b-1", Fare: dto.Fare{FinalAmount: 180}}, nil
			})

		rec := do(router, http.MethodPut, "/bookings/b-1/confirm", `{"distance":10,"duration":20,"paymentMethod":"upi"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 180.0, decodeData[dto.BookingResponse](t, rec).Fare.FinalAmount, 0.0001)
	})

	t.Run("missing distance", func(t *testing.T) {
		router, _, _ := newRouter(t)

		rec := do(router, http.MethodPut, "/bookings/b-1/confirm", `{"duration":20}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRateBooking(t *testing.T) {
	t.Run("rated", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Rate(gomock.Any(), "b-1", riderID, dto.RateBookingRequest{Rating: 5}).
			Return(dto.BookingResponse{ID: "b-1", Rating: &dto.Rating{UserRating: pointer.To(5)}}, nil)

		rec := do(router, http.MethodPut, "/bookings/b-1/rate", `{"rating":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		router, _, _ := newRouter(t)

		rec := do(router, http.MethodPut, "/bookings/b-1/rate", `{"rating":6}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("already rated", func(t *testing.T) {
		router, svc, _ := newRouter(t)

		svc.EXPECT().
			Rate(gomock.Any(), "b-1", riderID, gomock.Any()).
			Return(dto.BookingResponse{}, failure.Conflict("booking already rated"))

		rec := do(router, http.MethodPut, "/bookings/b-1/rate", `{"rating":4}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCalculateFare(t *testing.T) {
	router, _, fare := newRouter(t)

	fare.EXPECT().
		Calculate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req fareDto.CalculateFareRequest) (fareDto.FareResponse, error) {
			assert.Equal(t, "sedan", req.VehicleType)

			return fareDto.FareResponse{BaseFare: 80, DistanceFare: 150, TimeFare: 40, TotalFare: 270, FinalAmount: 270}, nil
		})

	rec := do(router, http.MethodPost, "/bookings/calculate-fare", `{"distance":10,"duration":20,"vehicleType":"sedan"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 270.0, decodeData[fareDto.FareResponse](t, rec).FinalAmount, 0.0001)
}

func TestCalculateFareNeverRejectsInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		class    string
		distance float64
		duration float64
	}{
		{
			name:     "long unknown vehicle type",
			body:     `{"distance":4,"duration":9,"vehicleType":"` + strings.Repeat("rickshaw", 8) + `"}`,
			class:    strings.Repeat("rickshaw", 8),
			distance: 4,
			duration: 9,
		},
		{
			name:     "non numeric distance",
			body:     `{"distance":"abc","duration":12,"vehicleType":"suv"}`,
			class:    "suv",
			duration: 12,
		},
		{
			name:     "numeric strings and null",
			body:     `{"distance":"7.5","duration":null,"vehicleType":"mini"}`,
			class:    "mini",
			distance: 7.5,
		},
		{
			name:     "objects and booleans",
			body:     `{"distance":{"km":3},"duration":true}`,
			class:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, fare := newRouter(t)

			fare.EXPECT().
				Calculate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req fareDto.CalculateFareRequest) (fareDto.FareResponse, error) {
					class, distance, duration := req.Inputs()

					assert.Equal(t, tt.class, string(class))
					assert.InDelta(t, tt.distance, distance, 0.0001)
					assert.InDelta(t, tt.duration, duration, 0.0001)

					return fareDto.FareResponse{BaseFare: 50, TotalFare: 50, FinalAmount: 50}, nil
				})

			rec := do(router, http.MethodPost, "/bookings/calculate-fare", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestExportBookings(t *testing.T) {
	router, svc, _ := newRouter(t)

	svc.EXPECT().Export(gomock.Any(), riderID, (*model.Status)(nil)).Return([]byte("xlsx"), nil)

	rec := do(router, http.MethodGet, "/bookings/export", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), "attachment; filename=\"bookings-")
	assert.Equal(t, "xlsx", rec.Body.String())
}
