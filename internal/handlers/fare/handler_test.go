package fare_test

import (
	"net/http"
	"net/http/httptest"
	otelMocks "rideflow/infras/otel/mocks"
	"rideflow/internal/domains/fare/model/dto"
	fareMocks "rideflow/internal/domains/fare/service/mocks"
	"rideflow/internal/handlers/fare"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetRates(t *testing.T) {
	svc := fareMocks.NewMockFare(gomock.NewController(t))
	handler := fare.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	svc.EXPECT().Rates(gomock.Any()).Return(dto.RatesResponse{Rates: []dto.RateResponse{
		{VehicleType: "mini", BaseFare: 50, PerKm: 12, PerMinute: 2},
	}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fares/rates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"rates":[{"vehicleType":"mini","baseFare":50,"perKm":12,"perMinute":2}]}}`, rec.Body.String())
}
