package place_test

import (
	"net/http"
	"net/http/httptest"
	otelMocks "rideflow/infras/otel/mocks"
	"rideflow/internal/domains/place/model/dto"
	placeMocks "rideflow/internal/domains/place/service/mocks"
	"rideflow/internal/handlers/place"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetSuggestions(t *testing.T) {
	svc := placeMocks.NewMockPlace(gomock.NewController(t))
	handler := place.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	svc.EXPECT().Suggest(gomock.Any(), "gate").Return(dto.SuggestionsResponse{Suggestions: []string{"India Gate, New Delhi"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/places/suggestions?q=gate", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"suggestions":["India Gate, New Delhi"]}}`, rec.Body.String())
}
