package fare

import (
	"net/http"
	"rideflow/infras/otel"
	"rideflow/internal/domains/fare/service"
	"rideflow/shared/constant"
	"rideflow/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Fare
	otel    otel.Otel
}

func New(service service.Fare, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/fares", func(routerGroup chi.Router) {
		routerGroup.Get("/rates", handler.GetRates)
	})
}

// GetRates returns the per-class rate table.
// @Summary Fare rates
// @Tags Fare
// @Produce json
// @Success 200 {object} response.Data[dto.RatesResponse]
// @Router /v1/fares/rates [get]
func (handler *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Rates(ctx))
}
