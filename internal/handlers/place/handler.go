package place

import (
	"net/http"
	"rideflow/infras/otel"
	"rideflow/internal/domains/place/service"
	"rideflow/shared/constant"
	"rideflow/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Place
	otel    otel.Otel
}

func New(service service.Place, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/places", func(routerGroup chi.Router) {
		routerGroup.Get("/suggestions", handler.GetSuggestions)
	})
}

// GetSuggestions matches place names against q.
// @Summary Place suggestions
// @Description Case-insensitive substring match over the built-in place list, at most 6 results. Queries shorter than 2 characters return nothing.
// @Tags Place
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} response.Data[dto.SuggestionsResponse]
// @Router /v1/places/suggestions [get]
func (handler *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuggestions")
	defer scope.End()

	query := r.URL.Query().Get(constant.RequestParamQuery)

	response.WithJSON(w, http.StatusOK, handler.service.Suggest(ctx, query))
}
