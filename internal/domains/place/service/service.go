package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"rideflow/infras/otel"
	"rideflow/internal/domains/place/model"
	"rideflow/internal/domains/place/model/dto"
	"rideflow/shared/constant"
	"strings"
	"unicode/utf8"
)

type Place interface {
	Suggest(ctx context.Context, query string) dto.SuggestionsResponse
}

type serviceImpl struct {
	places []string
	otel   otel.Otel
}

func New(otel otel.Otel) Place {
	return &serviceImpl{
		places: model.Places,
		otel:   otel,
	}
}

func (s *serviceImpl) Suggest(ctx context.Context, query string) (res dto.SuggestionsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Suggest")
	defer scope.End()

	res.Suggestions = []string{}

	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < model.MinQueryLength {
		return res
	}

	for _, place := range s.places {
		if strings.Contains(strings.ToLower(place), query) {
			res.Suggestions = append(res.Suggestions, place)
		}

		if len(res.Suggestions) == model.MaxSuggestions {
			break
		}
	}

	return res
}
