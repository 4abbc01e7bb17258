package dto

import (
	"encoding/json"
	"math"
	"rideflow/internal/domains/fare/model"
	"strconv"
	"strings"
)

// Number decodes any JSON value into a float64. Numeric strings are parsed; anything else,
// including NaN and infinities, becomes 0.
type Number float64

func (n *Number) UnmarshalJSON(raw []byte) error {
	*n = 0

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil //nolint:nilerr
	}

	var parsed float64

	switch v := value.(type) {
	case float64:
		parsed = v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil //nolint:nilerr
		}

		parsed = f
	default:
		return nil
	}

	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}

	*n = Number(parsed)

	return nil
}

// CalculateFareRequest never fails validation: unknown classes price as mini and bad numbers as 0.
type CalculateFareRequest struct {
	Distance    Number `json:"distance"    swaggertype:"number"`
	Duration    Number `json:"duration"    swaggertype:"number"`
	VehicleType string `json:"vehicleType"`
}

func (r *CalculateFareRequest) Inputs() (model.VehicleClass, float64, float64) {
	return model.VehicleClass(r.VehicleType), float64(r.Distance), float64(r.Duration)
}

type FareResponse struct {
	BaseFare     float64 `json:"baseFare"`
	DistanceFare float64 `json:"distanceFare"`
	TimeFare     float64 `json:"timeFare"`
	TotalFare    float64 `json:"totalFare"`
	Discount     float64 `json:"discount"`
	FinalAmount  float64 `json:"finalAmount"`
}

func (r *FareResponse) FromModel(fare model.Breakdown) {
	r.BaseFare = fare.BaseFare.InexactFloat64()
	r.DistanceFare = fare.DistanceFare.InexactFloat64()
	r.TimeFare = fare.TimeFare.InexactFloat64()
	r.TotalFare = fare.TotalFare.InexactFloat64()
	r.Discount = fare.Discount.InexactFloat64()
	r.FinalAmount = fare.FinalAmount.InexactFloat64()
}

type RateResponse struct {
	VehicleType string  `json:"vehicleType"`
	BaseFare    float64 `json:"baseFare"`
	PerKm       float64 `json:"perKm"`
	PerMinute   float64 `json:"perMinute"`
}

type RatesResponse struct {
	Rates []RateResponse `json:"rates"`
}

func (r *RatesResponse) FromModel() {
	perMinute := model.PerMinute().InexactFloat64()

	r.Rates = make([]RateResponse, len(model.VehicleClasses))
	for i, class := range model.VehicleClasses {
		rate := model.RateFor(class)

		r.Rates[i] = RateResponse{
			VehicleType: string(class),
			BaseFare:    rate.Base.InexactFloat64(),
			PerKm:       rate.PerKm.InexactFloat64(),
			PerMinute:   perMinute,
		}
	}
}
