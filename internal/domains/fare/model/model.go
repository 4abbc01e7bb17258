package model

import (
	"github.com/shopspring/decimal"
)

type VehicleClass string

const (
	VehicleMini   VehicleClass = "mini"
	VehicleSedan  VehicleClass = "sedan"
	VehicleSUV    VehicleClass = "suv"
	VehicleLuxury VehicleClass = "luxury"
)

// VehicleClasses lists the supported classes in ascending price order.
var VehicleClasses = []VehicleClass{VehicleMini, VehicleSedan, VehicleSUV, VehicleLuxury}

func (v VehicleClass) Valid() bool {
	switch v {
	case VehicleMini, VehicleSedan, VehicleSUV, VehicleLuxury:
		return true
	default:
		return false
	}
}

const moneyPlaces = 2

// Rate is the tariff of one vehicle class.
type Rate struct {
	Base  decimal.Decimal
	PerKm decimal.Decimal
}

var (
	perMinute = decimal.NewFromInt(2)

	rates = map[VehicleClass]Rate{
		VehicleMini:   {Base: decimal.NewFromInt(50), PerKm: decimal.NewFromInt(8)},
		VehicleSedan:  {Base: decimal.NewFromInt(80), PerKm: decimal.NewFromInt(12)},
		VehicleSUV:    {Base: decimal.NewFromInt(120), PerKm: decimal.NewFromInt(15)},
		VehicleLuxury: {Base: decimal.NewFromInt(200), PerKm: decimal.NewFromInt(25)},
	}
)

// RateFor returns the tariff of class. Unknown classes are charged as mini.
func RateFor(class VehicleClass) Rate {
	if rate, ok := rates[class]; ok {
		return rate
	}

	return rates[VehicleMini]
}

// PerMinute is the time charge shared by every class.
func PerMinute() decimal.Decimal {
	return perMinute
}

// Breakdown is an itemized fare. FinalAmount is always TotalFare minus Discount.
type Breakdown struct {
	BaseFare     decimal.Decimal
	DistanceFare decimal.Decimal
	TimeFare     decimal.Decimal
	TotalFare    decimal.Decimal
	Discount     decimal.Decimal
	FinalAmount  decimal.Decimal
}

// Calculate prices a trip. Negative distance or duration is treated as zero.
func Calculate(class VehicleClass, distanceKm, durationMin float64) Breakdown {
	rate := RateFor(class)

	distance := nonNegative(distanceKm)
	duration := nonNegative(durationMin)

	distanceFare := distance.Mul(rate.PerKm).Round(moneyPlaces)
	timeFare := duration.Mul(perMinute).Round(moneyPlaces)
	total := rate.Base.Add(distanceFare).Add(timeFare)

	return Breakdown{
		BaseFare:     rate.Base,
		DistanceFare: distanceFare,
		TimeFare:     timeFare,
		TotalFare:    total,
		Discount:     decimal.Zero,
		FinalAmount:  total,
	}
}

// WithPercentDiscount applies a percentage discount to the total and recomputes the final amount.
func (b Breakdown) WithPercentDiscount(percent float64) Breakdown {
	pct := nonNegative(percent)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		pct = decimal.NewFromInt(100)
	}

	b.Discount = b.TotalFare.Mul(pct).Div(decimal.NewFromInt(100)).Round(moneyPlaces)
	b.FinalAmount = b.TotalFare.Sub(b.Discount)

	return b
}

func nonNegative(value float64) decimal.Decimal {
	if value <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromFloat(value)
}
