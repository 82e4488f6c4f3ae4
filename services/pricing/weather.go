package pricing

import "detailops/models"

// weatherRule adds a surcharge fraction when its condition holds.
type weatherRule struct {
	applies   func(w models.WeatherSnapshot) bool
	surcharge float64
}

// weatherRules capture how conditions slow outdoor detailing work. The
// resulting multiplier is always >= 1 and applied to the running subtotal.
var weatherRules = []weatherRule{
	{func(w models.WeatherSnapshot) bool { return w.TempC < 5 || w.TempC > 35 }, 0.10},
	{func(w models.WeatherSnapshot) bool { return w.Humidity > 85 }, 0.05},
	{func(w models.WeatherSnapshot) bool { return w.PrecipitationMM > 0.5 }, 0.15},
	{func(w models.WeatherSnapshot) bool { return w.WindKPH > 40 }, 0.05},
	{func(w models.WeatherSnapshot) bool { return w.UVIndex > 8 }, 0.05},
}

// WeatherMultiplier derives the weather impact multiplier from a snapshot.
func WeatherMultiplier(w models.WeatherSnapshot) float64 {
	m := 1.0
	for _, rule := range weatherRules {
		if rule.applies(w) {
			m += rule.surcharge
		}
	}
	return m
}
