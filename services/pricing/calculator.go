package pricing

import (
	"fmt"
	"math"

	"detailops/models"
)

// cents rounds a float amount to integer cents.
func cents(v float64) int64 {
	return int64(math.Round(v))
}

// DamageRepairHours resolves the repair time for one damage: its own
// estimate when present, otherwise the (type, severity) lookup.
func DamageRepairHours(d models.Damage, rates BaseRates) float64 {
	if d.EstimatedRepairHours > 0 {
		return d.EstimatedRepairHours
	}
	base, ok := rates.DamageBaseHours[d.Type]
	if !ok {
		base = rates.DamageBaseHours[models.DamageOther]
	}
	mult, ok := rates.SeverityMultipliers[d.Severity]
	if !ok {
		mult = 1
	}
	return base * mult
}

// ComputeEstimate composes the multi-stage price breakdown. It is a pure
// function: identical inputs always produce an identical breakdown. Stage
// order matters because percentage stages apply to the running subtotal, not
// the original base. The minimum-charge floor is applied only at the very
// end, after tax.
func ComputeEstimate(
	inspection models.Inspection,
	damages []models.Damage,
	serviceType models.ServiceType,
	rates BaseRates,
	settings ShopSettings,
	weather *models.WeatherSnapshot,
	surge *SurgeFactors,
) models.EstimateBreakdown {
	var bd models.EstimateBreakdown

	// Stage 1: base labor.
	baseHours, ok := rates.ServiceBaseHours[serviceType]
	if !ok {
		baseHours = rates.ServiceBaseHours[models.ServiceCustom]
	}
	bd.BaseLabor = cents(baseHours * float64(rates.LaborRate))
	running := bd.BaseLabor

	// Stage 2: damage repair time.
	var damageHours float64
	for _, d := range damages {
		damageHours += DamageRepairHours(d, rates)
	}
	bd.DamageAdjustment = cents(damageHours * float64(rates.LaborRate))
	running += bd.DamageAdjustment

	// Stage 3: cleanliness.
	tier := filthinessTier(inspection.Filthiness.Overall)
	cleanHours := tier.ExtraHours
	for _, score := range inspection.Filthiness.Zones {
		if score >= dirtyZoneThreshold {
			cleanHours += zoneExtraHours
		}
	}
	bd.CleanlinessAmount = cents(cleanHours * float64(rates.LaborRate) * tier.LaborMultiplier)
	running += bd.CleanlinessAmount

	// Stage 4: weather, an additive delta on the running subtotal.
	if settings.WeatherAdjustments && weather != nil {
		m := WeatherMultiplier(*weather)
		bd.WeatherAmount = cents(float64(running) * (m - 1))
		running += bd.WeatherAmount
	}

	// Stage 5: surge on the running subtotal, capped by the shop maximum.
	if settings.SurgeEnabled && surge != nil {
		m := surge.EffectiveMultiplier(settings.MaximumSurge)
		bd.SurgeAmount = cents(float64(running) * (m - 1))
		running += bd.SurgeAmount
	}

	// Stage 6: materials, a percentage of the post-surge subtotal or a
	// caller-supplied fixed amount.
	if rates.MaterialOverride > 0 {
		bd.Materials = rates.MaterialOverride
	} else {
		bd.Materials = cents(float64(running) * rates.MaterialRate)
	}

	// Stage 7: tax on subtotal plus materials minus discounts.
	bd.Discount = rates.Discount
	bd.Subtotal = running + bd.Materials - bd.Discount
	bd.Tax = cents(float64(bd.Subtotal) * settings.TaxRate)

	// Stage 8: total with the minimum-charge floor, last.
	bd.Total = bd.Subtotal + bd.Tax
	if bd.Total < settings.MinimumCharge {
		bd.Total = settings.MinimumCharge
	}

	bd.LineItems = buildLineItems(bd, baseHours, damageHours, cleanHours, rates)
	return bd
}

// buildLineItems flattens the non-zero stages, in stage order, for customer
// display. Zero-value stages stay out of the list but remain in the
// structured breakdown.
func buildLineItems(bd models.EstimateBreakdown, baseHours, damageHours, cleanHours float64, rates BaseRates) []models.LineItem {
	var items []models.LineItem
	add := func(desc string, qty float64, unit, total int64) {
		if total == 0 {
			return
		}
		items = append(items, models.LineItem{
			Description: desc,
			Quantity:    qty,
			UnitPrice:   unit,
			Total:       total,
		})
	}

	add(fmt.Sprintf("Labor (%.1f h)", baseHours), baseHours, rates.LaborRate, bd.BaseLabor)
	add(fmt.Sprintf("Damage repair (%.1f h)", damageHours), damageHours, rates.LaborRate, bd.DamageAdjustment)
	add(fmt.Sprintf("Extra cleaning (%.1f h)", cleanHours), cleanHours, rates.LaborRate, bd.CleanlinessAmount)
	add("Weather adjustment", 1, bd.WeatherAmount, bd.WeatherAmount)
	add("Demand surcharge", 1, bd.SurgeAmount, bd.SurgeAmount)
	add("Materials", 1, bd.Materials, bd.Materials)
	add("Discount", 1, -bd.Discount, -bd.Discount)
	add("Tax", 1, bd.Tax, bd.Tax)
	return items
}
