package pricing

import "detailops/models"

// BaseRates holds the enumerable pricing tables. Adding a service or damage
// type is a data change here, not a code change in the calculator.
type BaseRates struct {
	// LaborRate is cents per labor hour.
	LaborRate int64
	// ServiceBaseHours is the fixed labor allotment per service type.
	ServiceBaseHours map[models.ServiceType]float64
	// DamageBaseHours is the repair time at minor severity per damage type.
	DamageBaseHours map[models.DamageType]float64
	// SeverityMultipliers scale DamageBaseHours.
	SeverityMultipliers map[models.DamageSeverity]float64
	// MaterialRate is the fraction of the post-surge subtotal charged for
	// materials. Ignored when MaterialOverride is positive.
	MaterialRate     float64
	MaterialOverride int64
	// Discount is subtracted before tax, in cents.
	Discount int64
}

// ShopSettings are the tenant-level pricing knobs.
type ShopSettings struct {
	TaxRate            float64
	MinimumCharge      int64 // cents, applied after tax as a floor
	MaximumSurge       float64
	SurgeEnabled       bool
	WeatherAdjustments bool
}

// FilthinessTier maps an overall filthiness score band onto extra cleaning
// hours and a labor multiplier. Tiers are matched highest MinScore first.
type FilthinessTier struct {
	MinScore        int
	ExtraHours      float64
	LaborMultiplier float64
}

// DefaultBaseRates returns the stock rate card.
func DefaultBaseRates() BaseRates {
	return BaseRates{
		LaborRate: 7500,
		ServiceBaseHours: map[models.ServiceType]float64{
			models.ServiceBasicWash:     1.0,
			models.ServiceFullDetail:    3.0,
			models.ServicePremiumDetail: 6.0,
			models.ServiceRepair:        2.0,
			models.ServiceCustom:        2.0,
		},
		DamageBaseHours: map[models.DamageType]float64{
			models.DamageScratch: 0.5,
			models.DamageDent:    1.0,
			models.DamagePaint:   1.5,
			models.DamageRust:    2.0,
			models.DamageCrack:   1.0,
			models.DamageOther:   0.75,
		},
		SeverityMultipliers: map[models.DamageSeverity]float64{
			models.SeverityMinor:    1,
			models.SeverityModerate: 2,
			models.SeverityMajor:    4,
			models.SeveritySevere:   8,
		},
		MaterialRate: 0.08,
	}
}

// DefaultShopSettings returns the stock shop configuration.
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		TaxRate:            0.0875,
		MinimumCharge:      5000,
		MaximumSurge:       2.0,
		SurgeEnabled:       true,
		WeatherAdjustments: true,
	}
}

// filthinessTiers is ordered by descending MinScore.
var filthinessTiers = []FilthinessTier{
	{MinScore: 75, ExtraHours: 2.0, LaborMultiplier: 1.5},
	{MinScore: 50, ExtraHours: 1.0, LaborMultiplier: 1.25},
	{MinScore: 25, ExtraHours: 0.5, LaborMultiplier: 1.1},
	{MinScore: 0, ExtraHours: 0, LaborMultiplier: 1.0},
}

// dirtyZoneThreshold: zones at or above this score add zoneExtraHours each.
const (
	dirtyZoneThreshold = 70
	zoneExtraHours     = 0.25
)

// filthinessTier returns the tier for an overall score, clamping to 0-100.
func filthinessTier(score int) FilthinessTier {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, tier := range filthinessTiers {
		if score >= tier.MinScore {
			return tier
		}
	}
	return filthinessTiers[len(filthinessTiers)-1]
}
