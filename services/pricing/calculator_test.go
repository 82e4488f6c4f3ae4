package pricing

import (
	"testing"

	"detailops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEstimateBasicWash(t *testing.T) {
	inspection := models.Inspection{Filthiness: models.FilthinessReport{Overall: 0}}
	bd := ComputeEstimate(inspection, nil, models.ServiceBasicWash, DefaultBaseRates(), DefaultShopSettings(), nil, nil)

	assert.Equal(t, int64(7500), bd.BaseLabor)
	assert.Equal(t, int64(0), bd.DamageAdjustment)
	assert.Equal(t, int64(0), bd.CleanlinessAmount)
	assert.Equal(t, int64(600), bd.Materials) // 8% of 7500
	assert.Equal(t, int64(8100), bd.Subtotal)
	assert.Equal(t, int64(709), bd.Tax) // 8.75% of 8100
	assert.Equal(t, int64(8809), bd.Total)
}

func TestComputeEstimateIsDeterministic(t *testing.T) {
	inspection := models.Inspection{
		Filthiness: models.FilthinessReport{Overall: 60, Zones: map[string]int{"hood": 80, "trunk": 30}},
	}
	damages := []models.Damage{
		{Type: models.DamageDent, Severity: models.SeverityModerate},
		{Type: models.DamageScratch, Severity: models.SeverityMinor, EstimatedRepairHours: 0.25},
	}
	weather := &models.WeatherSnapshot{PrecipitationMM: 2}
	surge := &SurgeFactors{Base: 1.3}

	first := ComputeEstimate(inspection, damages, models.ServiceFullDetail, DefaultBaseRates(), DefaultShopSettings(), weather, surge)
	second := ComputeEstimate(inspection, damages, models.ServiceFullDetail, DefaultBaseRates(), DefaultShopSettings(), weather, surge)
	assert.Equal(t, first, second)
}

func TestComputeEstimateStageOrder(t *testing.T) {
	// full detail 3h = 22500, minor scratch 0.5h = 3750, filthiness 60 = 1h
	// at 1.25x = 9375. Running 35625, doubled by surge, then materials and
	// tax on the post-surge subtotal.
	inspection := models.Inspection{Filthiness: models.FilthinessReport{Overall: 60}}
	damages := []models.Damage{{Type: models.DamageScratch, Severity: models.SeverityMinor}}
	settings := DefaultShopSettings()
	settings.WeatherAdjustments = false
	surge := &SurgeFactors{Base: 2.0}

	bd := ComputeEstimate(inspection, damages, models.ServiceFullDetail, DefaultBaseRates(), settings, nil, surge)

	assert.Equal(t, int64(22500), bd.BaseLabor)
	assert.Equal(t, int64(3750), bd.DamageAdjustment)
	assert.Equal(t, int64(9375), bd.CleanlinessAmount)
	assert.Equal(t, int64(0), bd.WeatherAmount)
	assert.Equal(t, int64(35625), bd.SurgeAmount)
	assert.Equal(t, int64(5700), bd.Materials) // 8% of 71250, after surge
	assert.Equal(t, int64(76950), bd.Subtotal)
	assert.Equal(t, int64(6733), bd.Tax)
	assert.Equal(t, int64(83683), bd.Total)
}

func TestComputeEstimateMinimumChargeFloorAppliesLast(t *testing.T) {
	rates := DefaultBaseRates()
	rates.LaborRate = 1000
	inspection := models.Inspection{}

	bd := ComputeEstimate(inspection, nil, models.ServiceBasicWash, rates, DefaultShopSettings(), nil, nil)

	// 1000 base + 80 materials = 1080, tax 95, well under the 5000 floor.
	assert.Equal(t, int64(1080), bd.Subtotal)
	assert.Equal(t, int64(5000), bd.Total)
}

func TestDamageRepairHours(t *testing.T) {
	rates := DefaultBaseRates()

	// Lookup table: dent at major severity is 1.0h x 4.
	hours := DamageRepairHours(models.Damage{Type: models.DamageDent, Severity: models.SeverityMajor}, rates)
	assert.Equal(t, 4.0, hours)

	// An explicit estimate always wins over the table.
	hours = DamageRepairHours(models.Damage{
		Type: models.DamageRust, Severity: models.SeveritySevere, EstimatedRepairHours: 3,
	}, rates)
	assert.Equal(t, 3.0, hours)

	// Unknown damage types fall back to the "other" row.
	hours = DamageRepairHours(models.Damage{Type: "mystery", Severity: models.SeverityMinor}, rates)
	assert.Equal(t, 0.75, hours)
}

func TestDamageSeverityMultipliers(t *testing.T) {
	rates := DefaultBaseRates()
	base := DamageRepairHours(models.Damage{Type: models.DamageScratch, Severity: models.SeverityMinor}, rates)
	require.Equal(t, 0.5, base)

	assert.Equal(t, base*2, DamageRepairHours(models.Damage{Type: models.DamageScratch, Severity: models.SeverityModerate}, rates))
	assert.Equal(t, base*4, DamageRepairHours(models.Damage{Type: models.DamageScratch, Severity: models.SeverityMajor}, rates))
	assert.Equal(t, base*8, DamageRepairHours(models.Damage{Type: models.DamageScratch, Severity: models.SeveritySevere}, rates))
}

func TestFilthinessTiers(t *testing.T) {
	cases := []struct {
		score      int
		extraHours float64
		multiplier float64
	}{
		{0, 0, 1.0},
		{24, 0, 1.0},
		{25, 0.5, 1.1},
		{50, 1.0, 1.25},
		{74, 1.0, 1.25},
		{75, 2.0, 1.5},
		{100, 2.0, 1.5},
		{150, 2.0, 1.5}, // clamped
		{-5, 0, 1.0},    // clamped
	}
	for _, tc := range cases {
		tier := filthinessTier(tc.score)
		assert.Equal(t, tc.extraHours, tier.ExtraHours, "score %d", tc.score)
		assert.Equal(t, tc.multiplier, tier.LaborMultiplier, "score %d", tc.score)
	}
}

func TestDirtyZonesAddCleaningTime(t *testing.T) {
	rates := DefaultBaseRates()
	settings := DefaultShopSettings()

	clean := models.Inspection{Filthiness: models.FilthinessReport{Overall: 0}}
	dirtyZones := models.Inspection{Filthiness: models.FilthinessReport{
		Overall: 0,
		Zones:   map[string]int{"interior": 90, "trunk": 70, "hood": 69},
	}}

	base := ComputeEstimate(clean, nil, models.ServiceBasicWash, rates, settings, nil, nil)
	zoned := ComputeEstimate(dirtyZones, nil, models.ServiceBasicWash, rates, settings, nil, nil)

	// Two zones at or over the threshold, 0.25h each at the base rate.
	assert.Equal(t, int64(0), base.CleanlinessAmount)
	assert.Equal(t, int64(3750), zoned.CleanlinessAmount)
}

func TestMaterialsOverrideAndDiscount(t *testing.T) {
	rates := DefaultBaseRates()
	rates.MaterialOverride = 2000
	rates.Discount = 1000
	inspection := models.Inspection{}

	bd := ComputeEstimate(inspection, nil, models.ServiceBasicWash, rates, DefaultShopSettings(), nil, nil)

	assert.Equal(t, int64(2000), bd.Materials)
	assert.Equal(t, int64(1000), bd.Discount)
	assert.Equal(t, int64(7500+2000-1000), bd.Subtotal)
}

func TestLineItemsMirrorNonZeroStages(t *testing.T) {
	inspection := models.Inspection{Filthiness: models.FilthinessReport{Overall: 60}}
	damages := []models.Damage{{Type: models.DamageScratch, Severity: models.SeverityMinor}}

	bd := ComputeEstimate(inspection, damages, models.ServiceFullDetail, DefaultBaseRates(), DefaultShopSettings(), nil, nil)

	require.Len(t, bd.LineItems, 5) // labor, damage, cleaning, materials, tax
	assert.Contains(t, bd.LineItems[0].Description, "Labor")
	assert.Contains(t, bd.LineItems[1].Description, "Damage")
	assert.Contains(t, bd.LineItems[2].Description, "cleaning")
	assert.Equal(t, "Materials", bd.LineItems[3].Description)
	assert.Equal(t, "Tax", bd.LineItems[4].Description)
}
