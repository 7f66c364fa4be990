package domain

// Per-category environmental factors: liters of water and kg of CO2
// saved by keeping one garment of that category in circulation.
var ImpactFactors = map[ClothingCategory]struct {
	Water float64
	CO2   float64
}{
	CategoryTShirt:    {Water: 2700, CO2: 5.5},
	CategoryJeans:     {Water: 7600, CO2: 22},
	CategoryDress:     {Water: 5000, CO2: 15},
	CategoryJacket:    {Water: 10000, CO2: 30},
	CategoryAccessory: {Water: 500, CO2: 1},
}

// Flat per-item averages used for party completion reports (the T-shirt
// factors). Distinct from the category-weighted personal stats; the two
// policies coexist in the product.
const (
	completionWaterPerItem = 2700
	completionCO2PerItem   = 5.5
)

// CompletionImpact converts a final exchanged-item count into the impact
// summary recorded on a completed party. Deterministic in its input.
func CompletionImpact(itemsExchanged int) ImpactStats {
	return ImpactStats{
		ItemsExchanged: itemsExchanged,
		WaterSaved:     float64(itemsExchanged) * completionWaterPerItem,
		CO2Reduced:     float64(itemsExchanged) * completionCO2PerItem,
	}
}

// PersonalImpact sums category-weighted factors over a user's items.
// Note it counts every owned item, not only exchanged ones; ItemsExchanged
// mirrors the original product's naming for that count.
func PersonalImpact(items []ClothingItem) ImpactStats {
	stats := ImpactStats{ItemsExchanged: len(items)}
	for _, item := range items {
		if f, ok := ImpactFactors[item.Category]; ok {
			stats.WaterSaved += f.Water
			stats.CO2Reduced += f.CO2
		}
	}

	return stats
}
