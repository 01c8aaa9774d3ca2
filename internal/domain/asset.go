package domain

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// EU Taxonomy technical screening: a major renovation qualifies when it
	// cuts energy demand or GHG emissions by at least 30%.
	minRenovationReduction = decimal.NewFromInt(30)
)

// SustainabilityThresholds are the minimum scores an asset must reach to
// count as a sustainable investment. Percent-like scores use the same scales
// as the source data: SDG 0-10, ESG 0-20, MSCI governance 0-10.
type SustainabilityThresholds struct {
	MinSDGScore  decimal.Decimal
	MinESGScore  decimal.Decimal
	MinMSCIScore decimal.Decimal
}

// DefaultThresholds returns the baseline thresholds used when a fund doesn't
// override them (SDG 2.5, ESG 8.0, MSCI 4.0).
func DefaultThresholds() SustainabilityThresholds {
	return SustainabilityThresholds{
		MinSDGScore:  decimal.NewFromFloat(2.5),
		MinESGScore:  decimal.NewFromFloat(8.0),
		MinMSCIScore: decimal.NewFromFloat(4.0),
	}
}

// Asset is a single real estate asset with its sustainability attributes.
// Optional scores are pointers; nil means the data point was not reported
// and always fails the comparison it feeds.
type Asset struct {
	AssetID     string
	Name        string
	MarketValue decimal.Decimal

	// EPC grade A-G, empty when the asset is unrated
	EPCRating     string
	Top15Percent  bool
	NZEBCompliant bool

	RenovationEnergyReduction *decimal.Decimal
	RenovationGHGReduction    *decimal.Decimal

	UNSDGScore    *decimal.Decimal
	ESGScore      *decimal.Decimal
	MSCIScore     *decimal.Decimal
	DNSHCompliant bool
}

// IsSustainable reports whether the asset qualifies as a sustainable
// investment. All three SFDR conditions must hold - positive contribution
// (SDG score), do-no-significant-harm, and good governance (ESG or MSCI
// score, either suffices) - plus at least one technical screening criterion:
// EPC "A", top 15% of national building stock, NZEB compliance, or a
// renovation reducing energy demand or GHG emissions by 30% or more.
func (a Asset) IsSustainable(t SustainabilityThresholds) bool {
	positiveContribution := a.UNSDGScore != nil && a.UNSDGScore.GreaterThanOrEqual(t.MinSDGScore)

	goodGovernance := (a.ESGScore != nil && a.ESGScore.GreaterThanOrEqual(t.MinESGScore)) ||
		(a.MSCIScore != nil && a.MSCIScore.GreaterThanOrEqual(t.MinMSCIScore))

	techScreening := a.EPCRating == "A" ||
		a.Top15Percent ||
		a.NZEBCompliant ||
		(a.RenovationEnergyReduction != nil && a.RenovationEnergyReduction.GreaterThanOrEqual(minRenovationReduction)) ||
		(a.RenovationGHGReduction != nil && a.RenovationGHGReduction.GreaterThanOrEqual(minRenovationReduction))

	return positiveContribution && a.DNSHCompliant && goodGovernance && techScreening
}

// sharePercentage returns 100 * part / total, or zero when total is zero.
func sharePercentage(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return hundred.Mul(part).Div(total)
}
