package calculator

import (
	"github.com/shopspring/decimal"
)

// CategoryResult is the (total, sustainable, percentage) triple for one
// holding category or for the fund as a whole.
type CategoryResult struct {
	TotalValue            decimal.Decimal `json:"total_value"`
	SustainableValue      decimal.Decimal `json:"sustainable_value"`
	SustainablePercentage decimal.Decimal `json:"sustainable_percentage"`
}

type FundInfo struct {
	FundName      string `json:"fund_name"`
	FundType      string `json:"fund_type"`
	ReportingDate string `json:"reporting_date"`
}

// CalculationResult is the full consolidated breakdown returned by
// CalculateTotal. Its JSON form is the export document consumed by the
// presentation layer.
type CalculationResult struct {
	FundInfo                   FundInfo       `json:"fund_info"`
	DirectAssets               CategoryResult `json:"direct_assets"`
	SCIs                       CategoryResult `json:"scis"`
	ControlledParticipations   CategoryResult `json:"controlled_participations"`
	UncontrolledParticipations CategoryResult `json:"uncontrolled_participations"`
	MinorityStakes             CategoryResult `json:"minority_stakes"`
	PEFundParticipations       CategoryResult `json:"pe_fund_participations"`
	FundTotal                  CategoryResult `json:"fund_total"`
}

// Categories returns the six per-category triples in reporting order.
func (r CalculationResult) Categories() []CategoryResult {
	return []CategoryResult{
		r.DirectAssets,
		r.SCIs,
		r.ControlledParticipations,
		r.UncontrolledParticipations,
		r.MinorityStakes,
		r.PEFundParticipations,
	}
}

var hundred = decimal.NewFromInt(100)

func newCategoryResult(total, sustainable decimal.Decimal) CategoryResult {
	percentage := decimal.Zero
	if total.IsPositive() {
		percentage = hundred.Mul(sustainable).Div(total)
	}
	return CategoryResult{
		TotalValue:            total,
		SustainableValue:      sustainable,
		SustainablePercentage: percentage,
	}
}

// CalculateDirectAssets values the directly held assets: an asset counts as
// sustainable in full or not at all, depending on the sustainability rule.
func (c *Calculator) CalculateDirectAssets() CategoryResult {
	total := decimal.Zero
	sustainable := decimal.Zero
	for _, asset := range c.directAssets {
		total = total.Add(asset.MarketValue)
		if asset.IsSustainable(c.Thresholds) {
			sustainable = sustainable.Add(asset.MarketValue)
		}
	}
	return newCategoryResult(total, sustainable)
}

// CalculateSCIs values the wholly owned SCIs by rolling up their assets.
func (c *Calculator) CalculateSCIs() CategoryResult {
	total := decimal.Zero
	sustainable := decimal.Zero
	for _, sci := range c.scis {
		total = total.Add(sci.TotalValue())
		sustainable = sustainable.Add(sci.SustainableValue(c.Thresholds))
	}
	return newCategoryResult(total, sustainable)
}

// CalculateControlledParticipations uses full consolidation: the whole
// vehicle value enters the books, ownership percentage does not scale it.
func (c *Calculator) CalculateControlledParticipations() CategoryResult {
	total := decimal.Zero
	sustainable := decimal.Zero
	for _, p := range c.controlled {
		total = total.Add(p.TotalValue)
		sustainable = sustainable.Add(p.SustainableValue())
	}
	return newCategoryResult(total, sustainable)
}

// CalculateUncontrolledParticipations uses proportional consolidation,
// counting only the fund's economic share.
func (c *Calculator) CalculateUncontrolledParticipations() CategoryResult {
	total := decimal.Zero
	sustainable := decimal.Zero
	for _, p := range c.uncontrolled {
		total = total.Add(p.OwnershipAdjustedValue())
		sustainable = sustainable.Add(p.OwnershipAdjustedSustainableValue())
	}
	return newCategoryResult(total, sustainable)
}

// CalculateMinorityStakes uses the same proportional treatment as
// uncontrolled participations.
func (c *Calculator) CalculateMinorityStakes() CategoryResult {
	total := decimal.Zero
	sustainable := decimal.Zero
	for _, p := range c.minority {
		total = total.Add(p.OwnershipAdjustedValue())
		sustainable = sustainable.Add(p.OwnershipAdjustedSustainableValue())
	}
	return newCategoryResult(total, sustainable)
}

// CalculatePEFundParticipations values PE fund investments at the invested
// amount; the exposure already reflects the fund's share, so no ownership
// scaling applies.
func (c *Calculator) CalculatePEFundParticipations() CategoryResult {
	total := decimal.Zero
	sustainable := decimal.Zero
	for _, p := range c.peFunds {
		total = total.Add(p.InvestmentValue)
		sustainable = sustainable.Add(p.SustainableValue())
	}
	return newCategoryResult(total, sustainable)
}

// CalculateTotal consolidates all six categories into the fund-level
// figures. It recomputes everything from the current holdings on every
// call; holding counts are small enough that caching would buy nothing.
func (c *Calculator) CalculateTotal() CalculationResult {
	directAssets := c.CalculateDirectAssets()
	scis := c.CalculateSCIs()
	controlled := c.CalculateControlledParticipations()
	uncontrolled := c.CalculateUncontrolledParticipations()
	minority := c.CalculateMinorityStakes()
	peFunds := c.CalculatePEFundParticipations()

	total := directAssets.TotalValue.
		Add(scis.TotalValue).
		Add(controlled.TotalValue).
		Add(uncontrolled.TotalValue).
		Add(minority.TotalValue).
		Add(peFunds.TotalValue)

	sustainable := directAssets.SustainableValue.
		Add(scis.SustainableValue).
		Add(controlled.SustainableValue).
		Add(uncontrolled.SustainableValue).
		Add(minority.SustainableValue).
		Add(peFunds.SustainableValue)

	return CalculationResult{
		FundInfo: FundInfo{
			FundName:      c.FundName,
			FundType:      c.FundType,
			ReportingDate: c.ReportingDate,
		},
		DirectAssets:               directAssets,
		SCIs:                       scis,
		ControlledParticipations:   controlled,
		UncontrolledParticipations: uncontrolled,
		MinorityStakes:             minority,
		PEFundParticipations:       peFunds,
		FundTotal:                  newCategoryResult(total, sustainable),
	}
}
