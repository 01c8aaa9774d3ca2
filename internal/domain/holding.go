package domain

import (
	"github.com/shopspring/decimal"
)

// SCI is a wholly owned property company (société civile immobilière)
// bundling a list of assets. Ownership is always 100%, so its value rolls
// up into the fund line by line.
type SCI struct {
	SCIID               string
	Name                string
	Assets              []Asset
	OwnershipPercentage decimal.Decimal
}

// NewSCI builds a wholly owned SCI around the given assets.
func NewSCI(id, name string, assets []Asset) SCI {
	return SCI{
		SCIID:               id,
		Name:                name,
		Assets:              assets,
		OwnershipPercentage: hundred,
	}
}

func (s SCI) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, asset := range s.Assets {
		total = total.Add(asset.MarketValue)
	}
	return total
}

func (s SCI) SustainableValue(t SustainabilityThresholds) decimal.Decimal {
	sustainable := decimal.Zero
	for _, asset := range s.Assets {
		if asset.IsSustainable(t) {
			sustainable = sustainable.Add(asset.MarketValue)
		}
	}
	return sustainable
}

func (s SCI) SustainablePercentage(t SustainabilityThresholds) decimal.Decimal {
	return sharePercentage(s.SustainableValue(t), s.TotalValue())
}

// Participation is a stake in another investment vehicle. The sustainable
// percentage of the underlying vehicle is estimated externally (manager
// reports, look-through data) rather than derived from asset-level data.
// Whether the stake is controlled, uncontrolled or minority is decided by
// which fund collection it is added to, not by the struct itself.
type Participation struct {
	VehicleID             string
	Name                  string
	OwnershipPercentage   decimal.Decimal
	TotalValue            decimal.Decimal
	SustainablePercentage decimal.Decimal
}

// SustainableValue is the full-consolidation sustainable value: the whole
// vehicle's sustainable share, with no ownership scaling. Used for
// controlled participations, where control implies line-by-line
// consolidation regardless of the exact ownership share above 50%.
func (p Participation) SustainableValue() decimal.Decimal {
	return p.TotalValue.Mul(p.SustainablePercentage).Div(hundred)
}

// OwnershipAdjustedValue is the fund's economic share of the vehicle,
// used for uncontrolled participations and minority stakes.
func (p Participation) OwnershipAdjustedValue() decimal.Decimal {
	return p.TotalValue.Mul(p.OwnershipPercentage).Div(hundred)
}

func (p Participation) OwnershipAdjustedSustainableValue() decimal.Decimal {
	return p.OwnershipAdjustedValue().Mul(p.SustainablePercentage).Div(hundred)
}

// PEFundParticipation is an investment in a private equity fund. The
// invested amount already represents the fund's exposure, so no ownership
// scaling applies. EstimationMethod documents where the sustainable
// percentage estimate came from; it plays no part in the arithmetic.
type PEFundParticipation struct {
	FundID                         string
	Name                           string
	InvestmentValue                decimal.Decimal
	EstimatedSustainablePercentage decimal.Decimal
	EstimationMethod               string
}

func (p PEFundParticipation) SustainableValue() decimal.Decimal {
	return p.InvestmentValue.Mul(p.EstimatedSustainablePercentage).Div(hundred)
}
