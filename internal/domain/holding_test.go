package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSCI(t *testing.T) {
	thresholds := DefaultThresholds()

	t.Run("values roll up from contained assets", func(t *testing.T) {
		sustainable := qualifyingAsset()
		sustainable.MarketValue = decimal.NewFromFloat(14.0)

		notSustainable := qualifyingAsset()
		notSustainable.MarketValue = decimal.NewFromFloat(6.0)
		notSustainable.DNSHCompliant = false

		sci := NewSCI("SCI001", "SCI-1", []Asset{sustainable, notSustainable})

		require.True(t, sci.OwnershipPercentage.Equal(decimal.NewFromInt(100)))
		require.True(t, sci.TotalValue().Equal(decimal.NewFromFloat(20.0)))
		require.True(t, sci.SustainableValue(thresholds).Equal(decimal.NewFromFloat(14.0)))
		require.True(t, sci.SustainablePercentage(thresholds).Equal(decimal.NewFromFloat(70.0)))
	})

	t.Run("empty sci has zero percentage, not NaN", func(t *testing.T) {
		sci := NewSCI("SCI002", "SCI-2", nil)
		require.True(t, sci.TotalValue().IsZero())
		require.True(t, sci.SustainablePercentage(thresholds).IsZero())
	})
}

func TestParticipation(t *testing.T) {
	// uncontrolled stake: 30% of a vehicle worth 40.0 that is 65% sustainable
	p := Participation{
		VehicleID:             "UP001",
		Name:                  "Retail SCPI",
		OwnershipPercentage:   decimal.NewFromFloat(30.0),
		TotalValue:            decimal.NewFromFloat(40.0),
		SustainablePercentage: decimal.NewFromFloat(65.0),
	}

	t.Run("full-consolidation sustainable value ignores ownership", func(t *testing.T) {
		controlled := Participation{
			OwnershipPercentage:   decimal.NewFromFloat(75.0),
			TotalValue:            decimal.NewFromFloat(60.0),
			SustainablePercentage: decimal.NewFromFloat(70.0),
		}
		require.True(t, controlled.SustainableValue().Equal(decimal.NewFromFloat(42.0)))
	})

	t.Run("ownership adjusted value", func(t *testing.T) {
		require.True(t, p.OwnershipAdjustedValue().Equal(decimal.NewFromFloat(12.0)))
	})

	t.Run("ownership adjusted sustainable value", func(t *testing.T) {
		require.True(t, p.OwnershipAdjustedSustainableValue().Equal(decimal.NewFromFloat(7.8)))
	})
}

func TestPEFundParticipation_SustainableValue(t *testing.T) {
	pe := PEFundParticipation{
		FundID:                         "PEF001",
		Name:                           "Green Infrastructure PE",
		InvestmentValue:                decimal.NewFromFloat(20.0),
		EstimatedSustainablePercentage: decimal.NewFromFloat(60.0),
		EstimationMethod:               "Based on fund manager's report",
	}
	require.True(t, pe.SustainableValue().Equal(decimal.NewFromFloat(12.0)))
}
