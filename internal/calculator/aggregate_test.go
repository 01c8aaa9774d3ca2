package calculator

import (
	"encoding/json"
	"math/rand"
	"testing"

	"sustaincalc/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func sustainableAsset(value float64) domain.Asset {
	return domain.Asset{
		AssetID:       "A1",
		Name:          "Office Paris",
		MarketValue:   decimal.NewFromFloat(value),
		EPCRating:     "A",
		Top15Percent:  true,
		UNSDGScore:    decPtr(7.5),
		ESGScore:      decPtr(15.0),
		DNSHCompliant: true,
	}
}

func TestCalculateDirectAssets(t *testing.T) {
	t.Run("single qualifying asset", func(t *testing.T) {
		calc := New("Fund", "Article 8", "2024-12-31")
		calc.AddDirectAsset(sustainableAsset(25.0))

		out := calc.CalculateDirectAssets()

		require.Equal(t, "", cmp.Diff(
			CategoryResult{
				TotalValue:            decimal.NewFromFloat(25.0),
				SustainableValue:      decimal.NewFromFloat(25.0),
				SustainablePercentage: decimal.NewFromFloat(100.0),
			},
			out,
		))
	})

	t.Run("mixed assets", func(t *testing.T) {
		calc := New("Fund", "Article 8", "2024-12-31")
		calc.AddDirectAsset(sustainableAsset(30.0))

		failing := sustainableAsset(10.0)
		failing.DNSHCompliant = false
		calc.AddDirectAsset(failing)

		out := calc.CalculateDirectAssets()
		require.True(t, out.TotalValue.Equal(decimal.NewFromFloat(40.0)))
		require.True(t, out.SustainableValue.Equal(decimal.NewFromFloat(30.0)))
		require.True(t, out.SustainablePercentage.Equal(decimal.NewFromFloat(75.0)))
	})

	t.Run("empty category has zero percentage", func(t *testing.T) {
		calc := New("Fund", "Article 8", "2024-12-31")
		out := calc.CalculateDirectAssets()
		require.True(t, out.TotalValue.IsZero())
		require.True(t, out.SustainablePercentage.IsZero())
	})
}

func TestCalculateControlledParticipations(t *testing.T) {
	// full consolidation: ownership 75% plays no part in the value
	calc := New("Fund", "Article 8", "2024-12-31")
	require.NoError(t, calc.AddControlledParticipation(domain.Participation{
		VehicleID:             "CP001",
		OwnershipPercentage:   decimal.NewFromFloat(75.0),
		TotalValue:            decimal.NewFromFloat(60.0),
		SustainablePercentage: decimal.NewFromFloat(70.0),
	}))

	out := calc.CalculateControlledParticipations()
	require.True(t, out.TotalValue.Equal(decimal.NewFromFloat(60.0)))
	require.True(t, out.SustainableValue.Equal(decimal.NewFromFloat(42.0)))
	require.True(t, out.SustainablePercentage.Equal(decimal.NewFromFloat(70.0)))
}

func TestCalculateUncontrolledParticipations(t *testing.T) {
	calc := New("Fund", "Article 8", "2024-12-31")
	require.NoError(t, calc.AddUncontrolledParticipation(domain.Participation{
		VehicleID:             "UP001",
		OwnershipPercentage:   decimal.NewFromFloat(30.0),
		TotalValue:            decimal.NewFromFloat(40.0),
		SustainablePercentage: decimal.NewFromFloat(65.0),
	}))

	out := calc.CalculateUncontrolledParticipations()
	require.True(t, out.TotalValue.Equal(decimal.NewFromFloat(12.0)))
	require.True(t, out.SustainableValue.Equal(decimal.NewFromFloat(7.8)))
	require.True(t, out.SustainablePercentage.Equal(decimal.NewFromFloat(65.0)))
}

func TestCalculateTotal(t *testing.T) {
	t.Run("additivity over randomized holdings", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))

		for trial := 0; trial < 20; trial++ {
			calc := New("Fund", "Article 8", "2024-12-31")

			for i := 0; i < r.Intn(5); i++ {
				asset := sustainableAsset(float64(r.Intn(1000)) / 10)
				if r.Intn(2) == 0 {
					asset.DNSHCompliant = false
				}
				calc.AddDirectAsset(asset)
			}
			for i := 0; i < r.Intn(3); i++ {
				calc.AddSCI(domain.NewSCI("S", "SCI", []domain.Asset{
					sustainableAsset(float64(r.Intn(500)) / 10),
				}))
			}
			for i := 0; i < r.Intn(3); i++ {
				require.NoError(t, calc.AddControlledParticipation(domain.Participation{
					OwnershipPercentage:   decimal.NewFromFloat(50.1 + float64(r.Intn(499))/10),
					TotalValue:            decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
					SustainablePercentage: decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
				}))
			}
			for i := 0; i < r.Intn(3); i++ {
				require.NoError(t, calc.AddUncontrolledParticipation(domain.Participation{
					OwnershipPercentage:   decimal.NewFromFloat(20 + float64(r.Intn(300))/10),
					TotalValue:            decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
					SustainablePercentage: decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
				}))
			}
			for i := 0; i < r.Intn(3); i++ {
				require.NoError(t, calc.AddMinorityStake(domain.Participation{
					OwnershipPercentage:   decimal.NewFromFloat(float64(r.Intn(199)) / 10),
					TotalValue:            decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
					SustainablePercentage: decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
				}))
			}
			for i := 0; i < r.Intn(3); i++ {
				calc.AddPEFundParticipation(domain.PEFundParticipation{
					InvestmentValue:                decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
					EstimatedSustainablePercentage: decimal.NewFromFloat(float64(r.Intn(1000)) / 10),
				})
			}

			result := calc.CalculateTotal()

			totalSum := decimal.Zero
			sustainableSum := decimal.Zero
			for _, category := range result.Categories() {
				totalSum = totalSum.Add(category.TotalValue)
				sustainableSum = sustainableSum.Add(category.SustainableValue)

				require.True(t, category.SustainablePercentage.GreaterThanOrEqual(decimal.Zero))
				require.True(t, category.SustainablePercentage.LessThanOrEqual(decimal.NewFromInt(100)))
				if category.TotalValue.IsZero() {
					require.True(t, category.SustainablePercentage.IsZero())
				}
			}

			require.True(t, result.FundTotal.TotalValue.Equal(totalSum),
				"fund total %s != category sum %s", result.FundTotal.TotalValue, totalSum)
			require.True(t, result.FundTotal.SustainableValue.Equal(sustainableSum),
				"fund sustainable %s != category sum %s", result.FundTotal.SustainableValue, sustainableSum)
		}
	})

	t.Run("repeatable read", func(t *testing.T) {
		calc := New("Fund", "Article 8", "2024-12-31")
		calc.AddDirectAsset(sustainableAsset(25.0))
		require.NoError(t, calc.AddMinorityStake(domain.Participation{
			OwnershipPercentage:   decimal.NewFromFloat(10.0),
			TotalValue:            decimal.NewFromFloat(25.0),
			SustainablePercentage: decimal.NewFromFloat(55.0),
		}))

		first := calc.CalculateTotal()
		second := calc.CalculateTotal()
		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("empty fund", func(t *testing.T) {
		result := New("Empty", "Article 6", "2024-12-31").CalculateTotal()
		require.True(t, result.FundTotal.TotalValue.IsZero())
		require.True(t, result.FundTotal.SustainablePercentage.IsZero())
	})
}

func TestCalculationResult_JSONRoundTrip(t *testing.T) {
	calc := New("Green Real Estate Fund", "Article 8", "2024-12-31")
	calc.AddDirectAsset(sustainableAsset(25.0))
	require.NoError(t, calc.AddControlledParticipation(domain.Participation{
		OwnershipPercentage:   decimal.NewFromFloat(75.0),
		TotalValue:            decimal.NewFromFloat(60.0),
		SustainablePercentage: decimal.NewFromFloat(70.0),
	}))
	require.NoError(t, calc.AddUncontrolledParticipation(domain.Participation{
		OwnershipPercentage:   decimal.NewFromFloat(30.0),
		TotalValue:            decimal.NewFromFloat(40.0),
		SustainablePercentage: decimal.NewFromFloat(65.0),
	}))

	result := calc.CalculateTotal()

	serialized, err := json.Marshal(result)
	require.NoError(t, err)

	var roundTripped CalculationResult
	require.NoError(t, json.Unmarshal(serialized, &roundTripped))

	require.Equal(t, "", cmp.Diff(result, roundTripped))
}
