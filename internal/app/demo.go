package app

import (
	"sustaincalc/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// DemoPortfolio returns the reference portfolio used by the demo and export
// commands: a fictional Article 8 fund mixing all six holding categories.
func DemoPortfolio() PortfolioInput {
	return PortfolioInput{
		FundName:      "Green Real Estate Fund",
		FundType:      "Article 8",
		ReportingDate: "2024-12-31",

		DirectAssets: []domain.Asset{
			{
				AssetID:       "DA001",
				Name:          "Office Paris",
				MarketValue:   dec(25.0),
				EPCRating:     "A",
				Top15Percent:  true,
				UNSDGScore:    decPtr(7.5),
				ESGScore:      decPtr(15.0),
				DNSHCompliant: true,
			},
			{
				AssetID:       "DA002",
				Name:          "Retail Lyon",
				MarketValue:   dec(15.0),
				EPCRating:     "B",
				UNSDGScore:    decPtr(6.0),
				ESGScore:      decPtr(14.0),
				DNSHCompliant: true,
			},
			{
				AssetID:       "DA003",
				Name:          "Logistics Lille",
				MarketValue:   dec(18.0),
				EPCRating:     "C",
				UNSDGScore:    decPtr(2.0),
				ESGScore:      decPtr(10.0),
				DNSHCompliant: true,
			},
			{
				AssetID:       "DA004",
				Name:          "Office Bordeaux",
				MarketValue:   dec(12.0),
				EPCRating:     "B",
				Top15Percent:  true,
				UNSDGScore:    decPtr(5.5),
				ESGScore:      decPtr(16.0),
				DNSHCompliant: true,
			},
			{
				AssetID:     "DA005",
				Name:        "Hotel Marseille",
				MarketValue: dec(20.0),
				EPCRating:   "D",
				UNSDGScore:  decPtr(3.0),
				ESGScore:    decPtr(7.0),
			},
		},

		SCIs: []domain.SCI{
			domain.NewSCI("SCI001", "SCI-1", []domain.Asset{
				{
					AssetID:       "SCI1-A1",
					Name:          "Office Strasbourg",
					MarketValue:   dec(14.0),
					EPCRating:     "A",
					Top15Percent:  true,
					UNSDGScore:    decPtr(8.0),
					ESGScore:      decPtr(17.0),
					DNSHCompliant: true,
				},
				{
					AssetID:                   "SCI1-A2",
					Name:                      "Retail Nantes",
					MarketValue:               dec(10.0),
					EPCRating:                 "C",
					RenovationEnergyReduction: decPtr(35.0),
					UNSDGScore:                decPtr(4.0),
					ESGScore:                  decPtr(12.0),
					DNSHCompliant:             true,
				},
				{
					AssetID:       "SCI1-A3",
					Name:          "Warehouse Toulouse",
					MarketValue:   dec(8.0),
					EPCRating:     "B",
					Top15Percent:  true,
					UNSDGScore:    decPtr(5.5),
					ESGScore:      decPtr(13.0),
					DNSHCompliant: true,
				},
			}),
			domain.NewSCI("SCI002", "SCI-2", []domain.Asset{
				{
					AssetID:                "SCI2-A1",
					Name:                   "Office Rennes",
					MarketValue:            dec(12.0),
					EPCRating:              "B",
					RenovationGHGReduction: decPtr(32.0),
					UNSDGScore:             decPtr(6.0),
					ESGScore:               decPtr(14.0),
					DNSHCompliant:          true,
				},
				{
					AssetID:     "SCI2-A2",
					Name:        "Retail Montpellier",
					MarketValue: dec(8.0),
					EPCRating:   "D",
					UNSDGScore:  decPtr(2.0),
					ESGScore:    decPtr(9.0),
				},
			}),
		},

		ControlledParticipations: []domain.Participation{
			{
				VehicleID:             "CP001",
				Name:                  "Green Office OPCI",
				OwnershipPercentage:   dec(75.0),
				TotalValue:            dec(60.0),
				SustainablePercentage: dec(70.0),
			},
		},

		UncontrolledParticipations: []domain.Participation{
			{
				VehicleID:             "UP001",
				Name:                  "Retail SCPI",
				OwnershipPercentage:   dec(30.0),
				TotalValue:            dec(40.0),
				SustainablePercentage: dec(65.0),
			},
			{
				VehicleID:             "UP002",
				Name:                  "Eco-Logistics Fund",
				OwnershipPercentage:   dec(25.0),
				TotalValue:            dec(30.0),
				SustainablePercentage: dec(80.0),
			},
		},

		MinorityStakes: []domain.Participation{
			{
				VehicleID:             "MS001",
				Name:                  "Urban Renewal Fund",
				OwnershipPercentage:   dec(10.0),
				TotalValue:            dec(25.0),
				SustainablePercentage: dec(55.0),
			},
		},

		PEFundParticipations: []domain.PEFundParticipation{
			{
				FundID:                         "PEF001",
				Name:                           "Green Infrastructure PE",
				InvestmentValue:                dec(20.0),
				EstimatedSustainablePercentage: dec(60.0),
				EstimationMethod:               "Based on fund manager's report",
			},
		},
	}
}
