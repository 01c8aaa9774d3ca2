package app

import (
	"context"

	"sustaincalc/internal/calculator"
	"sustaincalc/internal/domain"
	"sustaincalc/internal/logger"

	"github.com/google/uuid"
)

// PortfolioInput is a fully formed portfolio as handed over by a
// presentation caller (API request, CSV import, demo dataset).
type PortfolioInput struct {
	FundName      string
	FundType      string
	ReportingDate string

	// nil means use the defaults
	Thresholds *domain.SustainabilityThresholds

	DirectAssets               []domain.Asset
	SCIs                       []domain.SCI
	ControlledParticipations   []domain.Participation
	UncontrolledParticipations []domain.Participation
	MinorityStakes             []domain.Participation
	PEFundParticipations       []domain.PEFundParticipation
}

type CalculatorService struct{}

// Assemble builds a Calculator from the input, minting identifiers for
// holdings that arrive without one. The bracket-gated collections are
// validated on insertion; the first violation aborts the build.
func (s CalculatorService) Assemble(in PortfolioInput) (*calculator.Calculator, error) {
	calc := calculator.New(in.FundName, in.FundType, in.ReportingDate)
	if in.Thresholds != nil {
		calc.Thresholds = *in.Thresholds
	}

	for _, asset := range in.DirectAssets {
		asset.AssetID = orMintID(asset.AssetID)
		calc.AddDirectAsset(asset)
	}
	for _, sci := range in.SCIs {
		sci.SCIID = orMintID(sci.SCIID)
		calc.AddSCI(sci)
	}
	for _, p := range in.ControlledParticipations {
		p.VehicleID = orMintID(p.VehicleID)
		if err := calc.AddControlledParticipation(p); err != nil {
			return nil, err
		}
	}
	for _, p := range in.UncontrolledParticipations {
		p.VehicleID = orMintID(p.VehicleID)
		if err := calc.AddUncontrolledParticipation(p); err != nil {
			return nil, err
		}
	}
	for _, p := range in.MinorityStakes {
		p.VehicleID = orMintID(p.VehicleID)
		if err := calc.AddMinorityStake(p); err != nil {
			return nil, err
		}
	}
	for _, p := range in.PEFundParticipations {
		p.FundID = orMintID(p.FundID)
		calc.AddPEFundParticipation(p)
	}

	return calc, nil
}

// Calculate assembles the portfolio and runs the consolidation.
func (s CalculatorService) Calculate(ctx context.Context, in PortfolioInput) (*calculator.CalculationResult, error) {
	log := logger.FromContext(ctx)

	calc, err := s.Assemble(in)
	if err != nil {
		return nil, err
	}

	result := calc.CalculateTotal()
	log.Infow("calculated sustainable investment proportion",
		"fund", in.FundName,
		"totalValue", result.FundTotal.TotalValue.String(),
		"sustainablePercentage", result.FundTotal.SustainablePercentage.StringFixed(2),
	)
	return &result, nil
}

func orMintID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
