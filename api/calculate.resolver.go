package api

import (
	"context"

	"sustaincalc/internal/app"
	"sustaincalc/internal/calculator"
	"sustaincalc/internal/domain"
	"sustaincalc/internal/logger"
	"sustaincalc/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AssetInput struct {
	AssetID                   string           `json:"assetId"`
	Name                      string           `json:"name"`
	MarketValue               decimal.Decimal  `json:"marketValue"`
	EPCRating                 string           `json:"epcRating"`
	Top15Percent              bool             `json:"top15Percent"`
	NZEBCompliant             bool             `json:"nzebCompliant"`
	RenovationEnergyReduction *decimal.Decimal `json:"renovationEnergyReduction"`
	RenovationGHGReduction    *decimal.Decimal `json:"renovationGhgReduction"`
	UNSDGScore                *decimal.Decimal `json:"unSdgScore"`
	ESGScore                  *decimal.Decimal `json:"esgScore"`
	MSCIScore                 *decimal.Decimal `json:"msciScore"`
	DNSHCompliant             bool             `json:"dnshCompliant"`
}

type SCIInput struct {
	SCIID  string       `json:"sciId"`
	Name   string       `json:"name"`
	Assets []AssetInput `json:"assets"`
}

type ParticipationInput struct {
	VehicleID             string          `json:"vehicleId"`
	Name                  string          `json:"name"`
	OwnershipPercentage   decimal.Decimal `json:"ownershipPercentage"`
	TotalValue            decimal.Decimal `json:"totalValue"`
	SustainablePercentage decimal.Decimal `json:"sustainablePercentage"`
}

type PEFundInput struct {
	FundID                         string          `json:"fundId"`
	Name                           string          `json:"name"`
	InvestmentValue                decimal.Decimal `json:"investmentValue"`
	EstimatedSustainablePercentage decimal.Decimal `json:"estimatedSustainablePercentage"`
	EstimationMethod               string          `json:"estimationMethod"`
}

type CalculateRequest struct {
	FundName      string `json:"fundName"`
	FundType      string `json:"fundType"`
	ReportingDate string `json:"reportingDate"`

	MinSDGScore  *decimal.Decimal `json:"minSdgScore"`
	MinESGScore  *decimal.Decimal `json:"minEsgScore"`
	MinMSCIScore *decimal.Decimal `json:"minMsciScore"`

	DirectAssets               []AssetInput         `json:"directAssets"`
	SCIs                       []SCIInput           `json:"scis"`
	ControlledParticipations   []ParticipationInput `json:"controlledParticipations"`
	UncontrolledParticipations []ParticipationInput `json:"uncontrolledParticipations"`
	MinorityStakes             []ParticipationInput `json:"minorityStakes"`
	PEFundParticipations       []PEFundInput        `json:"peFundParticipations"`
}

type CalculateResponse struct {
	Result          calculator.CalculationResult `json:"result"`
	Assessment      string                       `json:"assessment"`
	ArticleGuidance []string                     `json:"articleGuidance"`
}

func (m ApiHandler) calculate(c *gin.Context) {
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, m.Logger)

	var requestBody CalculateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.CalculatorService.Calculate(ctx, m.toPortfolioInput(requestBody))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, CalculateResponse{
		Result:          *result,
		Assessment:      report.ProportionAssessment(result.FundTotal.SustainablePercentage),
		ArticleGuidance: report.ArticleGuidance(result.FundTotal.SustainablePercentage),
	})
}

func (m ApiHandler) toPortfolioInput(req CalculateRequest) app.PortfolioInput {
	thresholds := m.Thresholds
	if req.MinSDGScore != nil {
		thresholds.MinSDGScore = *req.MinSDGScore
	}
	if req.MinESGScore != nil {
		thresholds.MinESGScore = *req.MinESGScore
	}
	if req.MinMSCIScore != nil {
		thresholds.MinMSCIScore = *req.MinMSCIScore
	}

	in := app.PortfolioInput{
		FundName:      req.FundName,
		FundType:      req.FundType,
		ReportingDate: req.ReportingDate,
		Thresholds:    &thresholds,
	}

	for _, a := range req.DirectAssets {
		in.DirectAssets = append(in.DirectAssets, toAsset(a))
	}
	for _, s := range req.SCIs {
		assets := make([]domain.Asset, 0, len(s.Assets))
		for _, a := range s.Assets {
			assets = append(assets, toAsset(a))
		}
		in.SCIs = append(in.SCIs, domain.NewSCI(s.SCIID, s.Name, assets))
	}
	for _, p := range req.ControlledParticipations {
		in.ControlledParticipations = append(in.ControlledParticipations, toParticipation(p))
	}
	for _, p := range req.UncontrolledParticipations {
		in.UncontrolledParticipations = append(in.UncontrolledParticipations, toParticipation(p))
	}
	for _, p := range req.MinorityStakes {
		in.MinorityStakes = append(in.MinorityStakes, toParticipation(p))
	}
	for _, p := range req.PEFundParticipations {
		in.PEFundParticipations = append(in.PEFundParticipations, domain.PEFundParticipation{
			FundID:                         p.FundID,
			Name:                           p.Name,
			InvestmentValue:                p.InvestmentValue,
			EstimatedSustainablePercentage: p.EstimatedSustainablePercentage,
			EstimationMethod:               p.EstimationMethod,
		})
	}

	return in
}

func toAsset(a AssetInput) domain.Asset {
	return domain.Asset{
		AssetID:                   a.AssetID,
		Name:                      a.Name,
		MarketValue:               a.MarketValue,
		EPCRating:                 a.EPCRating,
		Top15Percent:              a.Top15Percent,
		NZEBCompliant:             a.NZEBCompliant,
		RenovationEnergyReduction: a.RenovationEnergyReduction,
		RenovationGHGReduction:    a.RenovationGHGReduction,
		UNSDGScore:                a.UNSDGScore,
		ESGScore:                  a.ESGScore,
		MSCIScore:                 a.MSCIScore,
		DNSHCompliant:             a.DNSHCompliant,
	}
}

func toParticipation(p ParticipationInput) domain.Participation {
	return domain.Participation{
		VehicleID:             p.VehicleID,
		Name:                  p.Name,
		OwnershipPercentage:   p.OwnershipPercentage,
		TotalValue:            p.TotalValue,
		SustainablePercentage: p.SustainablePercentage,
	}
}
