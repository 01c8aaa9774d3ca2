// Package holdingscsv loads holdings from CSV files for bulk import flows.
// Column layouts mirror the domain types; optional columns left empty stay
// unset rather than defaulting to zero.
package holdingscsv

import (
	"fmt"
	"os"

	"sustaincalc/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type assetRow struct {
	AssetID                   string           `csv:"asset_id"`
	Name                      string           `csv:"name"`
	MarketValue               decimal.Decimal  `csv:"market_value"`
	EPCRating                 string           `csv:"epc_rating"`
	Top15Percent              bool             `csv:"top_15_percent"`
	NZEBCompliant             bool             `csv:"nzeb_compliant"`
	RenovationEnergyReduction *decimal.Decimal `csv:"renovation_energy_reduction,omitempty"`
	RenovationGHGReduction    *decimal.Decimal `csv:"renovation_ghg_reduction,omitempty"`
	UNSDGScore                *decimal.Decimal `csv:"un_sdg_score,omitempty"`
	ESGScore                  *decimal.Decimal `csv:"esg_score,omitempty"`
	MSCIScore                 *decimal.Decimal `csv:"msci_score,omitempty"`
	DNSHCompliant             bool             `csv:"dnsh_compliant"`
}

type participationRow struct {
	VehicleID             string          `csv:"vehicle_id"`
	Name                  string          `csv:"name"`
	OwnershipPercentage   decimal.Decimal `csv:"ownership_percentage"`
	TotalValue            decimal.Decimal `csv:"total_value"`
	SustainablePercentage decimal.Decimal `csv:"sustainable_percentage"`
}

// LoadAssets reads a CSV of assets suitable for the direct-asset collection
// or for bundling into an SCI.
func LoadAssets(path string) ([]domain.Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset csv: %w", err)
	}
	defer f.Close()

	rows := []assetRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse asset csv %s: %w", path, err)
	}

	assets := make([]domain.Asset, 0, len(rows))
	for _, row := range rows {
		assets = append(assets, domain.Asset{
			AssetID:                   row.AssetID,
			Name:                      row.Name,
			MarketValue:               row.MarketValue,
			EPCRating:                 row.EPCRating,
			Top15Percent:              row.Top15Percent,
			NZEBCompliant:             row.NZEBCompliant,
			RenovationEnergyReduction: row.RenovationEnergyReduction,
			RenovationGHGReduction:    row.RenovationGHGReduction,
			UNSDGScore:                row.UNSDGScore,
			ESGScore:                  row.ESGScore,
			MSCIScore:                 row.MSCIScore,
			DNSHCompliant:             row.DNSHCompliant,
		})
	}
	return assets, nil
}

// LoadParticipations reads a CSV of participations. Bracket checks run when
// the rows are added to a calculator, not here.
func LoadParticipations(path string) ([]domain.Participation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open participation csv: %w", err)
	}
	defer f.Close()

	rows := []participationRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse participation csv %s: %w", path, err)
	}

	participations := make([]domain.Participation, 0, len(rows))
	for _, row := range rows {
		participations = append(participations, domain.Participation{
			VehicleID:             row.VehicleID,
			Name:                  row.Name,
			OwnershipPercentage:   row.OwnershipPercentage,
			TotalValue:            row.TotalValue,
			SustainablePercentage: row.SustainablePercentage,
		})
	}
	return participations, nil
}
