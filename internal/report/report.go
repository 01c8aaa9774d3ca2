package report

import (
	"fmt"
	"strings"

	"sustaincalc/internal/calculator"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// qualitative breakpoints for the sustainable proportion
var (
	highFloor        = decimal.NewFromInt(75)
	substantialFloor = decimal.NewFromInt(50)
	moderateFloor    = decimal.NewFromInt(20)

	article9Floor = decimal.NewFromInt(80)
)

// ProportionAssessment maps a fund-level sustainable percentage to its
// qualitative label.
func ProportionAssessment(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThanOrEqual(highFloor):
		return "High sustainable investment proportion (>75%)"
	case percentage.GreaterThanOrEqual(substantialFloor):
		return "Substantial sustainable investment proportion (50-75%)"
	case percentage.GreaterThanOrEqual(moderateFloor):
		return "Moderate sustainable investment proportion (20-50%)"
	default:
		return "Limited sustainable investment proportion (<20%)"
	}
}

// ArticleGuidance suggests SFDR article classifications for the given
// sustainable percentage. This is presentation policy, not regulatory
// advice; the 50% and 80% cutoffs follow common market practice.
func ArticleGuidance(percentage decimal.Decimal) []string {
	switch {
	case percentage.GreaterThanOrEqual(article9Floor):
		return []string{
			"Qualifies for Article 8 with sustainable investments",
			"May consider Article 9 classification (if environmental/social objective is the target)",
		}
	case percentage.GreaterThanOrEqual(substantialFloor):
		return []string{"Qualifies for Article 8 with sustainable investments"}
	case percentage.GreaterThanOrEqual(moderateFloor):
		return []string{"Qualifies for Article 8"}
	default:
		return []string{"Consider Article 6 classification"}
	}
}

// Dispersion summarizes how unevenly the sustainable share is distributed
// across the holding categories that actually carry value.
type Dispersion struct {
	Mean  float64
	Stdev float64
	Min   float64
	Max   float64
}

// CategoryDispersion computes dispersion statistics over the sustainable
// percentages of non-empty categories. It returns an error when fewer than
// two categories hold value, since a sample stdev needs at least two points.
func CategoryDispersion(result calculator.CalculationResult) (*Dispersion, error) {
	percentages := []float64{}
	for _, category := range result.Categories() {
		if category.TotalValue.IsPositive() {
			percentages = append(percentages, category.SustainablePercentage.InexactFloat64())
		}
	}
	if len(percentages) < 2 {
		return nil, fmt.Errorf("cannot compute dispersion over %d non-empty categories", len(percentages))
	}

	mean, err := stats.Mean(percentages)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	stdev, err := stats.StandardDeviationSample(percentages)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stdev: %w", err)
	}
	min, err := stats.Min(percentages)
	if err != nil {
		return nil, fmt.Errorf("failed to compute min: %w", err)
	}
	max, err := stats.Max(percentages)
	if err != nil {
		return nil, fmt.Errorf("failed to compute max: %w", err)
	}

	return &Dispersion{
		Mean:  mean,
		Stdev: stdev,
		Min:   min,
		Max:   max,
	}, nil
}

var categoryNames = []string{
	"Direct Assets",
	"100% Owned SCIs",
	"Controlled Participations",
	"Uncontrolled Participations",
	"Minority Stakes",
	"PE Fund Participations",
}

// Render formats the calculation result as a fixed-width text report with
// the per-category breakdown, fund total, qualitative assessment and
// article guidance.
func Render(result calculator.CalculationResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thinRule := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "SUSTAINABLE REAL ESTATE CALCULATION RESULTS: %s\n", result.FundInfo.FundName)
	fmt.Fprintf(&b, "Fund Type: %s | Reporting Date: %s\n", result.FundInfo.FundType, result.FundInfo.ReportingDate)
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "INVESTMENT CATEGORY BREAKDOWN:\n%s\n", thinRule)
	fmt.Fprintf(&b, "%-30s %-20s %-20s %-15s\n", "Category", "Total Value (€M)", "Sustainable (€M)", "Sustainable %")
	fmt.Fprintf(&b, "%s\n", thinRule)

	for i, category := range result.Categories() {
		fmt.Fprintf(&b, "%-30s %-20s %-20s %s%%\n",
			categoryNames[i],
			category.TotalValue.StringFixed(2),
			category.SustainableValue.StringFixed(2),
			category.SustainablePercentage.StringFixed(2),
		)
	}

	fmt.Fprintf(&b, "%s\n", thinRule)
	fmt.Fprintf(&b, "%-30s %-20s %-20s %s%%\n",
		"FUND TOTAL",
		result.FundTotal.TotalValue.StringFixed(2),
		result.FundTotal.SustainableValue.StringFixed(2),
		result.FundTotal.SustainablePercentage.StringFixed(2),
	)
	fmt.Fprintf(&b, "%s\n", thinRule)

	fmt.Fprintf(&b, "\nSUSTAINABILITY ASSESSMENT:\n%s\n", ProportionAssessment(result.FundTotal.SustainablePercentage))

	fmt.Fprintf(&b, "\nREGULATORY CLASSIFICATION GUIDANCE:\n")
	for _, line := range ArticleGuidance(result.FundTotal.SustainablePercentage) {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	if dispersion, err := CategoryDispersion(result); err == nil {
		fmt.Fprintf(&b, "\nCATEGORY DISPERSION (sustainable %% across non-empty categories):\n")
		fmt.Fprintf(&b, "mean %.2f | stdev %.2f | min %.2f | max %.2f\n",
			dispersion.Mean, dispersion.Stdev, dispersion.Min, dispersion.Max)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
