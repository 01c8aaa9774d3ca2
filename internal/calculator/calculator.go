package calculator

import (
	"fmt"

	"sustaincalc/internal/domain"

	"github.com/shopspring/decimal"
)

// ownership bracket boundaries
var (
	controlledFloor   = decimal.NewFromInt(50) // exclusive
	uncontrolledFloor = decimal.NewFromInt(20) // inclusive
	uncontrolledCeil  = decimal.NewFromInt(50) // inclusive
	minorityCeil      = decimal.NewFromInt(20) // exclusive
)

// Calculator holds a fund's portfolio and computes its sustainable
// investment proportion. Holdings are grouped into six collections whose
// consolidation treatment differs: direct assets and SCIs are valued from
// asset-level data, controlled participations and PE funds consolidate in
// full, uncontrolled participations and minority stakes consolidate
// proportionally to ownership.
//
// A Calculator is owned by a single caller context; it is not safe for
// concurrent mutation. CalculateTotal is a pure read and may be called any
// number of times.
type Calculator struct {
	FundName      string
	FundType      string
	ReportingDate string
	Thresholds    domain.SustainabilityThresholds

	directAssets []domain.Asset
	scis         []domain.SCI
	controlled   []domain.Participation
	uncontrolled []domain.Participation
	minority     []domain.Participation
	peFunds      []domain.PEFundParticipation
}

func New(fundName, fundType, reportingDate string) *Calculator {
	return &Calculator{
		FundName:      fundName,
		FundType:      fundType,
		ReportingDate: reportingDate,
		Thresholds:    domain.DefaultThresholds(),
	}
}

// AddDirectAsset appends a directly held asset. No bracket check applies.
func (c *Calculator) AddDirectAsset(asset domain.Asset) {
	c.directAssets = append(c.directAssets, asset)
}

// AddSCI appends a wholly owned SCI. No bracket check applies.
func (c *Calculator) AddSCI(sci domain.SCI) {
	c.scis = append(c.scis, sci)
}

// AddControlledParticipation appends a controlled stake. Ownership must be
// strictly above 50%.
func (c *Calculator) AddControlledParticipation(p domain.Participation) error {
	if err := checkControlled(p); err != nil {
		return err
	}
	c.controlled = append(c.controlled, p)
	return nil
}

// AddUncontrolledParticipation appends an uncontrolled stake. Ownership
// must be within 20-50% inclusive.
func (c *Calculator) AddUncontrolledParticipation(p domain.Participation) error {
	if err := checkUncontrolled(p); err != nil {
		return err
	}
	c.uncontrolled = append(c.uncontrolled, p)
	return nil
}

// AddMinorityStake appends a minority stake. Ownership must be strictly
// below 20%.
func (c *Calculator) AddMinorityStake(p domain.Participation) error {
	if err := checkMinority(p); err != nil {
		return err
	}
	c.minority = append(c.minority, p)
	return nil
}

// AddPEFundParticipation appends a private equity fund investment. No
// bracket check applies.
func (c *Calculator) AddPEFundParticipation(p domain.PEFundParticipation) {
	c.peFunds = append(c.peFunds, p)
}

func checkControlled(p domain.Participation) error {
	if p.OwnershipPercentage.LessThanOrEqual(controlledFloor) {
		return &InvalidOwnershipBracketError{
			Category:  "controlled participation",
			Allowed:   ">50%",
			Ownership: p.OwnershipPercentage,
		}
	}
	return nil
}

func checkUncontrolled(p domain.Participation) error {
	if p.OwnershipPercentage.LessThan(uncontrolledFloor) || p.OwnershipPercentage.GreaterThan(uncontrolledCeil) {
		return &InvalidOwnershipBracketError{
			Category:  "uncontrolled participation",
			Allowed:   "20-50%",
			Ownership: p.OwnershipPercentage,
		}
	}
	return nil
}

func checkMinority(p domain.Participation) error {
	if p.OwnershipPercentage.GreaterThanOrEqual(minorityCeil) {
		return &InvalidOwnershipBracketError{
			Category:  "minority stake",
			Allowed:   "<20%",
			Ownership: p.OwnershipPercentage,
		}
	}
	return nil
}

// UpdateDirectAsset replaces the asset at index i.
func (c *Calculator) UpdateDirectAsset(i int, asset domain.Asset) error {
	if i < 0 || i >= len(c.directAssets) {
		return fmt.Errorf("no direct asset at index %d", i)
	}
	c.directAssets[i] = asset
	return nil
}

// RemoveDirectAsset deletes the asset at index i.
func (c *Calculator) RemoveDirectAsset(i int) error {
	if i < 0 || i >= len(c.directAssets) {
		return fmt.Errorf("no direct asset at index %d", i)
	}
	c.directAssets = append(c.directAssets[:i], c.directAssets[i+1:]...)
	return nil
}

func (c *Calculator) UpdateSCI(i int, sci domain.SCI) error {
	if i < 0 || i >= len(c.scis) {
		return fmt.Errorf("no SCI at index %d", i)
	}
	c.scis[i] = sci
	return nil
}

func (c *Calculator) RemoveSCI(i int) error {
	if i < 0 || i >= len(c.scis) {
		return fmt.Errorf("no SCI at index %d", i)
	}
	c.scis = append(c.scis[:i], c.scis[i+1:]...)
	return nil
}

// UpdateControlledParticipation replaces the stake at index i. The bracket
// check runs again on the replacement.
func (c *Calculator) UpdateControlledParticipation(i int, p domain.Participation) error {
	if i < 0 || i >= len(c.controlled) {
		return fmt.Errorf("no controlled participation at index %d", i)
	}
	if err := checkControlled(p); err != nil {
		return err
	}
	c.controlled[i] = p
	return nil
}

func (c *Calculator) RemoveControlledParticipation(i int) error {
	if i < 0 || i >= len(c.controlled) {
		return fmt.Errorf("no controlled participation at index %d", i)
	}
	c.controlled = append(c.controlled[:i], c.controlled[i+1:]...)
	return nil
}

func (c *Calculator) UpdateUncontrolledParticipation(i int, p domain.Participation) error {
	if i < 0 || i >= len(c.uncontrolled) {
		return fmt.Errorf("no uncontrolled participation at index %d", i)
	}
	if err := checkUncontrolled(p); err != nil {
		return err
	}
	c.uncontrolled[i] = p
	return nil
}

func (c *Calculator) RemoveUncontrolledParticipation(i int) error {
	if i < 0 || i >= len(c.uncontrolled) {
		return fmt.Errorf("no uncontrolled participation at index %d", i)
	}
	c.uncontrolled = append(c.uncontrolled[:i], c.uncontrolled[i+1:]...)
	return nil
}

func (c *Calculator) UpdateMinorityStake(i int, p domain.Participation) error {
	if i < 0 || i >= len(c.minority) {
		return fmt.Errorf("no minority stake at index %d", i)
	}
	if err := checkMinority(p); err != nil {
		return err
	}
	c.minority[i] = p
	return nil
}

func (c *Calculator) RemoveMinorityStake(i int) error {
	if i < 0 || i >= len(c.minority) {
		return fmt.Errorf("no minority stake at index %d", i)
	}
	c.minority = append(c.minority[:i], c.minority[i+1:]...)
	return nil
}

func (c *Calculator) UpdatePEFundParticipation(i int, p domain.PEFundParticipation) error {
	if i < 0 || i >= len(c.peFunds) {
		return fmt.Errorf("no PE fund participation at index %d", i)
	}
	c.peFunds[i] = p
	return nil
}

func (c *Calculator) RemovePEFundParticipation(i int) error {
	if i < 0 || i >= len(c.peFunds) {
		return fmt.Errorf("no PE fund participation at index %d", i)
	}
	c.peFunds = append(c.peFunds[:i], c.peFunds[i+1:]...)
	return nil
}
