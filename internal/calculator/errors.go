package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidOwnershipBracketError is returned when a participation's ownership
// percentage falls outside the bracket of the collection it is being added
// to. The holding is not inserted.
type InvalidOwnershipBracketError struct {
	Category  string
	Allowed   string
	Ownership decimal.Decimal
}

func (e *InvalidOwnershipBracketError) Error() string {
	return fmt.Sprintf(
		"%s requires ownership %s, got %s%%",
		e.Category, e.Allowed, e.Ownership.String(),
	)
}
