// Package accounting holds the stock accounting calculator: case arithmetic,
// stock aggregation, shopping-list building, usage accounting and the quick
// restock filter. Every function here is pure and works on in-memory data.
package accounting

import (
	"errors"
	"fmt"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// ErrNegativeQuantity is returned when a unit deficit below zero is passed in.
var ErrNegativeQuantity = errors.New("units needed must not be negative")

// CalculateCases converts a unit deficit into full cases plus extra units. A
// remainder always rounds the number of cases to buy up, suppliers do not
// sell partial cases.
func CalculateCases(unitsNeeded, unitsPerCase int) (models.CaseCalculation, error) {
	if unitsNeeded < 0 {
		return models.CaseCalculation{}, fmt.Errorf("%w: %d", ErrNegativeQuantity, unitsNeeded)
	}
	return caseBreakdown(unitsNeeded, unitsPerCase), nil
}

func caseBreakdown(units, perCase int) models.CaseCalculation {
	if perCase <= 1 {
		return models.CaseCalculation{
			TotalUnits:  units,
			ExtraUnits:  units,
			DisplayText: fmt.Sprintf("%d units", units),
		}
	}

	full := units / perCase
	extra := units % perCase
	toBuy := full
	if extra > 0 {
		toBuy++
	}

	calc := models.CaseCalculation{
		TotalUnits:  units,
		CasesNeeded: full,
		ExtraUnits:  extra,
		CasesToBuy:  toBuy,
	}
	if extra == 0 {
		calc.DisplayText = fmt.Sprintf("%d cases (%d units)", full, full*perCase)
	} else {
		calc.DisplayText = fmt.Sprintf("%d cases (%d full + %d extra = %d units)", toBuy, full, extra, toBuy*perCase)
	}
	return calc
}

// UnitsFromCases converts a cases-plus-singles count into units.
func UnitsFromCases(cs models.CaseSingles, unitsPerCase int) int {
	if unitsPerCase < 1 {
		unitsPerCase = 1
	}
	return cs.Cases*unitsPerCase + cs.Singles
}
