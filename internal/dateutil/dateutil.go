// Package dateutil provides Spanish date spelling utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alnah/go-fonema/internal/numword"
)

// ErrInvalidMonth indicates a month number outside 1-12.
var ErrInvalidMonth = errors.New("invalid month")

// monthNames is indexed from 0 (enero).
var monthNames = [12]string{
	"enero",
	"febrero",
	"marzo",
	"abril",
	"mayo",
	"junio",
	"julio",
	"agosto",
	"septiembre",
	"octubre",
	"noviembre",
	"diciembre",
}

// MonthName returns the Spanish name of a 1-based month number.
func MonthName(month int) (string, error) {
	idx := month - 1
	if idx < 0 || idx >= len(monthNames) {
		return "", fmt.Errorf("%w: %d (must be 1-12)", ErrInvalidMonth, month)
	}
	return monthNames[idx], nil
}

// Spoken spells a day/month/year triple as "<día> de <mes> de <año>".
// Day and year are not range-checked; only the month must exist.
func Spoken(day, month, year int) (string, error) {
	name, err := MonthName(month)
	if err != nil {
		return "", err
	}
	return numword.Cardinal(day) + " de " + name + " de " + numword.Cardinal(year), nil
}

// SpokenNumeric is Spoken for the digit strings of a D/M/YYYY match.
func SpokenNumeric(day, month, year string) (string, error) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return "", fmt.Errorf("parsing day %q: %w", day, err)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return "", fmt.Errorf("parsing month %q: %w", month, err)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", fmt.Errorf("parsing year %q: %w", year, err)
	}
	return Spoken(d, m, y)
}
