package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a typed value cannot be parsed into the requested type.
var ErrInvalidInput = errors.New("invalid input")

// maxAmountExponent bounds amounts to the range of a float64, so both huge and
// tiny exponents are rejected before they are ever rendered.
const maxAmountExponent = 308

// ParseChoice parses a menu selection. The range of valid options is up to the caller.
func ParseChoice(raw string) (int, error) {
	return parseInt(raw, "choice")
}

// ParseID parses an employee identifier. Uniqueness and sign are not checked.
func ParseID(raw string) (int, error) {
	return parseInt(raw, "id")
}

// ParseHours parses the number of hours worked.
func ParseHours(raw string) (int, error) {
	return parseInt(raw, "hours")
}

// ParseName returns the whole line without its line terminator.
func ParseName(raw string) string {
	return strings.TrimRight(raw, "\r\n")
}

// ParseAmount parses a currency amount such as a salary or an hourly rate.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", ErrInvalidInput)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s' is not an amount", ErrInvalidInput, trimmed)
	}

	exponent := int(amount.Exponent())
	if exponent < -maxAmountExponent || amount.NumDigits()+exponent > maxAmountExponent+1 {
		return decimal.Zero, fmt.Errorf("%w: '%s' is out of range", ErrInvalidInput, trimmed)
	}

	return amount, nil
}

func parseInt(raw, field string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrInvalidInput, field)
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a valid %s", ErrInvalidInput, trimmed, field)
	}

	return value, nil
}
