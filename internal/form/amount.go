package form

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errBadAmount = errors.New("invalid amount")

// Cents converts a decimal currency string into whole cents without
// going through floating point. Digits past the second decimal place
// round half-up: "0.005" becomes 1.
func Cents(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errBadAmount
	}

	negative := false

	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, errBadAmount
	}

	var whole int64

	if intPart != "" {
		// ParseInt would accept a second sign here; digits only.
		for _, r := range intPart {
			if r < '0' || r > '9' {
				return 0, errBadAmount
			}
		}

		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, errBadAmount
		}

		whole = n
	}

	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, errBadAmount
		}
	}

	if whole > (math.MaxInt64-99)/100 {
		return 0, errBadAmount
	}

	frac := fracPart + "00"
	cents := whole * 100
	cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')

	if len(fracPart) > 2 && fracPart[2] >= '5' {
		cents++
	}

	if negative {
		cents = -cents
	}

	return cents, nil
}
