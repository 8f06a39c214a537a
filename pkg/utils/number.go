package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// NumberOrZero resolve valores numéricos opcionais vindos do store externo.
// Campos ausentes (ponteiro nulo) e NaN contam como zero em todas as
// agregações, nunca como erro.
func NumberOrZero(f *float64) float64 {
	if f == nil || math.IsNaN(*f) {
		return 0
	}
	return *f
}
