// Package finance holds the payslip money math: the gross/net
// calculator and the amount-in-words formatter. Every surface that
// shows a figure (stats, preview, PDF, stored snapshot) goes through
// Compute so displayed and persisted values can never drift.
package finance

import (
	"math"
	"net/http"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/shared/apperror"
)

// Compensation is an employee's static pay components. Absent columns
// load as zero at the store boundary, so zero values are valid here.
type Compensation struct {
	Basic            float64
	HRA              float64
	LTA              float64
	SpecialAllowance float64
	IncomeTax        float64
}

// Summary is the derived financial breakdown for one pay period.
// Components are carried through unchanged; Gross and Net are the only
// rounded values and must be reused as-is downstream.
type Summary struct {
	Basic            float64
	HRA              float64
	LTA              float64
	SpecialAllowance float64
	IncomeTax        float64
	Gross            float64
	Net              float64
}

// Validate rejects compensation values no calculator result could be
// trusted from. Negative components are refused outright; the binding
// layer enforces the same rule, this is the backstop for records that
// predate it.
func Validate(c Compensation) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"basic", c.Basic},
		{"hra", c.HRA},
		{"lta", c.LTA},
		{"special_allowance", c.SpecialAllowance},
		{"income_tax", c.IncomeTax},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return apperror.New(
				apperror.CodeInvalidInput,
				f.name+" is not a usable amount",
				http.StatusBadRequest,
			)
		}
		if f.value < 0 {
			return apperror.New(
				apperror.CodeInvalidInput,
				f.name+" cannot be negative",
				http.StatusBadRequest,
			)
		}
	}
	return nil
}

// Compute derives gross and net pay. Pure and deterministic; net may be
// negative when income tax exceeds gross, which is a display concern,
// not an error.
func Compute(c Compensation) Summary {
	gross := c.Basic + c.HRA + c.LTA + c.SpecialAllowance
	net := gross - c.IncomeTax

	return Summary{
		Basic:            c.Basic,
		HRA:              c.HRA,
		LTA:              c.LTA,
		SpecialAllowance: c.SpecialAllowance,
		IncomeTax:        c.IncomeTax,
		Gross:            roundTo2(gross),
		Net:              roundTo2(net),
	}
}

// roundTo2 applies arithmetic (half away from zero) rounding to two
// decimal places. This is the single rounding point for money values.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
