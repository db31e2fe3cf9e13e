package finance_test

import (
	"math"
	"testing"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"

	"github.com/stretchr/testify/assert"
)

func TestCompute_GrossAndNet(t *testing.T) {
	sum := finance.Compute(finance.Compensation{
		Basic:            30000,
		HRA:              12000,
		LTA:              2000,
		SpecialAllowance: 1000,
		IncomeTax:        3500,
	})

	assert.Equal(t, 45000.00, sum.Gross)
	assert.Equal(t, 41500.00, sum.Net)

	// Components pass through unchanged for display.
	assert.Equal(t, 30000.0, sum.Basic)
	assert.Equal(t, 12000.0, sum.HRA)
	assert.Equal(t, 2000.0, sum.LTA)
	assert.Equal(t, 1000.0, sum.SpecialAllowance)
	assert.Equal(t, 3500.0, sum.IncomeTax)
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	// 10.125 is exactly representable, so the rounding policy is pinned:
	// arithmetic rounding takes the half up, not to even.
	sum := finance.Compute(finance.Compensation{Basic: 10.125})
	assert.Equal(t, 10.13, sum.Gross)

	sum = finance.Compute(finance.Compensation{IncomeTax: 10.125})
	assert.Equal(t, -10.13, sum.Net)
}

func TestCompute_NegativeNetAllowed(t *testing.T) {
	sum := finance.Compute(finance.Compensation{Basic: 1000, IncomeTax: 2500})
	assert.Equal(t, 1000.00, sum.Gross)
	assert.Equal(t, -1500.00, sum.Net)
}

func TestCompute_Deterministic(t *testing.T) {
	in := finance.Compensation{
		Basic:            1234.56,
		HRA:              78.9,
		LTA:              0.01,
		SpecialAllowance: 999.99,
		IncomeTax:        100.10,
	}
	assert.Equal(t, finance.Compute(in), finance.Compute(in))
}

func TestCompute_ZeroValueInput(t *testing.T) {
	sum := finance.Compute(finance.Compensation{})
	assert.Equal(t, 0.00, sum.Gross)
	assert.Equal(t, 0.00, sum.Net)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, finance.Validate(finance.Compensation{Basic: 30000}))
	assert.NoError(t, finance.Validate(finance.Compensation{}))

	err := finance.Validate(finance.Compensation{HRA: -1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hra")

	err = finance.Validate(finance.Compensation{SpecialAllowance: math.NaN()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "special_allowance")

	err = finance.Validate(finance.Compensation{IncomeTax: math.Inf(1)})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "income_tax")
}
