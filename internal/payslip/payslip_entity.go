package payslip

import (
	"time"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"
)

// Payslip is an append-only snapshot of an employee's financials at
// generation time. It references the employee but does not own it, and
// is never mutated after creation.
type Payslip struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	EmployeeID uint   `gorm:"not null;index:idx_employee_period"`
	PayPeriod  string `gorm:"not null;index:idx_employee_period"`
	Notes      string

	// Snapshot of the financial summary; the source record may change
	// after generation, this must not.
	Basic            float64
	HRA              float64 `gorm:"column:hra"`
	LTA              float64 `gorm:"column:lta"`
	SpecialAllowance float64
	IncomeTax        float64
	Gross            float64
	Net              float64

	FilePath    string
	GeneratedAt time.Time
	CreatedAt   time.Time
}

func snapshotFrom(sum finance.Summary) Payslip {
	return Payslip{
		Basic:            sum.Basic,
		HRA:              sum.HRA,
		LTA:              sum.LTA,
		SpecialAllowance: sum.SpecialAllowance,
		IncomeTax:        sum.IncomeTax,
		Gross:            sum.Gross,
		Net:              sum.Net,
	}
}
