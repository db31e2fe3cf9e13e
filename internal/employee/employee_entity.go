package employee

import (
	"time"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee is the master record: identity fields plus the static
// earnings/deductions the payslip pipeline reads.
type Employee struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	EmpCode     string `gorm:"uniqueIndex:uq_employee_code"`
	Name        string `gorm:"not null"`
	Designation string
	Department  string
	BankAccount string
	IFSC        string `gorm:"column:ifsc"`
	PAN         string `gorm:"column:pan"`
	JoiningDate string // free-form, as entered
	Notes       string
	Status      string `gorm:"default:Active"`

	// Static earnings & deductions
	Basic            float64 `gorm:"default:0"`
	HRA              float64 `gorm:"column:hra;default:0"`
	LTA              float64 `gorm:"column:lta;default:0"`
	SpecialAllowance float64 `gorm:"default:0"`
	IncomeTax        float64 `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Compensation extracts the pay components for the financial calculator.
func (e Employee) Compensation() finance.Compensation {
	return finance.Compensation{
		Basic:            e.Basic,
		HRA:              e.HRA,
		LTA:              e.LTA,
		SpecialAllowance: e.SpecialAllowance,
		IncomeTax:        e.IncomeTax,
	}
}
