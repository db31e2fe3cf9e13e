package payslip

type GeneratePayslipRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	PayPeriod  string `json:"pay_period" binding:"required"`
	Notes      string `json:"notes"`
}

type PayslipResponse struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employee_id"`
	PayPeriod  string `json:"pay_period"`
	Notes      string `json:"notes,omitempty"`

	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	LTA              float64 `json:"lta"`
	SpecialAllowance float64 `json:"special_allowance"`
	IncomeTax        float64 `json:"income_tax"`
	Gross            float64 `json:"gross"`
	Net              float64 `json:"net"`

	FilePath    string `json:"file_path"`
	GeneratedAt string `json:"generated_at"`
}

type PreviewResponse struct {
	EmployeeID   uint   `json:"employee_id"`
	EmpCode      string `json:"emp_code"`
	EmployeeName string `json:"employee_name"`

	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	LTA              float64 `json:"lta"`
	SpecialAllowance float64 `json:"special_allowance"`
	IncomeTax        float64 `json:"income_tax"`
	Gross            float64 `json:"gross"`
	Net              float64 `json:"net"`

	AmountInWords string `json:"amount_in_words,omitempty"`
}

type LookupPayslipRequest struct {
	EmployeeID uint   `form:"employee_id" binding:"required"`
	PayPeriod  string `form:"pay_period" binding:"required"`
}

type ListPayslipsFilterRequest struct {
	EmployeeID uint `form:"employee_id"`
}
