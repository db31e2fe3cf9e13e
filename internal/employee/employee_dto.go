package employee

type CreateEmployeeRequest struct {
	EmpCode     string `json:"emp_code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	BankAccount string `json:"bank_account"`
	IFSC        string `json:"ifsc"`
	PAN         string `json:"pan"`
	JoiningDate string `json:"joining_date"`
	Notes       string `json:"notes"`

	Basic            float64 `json:"basic" binding:"omitempty,min=0"`
	HRA              float64 `json:"hra" binding:"omitempty,min=0"`
	LTA              float64 `json:"lta" binding:"omitempty,min=0"`
	SpecialAllowance float64 `json:"special_allowance" binding:"omitempty,min=0"`
	IncomeTax        float64 `json:"income_tax" binding:"omitempty,min=0"`
}

// UpdateEmployeeRequest additionally allows changing the status; new
// records are always created Active.
type UpdateEmployeeRequest struct {
	EmpCode     string `json:"emp_code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	BankAccount string `json:"bank_account"`
	IFSC        string `json:"ifsc"`
	PAN         string `json:"pan"`
	JoiningDate string `json:"joining_date"`
	Notes       string `json:"notes"`
	Status      string `json:"status" binding:"required,oneof=Active Inactive"`

	Basic            float64 `json:"basic" binding:"omitempty,min=0"`
	HRA              float64 `json:"hra" binding:"omitempty,min=0"`
	LTA              float64 `json:"lta" binding:"omitempty,min=0"`
	SpecialAllowance float64 `json:"special_allowance" binding:"omitempty,min=0"`
	IncomeTax        float64 `json:"income_tax" binding:"omitempty,min=0"`
}

type EmployeeResponse struct {
	ID          uint   `json:"id"`
	EmpCode     string `json:"emp_code"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	IFSC        string `json:"ifsc,omitempty"`
	PAN         string `json:"pan,omitempty"`
	JoiningDate string `json:"joining_date,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`

	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	LTA              float64 `json:"lta"`
	SpecialAllowance float64 `json:"special_allowance"`
	IncomeTax        float64 `json:"income_tax"`

	// Derived via the financial calculator, never stored.
	Gross float64 `json:"gross"`
	Net   float64 `json:"net"`
}

type GetEmployeesFilterRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=Active Inactive"`
	Department string `form:"department"`
}

type StatsResponse struct {
	TotalEmployees   int64   `json:"total_employees"`
	ActiveEmployees  int64   `json:"active_employees"`
	TotalNetPayroll  float64 `json:"total_net_payroll"`
	TotalDepartments int     `json:"total_departments"`
}
