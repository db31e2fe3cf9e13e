package payslip

import (
	"fmt"
	"strings"
)

// tokenReplacer maps every path-unsafe character to an underscore. Its
// outputs contain none of its inputs, so normalization is idempotent.
var tokenReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	" ", "_",
)

// NormalizeToken makes a filename fragment safe: no separators means no
// way to traverse out of the output directory.
func NormalizeToken(s string) string {
	return tokenReplacer.Replace(s)
}

// FileName derives the deterministic output name for a payslip, e.g.
// Payslip_EMP042_December_2025.pdf. Employees without a code fall back
// to their numeric id.
func FileName(empCode string, employeeID uint, payPeriod string) string {
	code := empCode
	if code == "" {
		code = fmt.Sprintf("%d", employeeID)
	}
	return fmt.Sprintf("Payslip_%s_%s.pdf", NormalizeToken(code), NormalizeToken(payPeriod))
}
