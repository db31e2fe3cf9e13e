// Package pdf assembles the payslip document: a fixed-order sequence of
// sections (header, employee summary card, earnings/deductions tables,
// net-payable banner, amount-in-words, footer) rendered onto one A4
// page. All money values arrive pre-computed; nothing is derived here.
package pdf

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"
)

// Document carries everything the composer needs for one payslip.
type Document struct {
	EmployeeName string
	EmpCode      string
	Designation  string
	PAN          string
	PayPeriod    string

	Summary finance.Summary

	// AmountInWords is the pre-rendered words line; when empty the
	// section is omitted entirely.
	AmountInWords string
}

// Config declares the issuer identity and prioritized asset candidates.
// Assets are best-effort: a missing logo means a text-only header, a
// missing font means the built-in Helvetica with an ASCII currency mark.
type Config struct {
	OrgName         string
	OrgAddressLines []string
	LogoCandidates  []string
	FontCandidates  []string
}

// resolveAsset returns the first candidate that exists as a regular
// file, or "".
func resolveAsset(candidates []string) string {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

type row struct {
	Label  string
	Amount string
}

// padRows appends blank rows until the slice has n entries, so the
// earnings and deductions tables always line up row for row.
func padRows(rows []row, n int) []row {
	for len(rows) < n {
		rows = append(rows, row{})
	}
	return rows
}

// formatINR renders an amount with Indian digit grouping and two
// decimals: 1234567.5 → "12,34,567.50".
func formatINR(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		grouped = strings.Join(append(groups, tail), ",")
	}

	out := grouped + "." + fracPart
	if v < 0 {
		out = "-" + out
	}
	return out
}
