package pdf

import (
	"io"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Palette lifted from the application's house style.
var (
	colorTextPrimary   = [3]int{30, 41, 59}    // #1E293B
	colorTextSecondary = [3]int{100, 116, 139} // #64748B
	colorSuccess       = [3]int{16, 185, 129}  // #10B981
	colorBackground    = [3]int{248, 250, 252} // #F8FAFC
	colorBorder        = [3]int{226, 232, 240} // #E2E8F0
	colorBannerFill    = [3]int{220, 252, 231} // #DCFCE7
)

type Composer struct {
	cfg      Config
	logoPath string
	fontPath string
	logger   *zap.Logger
}

// NewComposer resolves asset candidates once. Missing assets degrade,
// they never fail generation.
func NewComposer(cfg Config, logger ...*zap.Logger) *Composer {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	l = l.Named("payslip.pdf")

	c := &Composer{cfg: cfg, logger: l}

	c.logoPath = resolveAsset(cfg.LogoCandidates)
	if c.logoPath == "" && len(cfg.LogoCandidates) > 0 {
		l.Warn("logo asset not found, header renders text-only",
			zap.Strings("candidates", cfg.LogoCandidates))
	}
	c.fontPath = resolveAsset(cfg.FontCandidates)
	if c.fontPath == "" && len(cfg.FontCandidates) > 0 {
		l.Warn("unicode font not found, using built-in Helvetica",
			zap.Strings("candidates", cfg.FontCandidates))
	}

	return c
}

// Generate writes the payslip PDF for doc to w. Section order is fixed:
// header, summary card, earnings/deductions, net-payable banner,
// amount-in-words (optional), footer.
func (c *Composer) Generate(doc Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)

	font, symbol := c.setupFont(pdf)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	money := func(v float64) string { return symbol + formatINR(v) }

	y := c.drawHeader(pdf, font, marginL, marginT, contentW)
	y += 6
	y = c.drawSummaryCard(pdf, font, doc, money, marginL, y, contentW)
	y += 7
	y = c.drawEarningsDeductions(pdf, font, doc, money, marginL, y, contentW)
	y += 5
	y = c.drawNetPayableBanner(pdf, font, doc, money, marginL, y, contentW)
	y += 4
	if doc.AmountInWords != "" {
		y = c.drawAmountInWords(pdf, font, doc, marginL, y, contentW)
		y += 4
	}
	c.drawFooter(pdf, font, marginL, y, contentW)

	return pdf.Output(w)
}

// setupFont registers the resolved TTF when available; otherwise the
// built-in Helvetica is used and the rupee sign becomes "Rs. " since
// the core fonts cannot encode it.
func (c *Composer) setupFont(pdf *fpdf.Fpdf) (font, symbol string) {
	if c.fontPath != "" {
		pdf.AddUTF8Font("Custom", "", c.fontPath)
		pdf.AddUTF8Font("Custom", "B", c.fontPath)
		pdf.AddUTF8Font("Custom", "I", c.fontPath)
		if !pdf.Err() {
			return "Custom", "₹"
		}
		c.logger.Warn("unicode font failed to load, using built-in Helvetica",
			zap.String("path", c.fontPath), zap.Error(pdf.Error()))
		pdf.ClearError()
	}
	return "Helvetica", "Rs. "
}

func setColor(set func(int, int, int), c [3]int) {
	set(c[0], c[1], c[2])
}

func (c *Composer) drawHeader(pdf *fpdf.Fpdf, font string, marginL, marginT, contentW float64) float64 {
	textX := marginL

	if c.logoPath != "" {
		pdf.ImageOptions(c.logoPath, marginL, marginT, 25, 25, false,
			fpdf.ImageOptions{ReadDpi: true}, 0, "")
		if pdf.Err() {
			// Unreadable logo degrades the same way as a missing one.
			c.logger.Warn("logo could not be drawn, header renders text-only",
				zap.String("path", c.logoPath), zap.Error(pdf.Error()))
			pdf.ClearError()
		} else {
			textX = marginL + 30
		}
	}

	y := marginT
	pdf.SetFont(font, "B", 20)
	setColor(pdf.SetTextColor, colorTextPrimary)
	pdf.SetXY(textX, y)
	pdf.CellFormat(contentW-(textX-marginL), 9, c.cfg.OrgName, "", 1, "L", false, 0, "")
	y += 10

	pdf.SetFont(font, "", 10)
	setColor(pdf.SetTextColor, colorTextSecondary)
	for _, line := range c.cfg.OrgAddressLines {
		pdf.SetXY(textX, y)
		pdf.CellFormat(contentW-(textX-marginL), 5, line, "", 1, "L", false, 0, "")
		y += 5
	}

	// The logo may be taller than the text block.
	if c.logoPath != "" && y < marginT+25 {
		y = marginT + 25
	}
	return y
}

func (c *Composer) drawSummaryCard(pdf *fpdf.Fpdf, font string, doc Document, money func(float64) string, marginL, y, contentW float64) float64 {
	leftW := contentW * 0.55
	rightW := contentW - leftW

	details := []struct {
		label string
		value string
	}{
		{"Employee Name", doc.EmployeeName},
		{"Employee ID", doc.EmpCode},
		{"Pay Period", doc.PayPeriod},
		{"Designation", doc.Designation},
		{"PAN No", doc.PAN},
	}

	const (
		titleH = 8.0
		pairH  = 9.5
		padV   = 3.0
	)
	cardH := titleH + pairH*float64(len(details)) + padV*2

	// Card box spans the same width as the tables below it.
	setColor(pdf.SetDrawColor, colorBorder)
	pdf.Rect(marginL, y, contentW, cardH, "D")

	innerY := y + padV
	pdf.SetFont(font, "B", 11)
	setColor(pdf.SetTextColor, colorTextPrimary)
	pdf.SetXY(marginL+4, innerY)
	pdf.CellFormat(leftW-8, titleH, "EMPLOYEE SUMMARY", "", 1, "L", false, 0, "")
	innerY += titleH

	for _, d := range details {
		pdf.SetFont(font, "", 8.5)
		setColor(pdf.SetTextColor, colorTextSecondary)
		pdf.SetXY(marginL+4, innerY)
		pdf.CellFormat(leftW-8, 4, d.label, "", 1, "L", false, 0, "")

		pdf.SetFont(font, "B", 10)
		setColor(pdf.SetTextColor, colorTextPrimary)
		pdf.SetXY(marginL+4, innerY+4)
		pdf.CellFormat(leftW-8, 5, ": "+d.value, "", 1, "L", false, 0, "")
		innerY += pairH
	}

	// Right column: emphasized net pay.
	boxX := marginL + leftW
	setColor(pdf.SetFillColor, colorBackground)
	setColor(pdf.SetDrawColor, colorBorder)
	pdf.Rect(boxX, y, rightW, cardH, "FD")

	pdf.SetFont(font, "B", 22)
	setColor(pdf.SetTextColor, colorSuccess)
	pdf.SetXY(boxX, y+cardH/2-10)
	pdf.CellFormat(rightW, 12, money(doc.Summary.Net), "", 1, "C", false, 0, "")

	pdf.SetFont(font, "", 10)
	setColor(pdf.SetTextColor, colorTextSecondary)
	pdf.SetXY(boxX, y+cardH/2+3)
	pdf.CellFormat(rightW, 6, "Employee Net Pay", "", 1, "C", false, 0, "")

	return y + cardH
}

func (c *Composer) drawEarningsDeductions(pdf *fpdf.Fpdf, font string, doc Document, money func(float64) string, marginL, y, contentW float64) float64 {
	sum := doc.Summary

	earnings := []row{
		{"Basic", money(sum.Basic)},
		{"House Rent Allowance", money(sum.HRA)},
		{"LTA", money(sum.LTA)},
		{"Special Allowance", money(sum.SpecialAllowance)},
	}
	deductions := []row{
		{"Income Tax", money(sum.IncomeTax)},
	}

	// Both sub-tables carry the same row count so totals align.
	n := len(earnings)
	if len(deductions) > n {
		n = len(deductions)
	}
	earnings = padRows(earnings, n)
	deductions = padRows(deductions, n)

	colW := contentW / 2
	labelW := colW * 0.6
	amountW := colW - labelW

	const (
		headH = 8.0
		rowH  = 7.0
	)

	drawTable := func(x float64, header string, rows []row, totalLabel, totalAmount string) {
		ty := y

		pdf.SetFont(font, "B", 10)
		setColor(pdf.SetTextColor, colorTextPrimary)
		setColor(pdf.SetFillColor, colorBackground)
		setColor(pdf.SetDrawColor, colorBorder)
		pdf.SetXY(x, ty)
		pdf.CellFormat(labelW, headH, header, "1", 0, "L", true, 0, "")
		pdf.CellFormat(amountW, headH, "AMOUNT", "1", 1, "R", true, 0, "")
		ty += headH

		for _, r := range rows {
			pdf.SetXY(x, ty)
			pdf.SetFont(font, "", 9.5)
			setColor(pdf.SetTextColor, colorTextSecondary)
			pdf.CellFormat(labelW, rowH, r.Label, "1", 0, "L", false, 0, "")
			setColor(pdf.SetTextColor, colorTextPrimary)
			pdf.CellFormat(amountW, rowH, r.Amount, "1", 1, "R", false, 0, "")
			ty += rowH
		}

		pdf.SetXY(x, ty)
		pdf.SetFont(font, "B", 10)
		setColor(pdf.SetTextColor, colorTextPrimary)
		pdf.CellFormat(labelW, headH, totalLabel, "1", 0, "L", true, 0, "")
		pdf.CellFormat(amountW, headH, totalAmount, "1", 1, "R", true, 0, "")
	}

	drawTable(marginL, "EARNINGS", earnings, "Gross Earnings", money(sum.Gross))
	drawTable(marginL+colW, "DEDUCTIONS", deductions, "Total Deductions", money(sum.IncomeTax))

	return y + headH + rowH*float64(n) + headH
}

func (c *Composer) drawNetPayableBanner(pdf *fpdf.Fpdf, font string, doc Document, money func(float64) string, marginL, y, contentW float64) float64 {
	const bannerH = 18.0

	setColor(pdf.SetFillColor, colorBannerFill)
	setColor(pdf.SetDrawColor, colorSuccess)
	pdf.Rect(marginL, y, contentW, bannerH, "FD")

	pdf.SetFont(font, "B", 12)
	setColor(pdf.SetTextColor, colorTextPrimary)
	pdf.SetXY(marginL+6, y+3)
	pdf.CellFormat(contentW*0.6, 7, "TOTAL NET PAYABLE", "", 1, "L", false, 0, "")

	pdf.SetFont(font, "", 8.5)
	setColor(pdf.SetTextColor, colorTextSecondary)
	pdf.SetXY(marginL+6, y+10)
	pdf.CellFormat(contentW*0.6, 5, "Gross Earnings - Total Deductions", "", 1, "L", false, 0, "")

	pdf.SetFont(font, "B", 16)
	setColor(pdf.SetTextColor, colorSuccess)
	pdf.SetXY(marginL+contentW*0.6, y+4)
	pdf.CellFormat(contentW*0.4-6, 10, money(doc.Summary.Net), "", 1, "R", false, 0, "")

	return y + bannerH
}

func (c *Composer) drawAmountInWords(pdf *fpdf.Fpdf, font string, doc Document, marginL, y, contentW float64) float64 {
	pdf.SetFont(font, "", 9.5)
	setColor(pdf.SetTextColor, colorTextSecondary)
	pdf.SetXY(marginL, y)
	pdf.MultiCell(contentW, 5, "Amount In Words : "+doc.AmountInWords, "", "L", false)
	return pdf.GetY()
}

func (c *Composer) drawFooter(pdf *fpdf.Fpdf, font string, marginL, y, contentW float64) {
	pdf.SetFont(font, "I", 8.5)
	setColor(pdf.SetTextColor, colorTextSecondary)
	pdf.SetXY(marginL, y+4)
	pdf.CellFormat(contentW, 5,
		"-- This is a system generated payslip, hence the signature is not required --",
		"", 1, "C", false, 0, "")
}
