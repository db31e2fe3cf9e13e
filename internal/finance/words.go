package finance

import (
	"errors"
	"math"
	"strings"
)

// maxWordsAmount caps conversion at under one lakh crore rupees, the
// largest value the crore/lakh word table can spell.
const maxWordsAmount = 1e12

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountToWords renders a rupee amount as legal-document words using
// the Indian crore/lakh grouping, e.g.
//
//	123045.50 → "One Lakh Twenty Three Thousand Forty Five Rupees and Fifty Paise Only"
//
// Negative amounts keep an explicit "Minus" prefix. Failure here is
// always soft for callers: a payslip is still generated, just without
// the words line.
func AmountToWords(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", errors.New("amount is not a finite number")
	}
	if math.Abs(amount) >= maxWordsAmount {
		return "", errors.New("amount too large to spell out")
	}

	negative := amount < 0
	// Work in paise so 0.45 never splits as 44 paise.
	totalPaise := int64(math.Round(math.Abs(amount) * 100))
	rupees := totalPaise / 100
	paise := totalPaise % 100

	var b strings.Builder
	if negative && totalPaise > 0 {
		b.WriteString("Minus ")
	}

	if rupees == 0 {
		b.WriteString("Zero Rupees")
	} else {
		b.WriteString(integerToWords(rupees))
		b.WriteString(" Rupees")
	}

	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(integerToWords(paise))
		b.WriteString(" Paise")
	}

	b.WriteString(" Only")
	return b.String(), nil
}

// integerToWords spells a positive integer with lakh/crore place
// values: crore (1e7), lakh (1e5), thousand, hundred, then tens/units.
func integerToWords(n int64) string {
	var parts []string

	if n >= 1e7 {
		parts = append(parts, integerToWords(n/1e7), "Crore")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, belowThousand(n/1e5), "Lakh")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, belowThousand(n/1000), "Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}

	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	var parts []string

	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, ones[n])
	}

	return strings.Join(parts, " ")
}
