package pdf

import (
	"bytes"
	"testing"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testDocument() Document {
	sum := finance.Compute(finance.Compensation{
		Basic:            30000,
		HRA:              12000,
		LTA:              2000,
		SpecialAllowance: 1000,
		IncomeTax:        3500,
	})
	words, _ := finance.AmountToWords(sum.Net)
	return Document{
		EmployeeName:  "Asha Rao",
		EmpCode:       "EMP042",
		Designation:   "Pharmacist",
		PAN:           "ABCDE1234F",
		PayPeriod:     "December 2025",
		Summary:       sum,
		AmountInWords: words,
	}
}

func TestGenerate_MissingAssetsStillProducesPDF(t *testing.T) {
	// Both candidates point nowhere: header must degrade to text-only
	// and the font to built-in Helvetica, without an error.
	composer := NewComposer(Config{
		OrgName:         "Mariomed Pharmaceuticals",
		OrgAddressLines: []string{"S1, Ground Floor, Sonam Annapoorna CHS", "THANE - 401105"},
		LogoCandidates:  []string{"testdata/does-not-exist.png"},
		FontCandidates:  []string{"testdata/does-not-exist.ttf"},
	}, zap.NewNop())

	var buf bytes.Buffer
	err := composer.Generate(testDocument(), &buf)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestGenerate_NoAssetCandidates(t *testing.T) {
	composer := NewComposer(Config{OrgName: "Mariomed Pharmaceuticals"}, zap.NewNop())

	var buf bytes.Buffer
	err := composer.Generate(testDocument(), &buf)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestGenerate_WithoutWordsSection(t *testing.T) {
	composer := NewComposer(Config{OrgName: "Mariomed Pharmaceuticals"}, zap.NewNop())

	doc := testDocument()
	doc.AmountInWords = ""

	var buf bytes.Buffer
	assert.NoError(t, composer.Generate(doc, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestGenerate_Deterministic(t *testing.T) {
	composer := NewComposer(Config{OrgName: "Mariomed Pharmaceuticals"}, zap.NewNop())
	doc := testDocument()

	var a, b bytes.Buffer
	assert.NoError(t, composer.Generate(doc, &a))
	assert.NoError(t, composer.Generate(doc, &b))
	// fpdf stamps a creation date; everything before the metadata block
	// is layout and must match.
	assert.Equal(t, a.Len(), b.Len())
}

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		41500:      "41,500.00",
		100000:     "1,00,000.00",
		1234567.5:  "12,34,567.50",
		12345678.9: "1,23,45,678.90",
		999:        "999.00",
		-1500:      "-1,500.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatINR(in))
	}
}

func TestPadRows(t *testing.T) {
	rows := padRows([]row{{Label: "Income Tax", Amount: "Rs. 3,500.00"}}, 4)
	assert.Len(t, rows, 4)
	assert.Equal(t, "Income Tax", rows[0].Label)
	assert.Equal(t, row{}, rows[3])

	// Already long enough: unchanged.
	rows = padRows(rows, 2)
	assert.Len(t, rows, 4)
}

func TestResolveAsset(t *testing.T) {
	assert.Equal(t, "", resolveAsset(nil))
	assert.Equal(t, "", resolveAsset([]string{"", "nope.png"}))
	assert.Equal(t, "composer.go", resolveAsset([]string{"missing.png", "composer.go"}))
}
