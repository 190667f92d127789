package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/leftover-labs/freedom-rate/internal/scenario"
	"github.com/leftover-labs/freedom-rate/pkg/format"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfReport builds the scenario comparison report page by page.
type pdfReport struct {
	pdf        *fpdf.Fpdf
	comparison scenario.Comparison
}

// PdfFormat renders the comparison as a PDF document.
func PdfFormat(comparison scenario.Comparison) ([]byte, error) {
	report := &pdfReport{
		pdf:        fpdf.New("P", "mm", "A4", ""),
		comparison: comparison,
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)

	report.addTitlePage()
	report.addScenarioPages()
	report.addDeltaSummary()

	var buf bytes.Buffer
	if err := report.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addTitlePage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 26)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(45)
	r.pdf.CellFormat(contentWidth, 14, "Freedom Rate Report", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 13)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(8)
	r.pdf.CellFormat(contentWidth, 9, TierSummary(r.comparison.Current), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.Ln(12)
	r.pdf.CellFormat(contentWidth, 8,
		fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	r.pdf.Ln(18)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Headline", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	headlines := []string{
		fmt.Sprintf("Monthly leftover: %s",
			format.Currency(r.comparison.CurrencySymbol, r.comparison.Current.Leftover)),
		fmt.Sprintf("Freedom rate: %.2f per hour across %.0f job hours",
			r.comparison.Current.FreedomPerHour, r.comparison.Current.HoursPerMonth),
		fmt.Sprintf("Efficiency score: %d/100", r.comparison.Current.Efficiency),
		fmt.Sprintf("Regional leftover percentile: p%d", r.comparison.PercentileRank),
	}
	for _, line := range headlines {
		r.pdf.CellFormat(contentWidth, 7, line, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")
}

func (r *pdfReport) addScenarioPages() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Scenario Breakdown", "", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	for _, result := range orderedResults(r.comparison) {
		r.addScenarioTable(result)
		r.pdf.Ln(6)
	}
}

func (r *pdfReport) addScenarioTable(result scenario.Result) {
	symbol := r.comparison.CurrencySymbol

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.CellFormat(contentWidth, 8,
		fmt.Sprintf("%s  (%s, %d/100)", result.Name, result.Tier, result.Efficiency),
		"1", 1, "L", true, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	half := contentWidth / 2
	for _, row := range breakdownRows {
		r.pdf.CellFormat(half, 6, row.label, "L", 0, "L", false, 0, "")
		r.pdf.CellFormat(half, 6, format.Currency(symbol, row.amount(result)), "R", 1, "R", false, 0, "")
	}
	r.pdf.CellFormat(half, 6, "Freedom rate", "LB", 0, "L", false, 0, "")
	r.pdf.CellFormat(half, 6, fmt.Sprintf("%.2f/hr over %.0f h", result.FreedomPerHour, result.HoursPerMonth),
		"RB", 1, "R", false, 0, "")
}

func (r *pdfReport) addDeltaSummary() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Scenario Deltas", "", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	symbol := r.comparison.CurrencySymbol
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	for _, name := range sortedDeltaNames(r.comparison.Deltas) {
		delta := r.comparison.Deltas[name]
		line := fmt.Sprintf("%s: leftover %s, rate %s", name,
			format.SignedCurrency(symbol, delta.Leftover),
			format.SignedRate(delta.FreedomPerHour))
		r.pdf.CellFormat(contentWidth, 7, line, "", 1, "L", false, 0, "")
	}

	if r.comparison.Relocation != nil && !mathutil.IsZero(r.comparison.Relocation.CommuteHoursSavedPerMonth) {
		r.pdf.Ln(4)
		r.pdf.CellFormat(contentWidth, 7,
			fmt.Sprintf("Relocation recovers %.1f commute hours per month",
				r.comparison.Relocation.CommuteHoursSavedPerMonth),
			"", 1, "L", false, 0, "")
	}
}
