package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	pageWidth    = 297.0 // A4 landscape
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 12.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders a printable landscape report. The core PDF fonts are
// Latin-1 only, so amounts use the "Rs." prefix.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// pdfText strips glyphs the core fonts cannot draw
func pdfText(s string) string {
	return strings.NewReplacer(money.Rupee, money.RupeeASCII, "✔ ", "", "✔", "", "•", "-", "⚠ ", "").Replace(s)
}

func pdfCurr(d decimal.Decimal) string {
	return money.FormatWithSymbol(d, money.RupeeASCII)
}

func (p PDFFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	p.addSummary(pdf, result)
	p.addYearlyTable(pdf, result)
	p.addBreakdown(pdf, result)
	p.addAssumptions(pdf, result)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p PDFFormatter) addSummary(pdf *fpdf.Fpdf, result *domain.ProjectionResult) {
	params := result.Parameters
	be := result.BreakEven

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(11, 79, 108)
	pdf.CellFormat(contentWidth, 12, "Buffalo Herd Investment Projection", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(contentWidth, 7, fmt.Sprintf("%d unit(s) starting %s over %d months, growing fund %s",
		params.UnitCount, startLabel(params), params.DurationMonths, onOff(params.CGFEnabled)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 244, 248)
	pdf.SetDrawColor(200, 200, 200)
	rows := [][2]string{
		{"Initial Investment", pdfCurr(be.InitialInvestment)},
		{"Final Cumulative Net", pdfCurr(be.FinalCumulativeNet)},
		{"Final Herd Value", pdfCurr(be.FinalAssetValue)},
		{"Final Total Value", fmt.Sprintf("%s (%s)", pdfCurr(be.FinalTotalValue), money.Percent(be.TotalRecoveryPercent))},
		{"Revenue Break-Even", breakeven.Describe(be.RevenueBreakEven)},
		{"Total Value Break-Even", breakeven.Describe(be.TotalValueBreakEven)},
		{"Status", pdfText(string(be.Status))},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(80, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (p PDFFormatter) addYearlyTable(pdf *fpdf.Fpdf, result *domain.ProjectionResult) {
	header := []string{"Year", "Herd", "Revenue", "CPF", "CGF", "Cum. Net", "Herd Value", "Total", "Status"}
	widths := []float64{62, 14, 26, 22, 22, 28, 28, 28, 43}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(11, 79, 108)
	pdf.CellFormat(contentWidth, 8, "Yearly Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(50, 50, 50)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, y := range result.Yearly {
		cells := []string{
			y.Label,
			strconv.Itoa(y.HerdSize),
			pdfCurr(y.Revenue),
			pdfCurr(y.CPFCost),
			pdfCurr(y.CGFCost),
			pdfCurr(y.CumulativeNet),
			pdfCurr(y.AssetValue),
			pdfCurr(y.CumulativeTotal),
			pdfText(string(y.Status)),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 || i == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func (p PDFFormatter) addBreakdown(pdf *fpdf.Fpdf, result *domain.ProjectionResult) {
	b := finalBreakdown(result)
	if b == nil {
		return
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(11, 79, 108)
	pdf.CellFormat(contentWidth, 8, "Herd Value by Age ("+b.Label+")", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, br := range b.Brackets {
		pdf.CellFormat(40, 6, br.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, strconv.Itoa(br.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, pdfCurr(br.UnitValue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, pdfCurr(br.TotalValue), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 6, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 6, pdfCurr(b.Total), "1", 1, "R", true, 0, "")
	pdf.Ln(6)
}

func (p PDFFormatter) addAssumptions(pdf *fpdf.Fpdf, result *domain.ProjectionResult) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(11, 79, 108)
	pdf.CellFormat(contentWidth, 8, "Assumptions", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(80, 80, 80)
	for _, a := range Assumptions(result.Rules) {
		pdf.MultiCell(contentWidth, 5, "- "+pdfText(a), "", "L", false)
	}
}
