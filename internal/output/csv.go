package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// CSVYearlyFormatter writes one row per simulation year
type CSVYearlyFormatter struct{}

func (c CSVYearlyFormatter) Name() string { return "csv" }

func (c CSVYearlyFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Label", "Months", "HerdSize", "Revenue", "CPFCost", "CGFCost", "NetRevenue",
		"CumulativeNet", "AssetValue", "CumulativeTotal", "RecoveryPercent", "Status",
		"RevenueBreakEven", "TotalValueBreakEven"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, y := range result.Yearly {
		row := []string{
			strconv.Itoa(y.Year),
			y.Label,
			strconv.Itoa(y.Months),
			strconv.Itoa(y.HerdSize),
			y.Revenue.StringFixed(2),
			y.CPFCost.StringFixed(2),
			y.CGFCost.StringFixed(2),
			y.NetRevenue.StringFixed(2),
			y.CumulativeNet.StringFixed(2),
			y.AssetValue.StringFixed(2),
			y.CumulativeTotal.StringFixed(2),
			y.RecoveryPercent.StringFixed(2),
			string(y.Status),
			strconv.FormatBool(y.RevenueBreakEven),
			strconv.FormatBool(y.TotalValueBreakEven),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	// trailing summary rows so a spreadsheet shows the milestones
	be := result.BreakEven
	for _, row := range [][]string{
		{},
		{"InitialInvestment", be.InitialInvestment.StringFixed(2)},
		{"RevenueBreakEven", BreakEvenDate(be.RevenueBreakEven)},
		{"TotalValueBreakEven", BreakEvenDate(be.TotalValueBreakEven)},
	} {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVMonthlyFormatter writes one row per simulated month with the per-animal revenue split
type CSVMonthlyFormatter struct{}

func (c CSVMonthlyFormatter) Name() string { return "csv-monthly" }

func (c CSVMonthlyFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"MonthIndex", "Month", "HerdSize", "Revenue", "CPFCost", "CGFCost", "NetRevenue",
		"CumulativeNet", "AssetValue", "TotalValue", "UnitRevenueByAnimal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range result.Monthly {
		parts := make([]string, 0, len(m.UnitAnimalRevenue))
		for _, a := range m.UnitAnimalRevenue {
			parts = append(parts, a.AnimalID+"="+a.Amount.StringFixed(0))
		}
		row := []string{
			strconv.Itoa(m.MonthIndex + 1),
			dateutil.Label(m.Year, m.Month),
			strconv.Itoa(m.HerdSize),
			m.Revenue.StringFixed(2),
			m.CPFCost.StringFixed(2),
			m.CGFCost.StringFixed(2),
			m.NetRevenue.StringFixed(2),
			m.CumulativeNet.StringFixed(2),
			m.AssetValue.StringFixed(2),
			m.TotalValue.StringFixed(2),
			strings.Join(parts, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
