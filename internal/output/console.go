package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// ConsoleFormatter renders the full projection report for a terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	p := result.Parameters

	fmt.Fprintln(&buf, strings.Repeat("=", 110))
	fmt.Fprintln(&buf, "BUFFALO HERD INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 110))
	fmt.Fprintf(&buf, "Units: %d | Start: %s | Horizon: %d months | Growing Fund: %s\n",
		p.UnitCount, startLabel(p), p.DurationMonths, onOff(p.CGFEnabled))
	fmt.Fprintf(&buf, "Initial Investment: %s | Final Herd: %d animals\n",
		FormatCurrency(result.BreakEven.InitialInvestment), result.FinalHerdSize())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range Assumptions(result.Rules) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEARLY SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 110))
	fmt.Fprintf(&buf, "%-32s %5s %12s %10s %10s %12s %12s %12s %-14s\n",
		"Year", "Herd", "Revenue", "CPF", "CGF", "Cum. Net", "Herd Value", "Total", "Status")
	for _, y := range result.Yearly {
		fmt.Fprintf(&buf, "%-32s %5d %12s %10s %10s %12s %12s %12s %-14s\n",
			y.Label,
			y.HerdSize,
			money.FormatLakhCrore(y.Revenue),
			money.FormatLakhCrore(y.CPFCost),
			money.FormatLakhCrore(y.CGFCost),
			money.FormatLakhCrore(y.CumulativeNet),
			money.FormatLakhCrore(y.AssetValue),
			money.FormatLakhCrore(y.CumulativeTotal),
			y.Status)
	}
	fmt.Fprintln(&buf)

	buf.WriteString((&breakeven.TableFormatter{}).Format(result))
	fmt.Fprintln(&buf)

	if b := finalBreakdown(result); b != nil {
		fmt.Fprintf(&buf, "HERD VALUE BY AGE (%s)\n", b.Label)
		fmt.Fprintln(&buf, strings.Repeat("-", 110))
		for _, br := range b.Brackets {
			if br.Count == 0 {
				continue
			}
			fmt.Fprintf(&buf, "  %-16s %4d x %-12s = %s\n",
				br.Label, br.Count, FormatCurrency(br.UnitValue), FormatCurrency(br.TotalValue))
		}
		fmt.Fprintf(&buf, "  %-16s %34s\n", "Total", FormatCurrency(b.Total))
	}

	return buf.Bytes(), nil
}
