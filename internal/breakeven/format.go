package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// TableFormatter formats break-even analyses for the console
type TableFormatter struct{}

// Format renders the analysis of one projection
func (tf *TableFormatter) Format(result *domain.ProjectionResult) string {
	var sb strings.Builder
	a := result.BreakEven
	p := result.Parameters

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Units:                 %d\n", p.UnitCount))
	sb.WriteString(fmt.Sprintf("Horizon:               %d months\n", p.DurationMonths))
	sb.WriteString(fmt.Sprintf("Growing Fund:          %s\n", onOff(p.CGFEnabled)))
	sb.WriteString(fmt.Sprintf("Initial Investment:    %s\n", money.FormatINR(a.InitialInvestment)))
	sb.WriteString("\n")

	sb.WriteString("BREAK-EVEN POINTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Revenue only:          %s\n", tf.formatPoint(a.RevenueBreakEven)))
	sb.WriteString(fmt.Sprintf("Revenue + herd value:  %s\n", tf.formatPoint(a.TotalValueBreakEven)))
	sb.WriteString("\n")

	sb.WriteString("POSITION AT HORIZON\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Cumulative Net:        %s (%s)\n", money.FormatINR(a.FinalCumulativeNet), money.Percent(a.RevenueRecoveryPercent)))
	sb.WriteString(fmt.Sprintf("Herd Value:            %s\n", money.FormatINR(a.FinalAssetValue)))
	sb.WriteString(fmt.Sprintf("Total Value:           %s (%s)\n", money.FormatINR(a.FinalTotalValue), money.Percent(a.TotalRecoveryPercent)))
	sb.WriteString(fmt.Sprintf("Status:                %s\n", a.Status))

	return sb.String()
}

// FormatExtension renders the outcome of Extend
func (tf *TableFormatter) FormatExtension(ext *Extension) string {
	var sb strings.Builder

	sb.WriteString("EXTENDED BREAK-EVEN\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if !ext.Rerun {
		if ext.NeverRecovered {
			sb.WriteString(fmt.Sprintf("The %d-month horizon is already the longest allowed; break-even is %s.\n",
				ext.HorizonMonths, domain.NotProjected))
		} else {
			sb.WriteString("Both break-even points fall inside the chosen horizon.\n")
		}
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Projected to:          %d months\n", ext.HorizonMonths))
	sb.WriteString(fmt.Sprintf("Revenue only:          %s\n", tf.formatPoint(ext.Analysis.RevenueBreakEven)))
	sb.WriteString(fmt.Sprintf("Revenue + herd value:  %s\n", tf.formatPoint(ext.Analysis.TotalValueBreakEven)))
	if ext.NeverRecovered {
		sb.WriteString(fmt.Sprintf("\n⚠ The investment is not recovered within %d months.\n", ext.HorizonMonths))
	}
	return sb.String()
}

func (tf *TableFormatter) formatPoint(p *domain.BreakEvenPoint) string {
	if p == nil {
		return domain.NotProjected
	}
	return fmt.Sprintf("%s (%s)", Describe(p), p.Date.Format("2 Jan 2006"))
}

func onOff(b bool) string {
	if b {
		return "included"
	}
	return "excluded"
}

// JSONFormatter formats break-even analyses as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for the analysis of one projection
func (jf *JSONFormatter) Format(analysis domain.BreakEvenAnalysis) (string, error) {
	return jf.marshal(analysis)
}

// FormatExtension generates JSON output for an extension
func (jf *JSONFormatter) FormatExtension(ext *Extension) (string, error) {
	return jf.marshal(ext)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
