package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/herdsim/internal/domain"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"point": BreakEvenText,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ProjectionResult
		Start       string
		CGF         string
		Final       *domain.AssetBreakdown
		Assumptions []string
	}{
		ProjectionResult: result,
		Start:            startLabel(result.Parameters),
		CGF:              onOff(result.Parameters.CGFEnabled),
		Final:            finalBreakdown(result),
		Assumptions:      Assumptions(result.Rules),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
