package output

import (
	"encoding/json"

	"github.com/rgehrsitz/herdsim/internal/domain"
)

// JSONFormatter serializes the complete projection
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
