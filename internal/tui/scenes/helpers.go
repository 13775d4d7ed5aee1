package scenes

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func startLabel(p domain.SimulationParameters) string {
	return fmt.Sprintf("%d %s", p.StartDay, dateutil.Label(p.StartYear, p.StartMonth))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
