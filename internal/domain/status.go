package domain

// RecoveryStatus classifies how much of the initial investment a year has recovered
type RecoveryStatus string

const (
	StatusInProgress  RecoveryStatus = "In Progress"
	StatusRecovered25 RecoveryStatus = "25% Recovered"
	StatusRecovered50 RecoveryStatus = "50% Recovered"
	StatusRecovered75 RecoveryStatus = "75% Recovered"
	StatusBreakEven   RecoveryStatus = "✔ Break-Even"
)

// NotProjected is rendered in place of a break-even date the horizon never reached
const NotProjected = "Not Projected"

// IsBreakEven reports whether the status marks full recovery
func (s RecoveryStatus) IsBreakEven() bool {
	return s == StatusBreakEven
}
