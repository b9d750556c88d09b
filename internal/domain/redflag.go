package domain

// RedFlagSeverity classifies a detected activity pattern.
type RedFlagSeverity string

const (
	SeverityLow    RedFlagSeverity = "low"
	SeverityMedium RedFlagSeverity = "medium"
	SeverityHigh   RedFlagSeverity = "high"
)

// Red-flag rule codes.
const (
	RedFlagLowEffectiveness = "RF_LOW_EFFECTIVENESS"
	RedFlagTooConsistent7D  = "RF_TOO_CONSISTENT_7D"
)

// RedFlag is a rule-detected anomalous pattern attached to a salesman for
// one date or period. Ephemeral, never persisted.
type RedFlag struct {
	Code     string          `json:"code"`
	Title    string          `json:"title"`
	Severity RedFlagSeverity `json:"severity"`
	Reason   string          `json:"reason"`
}

// SalesmanRedFlags bundles every flag a salesman accumulated in a window.
type SalesmanRedFlags struct {
	SalesmanID   string    `json:"salesman_id"`
	SalesmanCode string    `json:"salesman_code"`
	SalesmanName string    `json:"salesman_name"`
	RedFlags     []RedFlag `json:"red_flags"`
}

// SeverityCount tallies flags by severity across a collection.
type SeverityCount struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CountRedFlagsBySeverity tallies every flag across the given salesmen.
func CountRedFlagsBySeverity(flagged []SalesmanRedFlags) SeverityCount {
	var counts SeverityCount
	for _, sf := range flagged {
		for _, f := range sf.RedFlags {
			switch f.Severity {
			case SeverityHigh:
				counts.High++
			case SeverityMedium:
				counts.Medium++
			case SeverityLow:
				counts.Low++
			}
		}
	}
	return counts
}

// DailyRedFlags is one day's flag set inside a per-salesman history.
type DailyRedFlags struct {
	Date  string    `json:"date"`
	Flags []RedFlag `json:"flags"`
}
