package lifecycle

// Tier is the visual severity class attached to a status.
type Tier int

const (
	TierNeutral Tier = iota
	TierInfo
	TierWarning
	TierSuccess
	TierDanger
)

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierNeutral: "neutral",
		TierInfo:    "info",
		TierWarning: "warning",
		TierSuccess: "success",
		TierDanger:  "danger",
	}
}

func (t Tier) String() string {
	if s, ok := getTierStrings()[t]; ok {
		return s
	}
	return "neutral"
}

// MarshalText renders the tier by name in JSON payloads.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
