package lifecycle

// Display is the presentation projection of a status: a human label, a tier
// and a progress percentage in [0, 100]. It is a pure function of the status.
type Display struct {
	Label    string `json:"label"`
	Tier     Tier   `json:"tier"`
	Progress int    `json:"progress"`
}

// FallbackDisplay is the lenient projection for a status nobody recognises:
// neutral tier, the raw string as label and zero progress. The core never
// returns it; adapters may opt in.
func FallbackDisplay(raw string) Display {
	return Display{Label: raw, Tier: TierNeutral, Progress: 0}
}
