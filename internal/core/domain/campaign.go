package domain

// Campaign is the remote campaign resource as the dashboard sees it. The
// server is the source of truth after every successful write; the wizard
// only caches the fields it edits. Platforms and Objective hold decoded UI
// keys, never wire values.
type Campaign struct {
	ID        string
	OrgID     string
	Name      string
	Status    string
	Platforms []Platform
	Objective Objective
	Audience  *Audience
	Budget    *Budget
	Creative  *Creative
}

// Budget is the campaign spend plan edited on the budget step. Amounts are
// integer units (e.g. cents).
type Budget struct {
	DailyBudget int64 `json:"daily_budget"`
	TotalBudget int64 `json:"total_budget"`
}

// Audience describes who the campaign should reach.
type Audience struct {
	Locations []string `json:"locations"`
	AgeMin    int      `json:"age_min"`
	AgeMax    int      `json:"age_max"`
	Genders   []string `json:"genders"`
}

// Creative is the ad content drafted on the creative step.
type Creative struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
}

// Campaign status values reported by the remote API.
const (
	StatusDraft  = "DRAFT"
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
	StatusEnded  = "ENDED"
)
