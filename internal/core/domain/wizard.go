package domain

// Step identifies one page of the linear campaign wizard. Steps advance
// only forward on successful submit; backward navigation is free.
type Step int

const (
	StepName Step = iota + 1
	StepPlatforms
	StepObjective
	StepAudience
	StepBudget
	StepCreative
	StepReview
)

const (
	FirstStep = StepName
	LastStep  = StepReview
)

// Valid reports whether s is within the defined step range.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Next returns the following step, capped at the review step.
func (s Step) Next() Step {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepPlatforms:
		return "platforms"
	case StepObjective:
		return "objective"
	case StepAudience:
		return "audience"
	case StepBudget:
		return "budget"
	case StepCreative:
		return "creative"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// StepFromName resolves a step by its route name. ok is false for names
// outside the defined flow.
func StepFromName(name string) (Step, bool) {
	for s := FirstStep; s <= LastStep; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
