package tracker

// Booster is a bonus for reaching a threshold. Negative points mark a penalty
// for an undesired pattern.
type Booster struct {
	ID       string `json:"id" validate:"required,max=64"`
	Name     string `json:"name" validate:"max=200"`
	Points   int    `json:"points"`
	Progress *int   `json:"progress,omitempty" validate:"omitempty,min=0"`
	Required *int   `json:"required,omitempty" validate:"omitempty,min=1"`
	Achieved bool   `json:"achieved"`
}

type BoosterSummary struct {
	Boosters     []Booster `json:"boosters"`
	TotalEarned  int       `json:"total_earned"`
	TotalPenalty int       `json:"total_penalty"`
}

// IsAchieved uses progress against required when both are set and the
// supplied flag otherwise.
func IsAchieved(b Booster) bool {
	if b.Progress != nil && b.Required != nil {
		return *b.Progress >= *b.Required
	}
	return b.Achieved
}

func SummarizeBoosters(boosters []Booster) BoosterSummary {
	summary := BoosterSummary{Boosters: make([]Booster, 0, len(boosters))}
	for _, b := range boosters {
		b.Achieved = IsAchieved(b)
		if b.Achieved {
			if b.Points >= 0 {
				summary.TotalEarned += b.Points
			} else {
				summary.TotalPenalty += -b.Points
			}
		}
		summary.Boosters = append(summary.Boosters, b)
	}
	return summary
}
