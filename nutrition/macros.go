package nutrition

import "github.com/rs/zerolog"

// Goal is the closed set of goal tags that select a macro split.
type Goal string

const (
	WeightLoss    Goal = "weight_loss"
	MuscleGain    Goal = "muscle_gain"
	Endurance     Goal = "endurance"
	Maintenance   Goal = "maintenance"
	GeneralHealth Goal = "general_health"
)

// MacroSplit is a percentage allocation of calories. Percentages are whole
// numbers so the three always sum to exactly 100.
type MacroSplit struct {
	ProteinPct int
	CarbsPct   int
	FatPct     int
}

// Total returns the sum of the three percentages.
func (s MacroSplit) Total() int {
	return s.ProteinPct + s.CarbsPct + s.FatPct
}

var defaultSplit = MacroSplit{ProteinPct: 20, CarbsPct: 50, FatPct: 30}

var goalSplits = map[Goal]MacroSplit{
	WeightLoss:    {ProteinPct: 30, CarbsPct: 45, FatPct: 25},
	MuscleGain:    {ProteinPct: 30, CarbsPct: 45, FatPct: 25},
	Endurance:     {ProteinPct: 20, CarbsPct: 55, FatPct: 25},
	Maintenance:   defaultSplit,
	GeneralHealth: defaultSplit,
}

// Goals lists every recognized goal.
func Goals() []Goal {
	return []Goal{WeightLoss, MuscleGain, Endurance, Maintenance, GeneralHealth}
}

// ParseGoal reports whether tag is a recognized goal.
func ParseGoal(tag string) (Goal, bool) {
	g := Goal(tag)
	_, ok := goalSplits[g]
	return g, ok
}

// Split returns the macro split for g, or the maintenance split for an
// unrecognized goal.
func (g Goal) Split() MacroSplit {
	if s, ok := goalSplits[g]; ok {
		return s
	}
	return defaultSplit
}

// PrimaryGoal returns the first recognized goal in list order. ok is false
// when no tag is recognized, in which case Maintenance is returned.
func PrimaryGoal(goals []string) (goal Goal, ok bool) {
	for _, tag := range goals {
		if g, recognized := ParseGoal(tag); recognized {
			return g, true
		}
	}
	return Maintenance, false
}

// MacroResult holds daily gram targets and the calorie total they add up to.
type MacroResult struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	Calories int `json:"calories"`
}

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// CalculateMacros splits tdee into gram targets using the first recognized
// goal. Calories is recomputed from the rounded grams, so it can differ from
// tdee by a few calories.
func CalculateMacros(tdee float64, goals []string, log zerolog.Logger) (MacroResult, error) {
	if !isFinite(tdee) || tdee <= 0 {
		err := &Error{
			Kind:    KindDownstream,
			Field:   "tdee",
			Code:    ErrInvalidTDEE,
			Message: "Invalid TDEE value: must be a positive number",
		}
		log.Error().Float64("tdee", tdee).Msg(err.Message)
		return MacroResult{}, err
	}

	if len(goals) == 0 {
		log.Warn().Msg("no goals provided; using maintenance macro split")
	}
	goal, recognized := PrimaryGoal(goals)
	split := goal.Split()

	result := MacroResult{
		ProteinG: gramsFor(tdee, split.ProteinPct, kcalPerGramProtein),
		CarbsG:   gramsFor(tdee, split.CarbsPct, kcalPerGramCarbs),
		FatG:     gramsFor(tdee, split.FatPct, kcalPerGramFat),
	}
	result.Calories = result.ProteinG*kcalPerGramProtein +
		result.CarbsG*kcalPerGramCarbs +
		result.FatG*kcalPerGramFat

	log.Info().
		Str("goal", string(goal)).
		Bool("fallback", !recognized).
		Int("protein_g", result.ProteinG).
		Int("carbs_g", result.CarbsG).
		Int("fat_g", result.FatG).
		Int("calories", result.Calories).
		Msg("macros calculated")
	return result, nil
}

func gramsFor(tdee float64, pct, kcalPerGram int) int {
	return int(roundHalfUp(tdee * float64(pct) / 100 / float64(kcalPerGram)))
}
