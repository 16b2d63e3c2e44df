// Package match scores how well a candidate's skills fit a job and ranks job
// lists by that score.
package match

import (
	"math"

	"campusjobs-backend/internal/skill"
)

// Weights of required and optional skills in the final score
const (
	RequiredWeight = 80.0
	OptionalWeight = 20.0
)

// Explanations attached to a result
const (
	ExplainNoRequired = "Job has no required skills defined"
	ExplainExcellent  = "Excellent match based on your skills"
	ExplainGood       = "Good match, a few skills can be improved"
	ExplainPartial    = "Partial match, consider improving key skills"
	ExplainLow        = "Low match, many required skills are missing"
)

// Breakdown is the contribution of each skill group, rounded
type Breakdown struct {
	RequiredScore int `json:"required_score"`
	OptionalScore int `json:"optional_score"`
}

// Result is the match of one candidate against one job. It is computed on
// demand and never stored.
type Result struct {
	MatchScore      int       `json:"match_score"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	OptionalMatched []string  `json:"optional_matched"`
	Breakdown       Breakdown `json:"breakdown"`
	Explanation     string    `json:"explanation"`
}

// Score computes the match of candidate skills against the required and
// optional skills of a job. Required skills weigh 80, optional skills 20. A job
// without required skills always scores 0.
func Score(candidate, required, optional []string) Result {
	has := toSet(skill.NormalizeSet(candidate))
	req := skill.NormalizeSet(required)
	opt := skill.NormalizeSet(optional)

	if len(req) == 0 {
		return Result{
			MatchedSkills:   []string{},
			MissingSkills:   []string{},
			OptionalMatched: []string{},
			Explanation:     ExplainNoRequired,
		}
	}

	matched, missing := partition(req, has)
	requiredScore := float64(len(matched)) / float64(len(req)) * RequiredWeight

	optMatched, _ := partition(opt, has)
	optionalScore := 0.0
	if len(opt) > 0 {
		optionalScore = float64(len(optMatched)) / float64(len(opt)) * OptionalWeight
	}

	score := int(math.Round(math.Min(requiredScore+optionalScore, 100)))

	return Result{
		MatchScore:      score,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		OptionalMatched: optMatched,
		Breakdown: Breakdown{
			RequiredScore: int(math.Round(requiredScore)),
			OptionalScore: int(math.Round(optionalScore)),
		},
		Explanation: Explain(score),
	}
}

// Explain returns the explanation tier of a score.
func Explain(score int) string {
	switch {
	case score >= 85:
		return ExplainExcellent
	case score >= 65:
		return ExplainGood
	case score >= 40:
		return ExplainPartial
	default:
		return ExplainLow
	}
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func partition(skills []string, has map[string]struct{}) (in, out []string) {
	in, out = []string{}, []string{}
	for _, s := range skills {
		if _, ok := has[s]; ok {
			in = append(in, s)
		} else {
			out = append(out, s)
		}
	}
	return in, out
}
