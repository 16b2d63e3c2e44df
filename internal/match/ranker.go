package match

import (
	"sort"

	"campusjobs-backend/internal/model"
)

// RankedJob is a copy of a job annotated with its match result
type RankedJob struct {
	model.Job
	Recommendation *Result `json:"recommendation"`
}

// Rank scores every job against the candidate skills and orders them by
// descending match score. Jobs with equal scores keep their input order. The
// given jobs are not modified.
func Rank(jobs []model.Job, candidate []string) []RankedJob {
	ranked := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		res := Score(candidate, j.RequiredSkills, j.OptionalSkills)
		ranked = append(ranked, RankedJob{Job: j, Recommendation: &res})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Recommendation.MatchScore > ranked[b].Recommendation.MatchScore
	})
	return ranked
}

// Unranked wraps jobs without scoring them, keeping their order.
func Unranked(jobs []model.Job) []RankedJob {
	out := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, RankedJob{Job: j})
	}
	return out
}
