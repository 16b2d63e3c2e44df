package match

import (
	"testing"

	"campusjobs-backend/internal/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func job(id uint, required ...string) model.Job {
	return model.Job{ID: id, Title: "job", RequiredSkills: pq.StringArray(required)}
}

func ids(ranked []RankedJob) []uint {
	out := make([]uint, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.ID)
	}
	return out
}

func TestRank_descending(t *testing.T) {
	jobs := []model.Job{
		job(1, "java"),
		job(2, "go", "sql"),
		job(3, "go"),
		job(4, "go", "rust"),
	}

	ranked := Rank(jobs, []string{"Go", "SQL"})

	assert.Equal(t, []uint{2, 3, 4, 1}, ids(ranked))
	for i := 0; i+1 < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i].Recommendation.MatchScore, ranked[i+1].Recommendation.MatchScore)
	}
}

func TestRank_stableForEqualScores(t *testing.T) {
	jobs := []model.Job{
		job(7, "python"),
		job(3, "go"),
		job(9, "java"),
		job(1, "go"),
		job(5),
	}

	ranked := Rank(jobs, []string{"go"})

	assert.Equal(t, []uint{3, 1, 7, 9, 5}, ids(ranked))
}

func TestRank_doesNotTouchInput(t *testing.T) {
	jobs := []model.Job{job(1, "java"), job(2, "go")}

	ranked := Rank(jobs, []string{"go"})
	ranked[0].Title = "changed"

	assert.Equal(t, uint(1), jobs[0].ID)
	assert.Equal(t, "job", jobs[1].Title)
}

func TestRank_empty(t *testing.T) {
	assert.Empty(t, Rank(nil, []string{"go"}))

	ranked := Rank([]model.Job{job(1, "go")}, nil)
	assert.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].Recommendation.MatchScore)
}

func TestUnranked_keepsOrder(t *testing.T) {
	ranked := Unranked([]model.Job{job(3), job(1), job(2)})

	assert.Equal(t, []uint{3, 1, 2}, ids(ranked))
	assert.Nil(t, ranked[0].Recommendation)
}
