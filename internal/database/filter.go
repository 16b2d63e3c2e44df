package database

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/query"
)

// filterColumns maps filterable fields to job columns. Fields missing here
// are rejected.
var filterColumns = map[query.Field]string{
	query.FieldStatus:         "jobs.status",
	query.FieldPostedBy:       "jobs.posted_by_id",
	query.FieldTitle:          "jobs.title",
	query.FieldCompany:        "jobs.company",
	query.FieldLocation:       "jobs.location",
	query.FieldEmploymentType: "jobs.employment_type",
	query.FieldMode:           "jobs.mode",
	query.FieldRequiredSkills: "jobs.required_skills",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyFilter adds one WHERE per clause, the conditions of a clause are
// joined with OR.
func applyFilter(tx *gorm.DB, spec query.FilterSpec) (*gorm.DB, error) {
	for _, c := range spec.Clauses {
		if len(c.AnyOf) == 0 {
			continue
		}

		parts := make([]string, 0, len(c.AnyOf))
		args := make([]interface{}, 0, len(c.AnyOf))
		for _, cond := range c.AnyOf {
			col, ok := filterColumns[cond.Field]
			if !ok {
				return nil, errors.Errorf("unknown filter field %q", cond.Field)
			}

			switch cond.Op {
			case query.OpEqual:
				parts = append(parts, col+" = ?")
				args = append(args, cond.Value)
			case query.OpContainsFold:
				s, _ := cond.Value.(string)
				parts = append(parts, col+" ILIKE ?")
				args = append(args, "%"+likeEscaper.Replace(s)+"%")
			case query.OpOverlaps:
				v, _ := cond.Value.([]string)
				parts = append(parts, col+" && ?")
				args = append(args, pq.Array(v))
			default:
				return nil, errors.Errorf("unknown filter op %q", cond.Op)
			}
		}
		tx = tx.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
	return tx, nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// notFound classifies gorm.ErrRecordNotFound as NotFound with msg and wraps
// anything else with op.
func notFound(err error, msg, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.Wrap(apperror.KindNotFound, msg, err)
	}
	return errors.Wrap(err, op)
}
