package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	apierrors "perfpulse/internal/errors"
	"perfpulse/pkg/contracts/domain"
)

var validate = validator.New()

// filterQuery is the validated shape of the record filter query string.
type filterQuery struct {
	Department    string   `validate:"omitempty,max=100"`
	MinExperience *int     `validate:"omitempty,gte=0"`
	MaxExperience *int     `validate:"omitempty,gte=0"`
	MinScore      *float64 `validate:"omitempty,gte=0,lte=5"`
	MaxScore      *float64 `validate:"omitempty,gte=0,lte=5"`
}

// filterFromQuery parses and validates the shared filter parameters:
// department, min_experience, max_experience, min_score, max_score.
func filterFromQuery(r *http.Request) (domain.RecordFilter, error) {
	q := r.URL.Query()
	fq := filterQuery{Department: q.Get("department")}

	if raw := q.Get("min_experience"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.RecordFilter{}, apierrors.ErrValidation("min_experience", "must be an integer")
		}
		fq.MinExperience = &v
	}
	if raw := q.Get("max_experience"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.RecordFilter{}, apierrors.ErrValidation("max_experience", "must be an integer")
		}
		fq.MaxExperience = &v
	}
	if raw := q.Get("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.RecordFilter{}, apierrors.ErrValidation("min_score", "must be a number")
		}
		fq.MinScore = &v
	}
	if raw := q.Get("max_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.RecordFilter{}, apierrors.ErrValidation("max_score", "must be a number")
		}
		fq.MaxScore = &v
	}

	if err := validate.Struct(fq); err != nil {
		var fields []apierrors.ValidationError
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, apierrors.ValidationError{
					Field:   fe.Field(),
					Message: "failed " + fe.Tag() + " validation",
				})
			}
		}
		return domain.RecordFilter{}, apierrors.NewValidationErrors(fields)
	}

	if fq.MinExperience != nil && fq.MaxExperience != nil && *fq.MinExperience > *fq.MaxExperience {
		return domain.RecordFilter{}, apierrors.ErrValidation("min_experience", "must not exceed max_experience")
	}
	if fq.MinScore != nil && fq.MaxScore != nil && *fq.MinScore > *fq.MaxScore {
		return domain.RecordFilter{}, apierrors.ErrValidation("min_score", "must not exceed max_score")
	}

	return domain.RecordFilter{
		Department:    fq.Department,
		MinExperience: fq.MinExperience,
		MaxExperience: fq.MaxExperience,
		MinScore:      fq.MinScore,
		MaxScore:      fq.MaxScore,
	}, nil
}
