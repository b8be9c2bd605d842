package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Recruit is one interest-form submission from a prospective member.
// Write-only from this application: no read, update or delete path exists.
type Recruit struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	PhoneNumber     string    `json:"phone_number" db:"phone_number"`
	ExperienceLevel string    `json:"experience_level" db:"experience_level"`
	Year            string    `json:"year" db:"year"`
	AboutResponse   string    `json:"about_response" db:"about_response"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Experience levels and years offered by the intake form.
var (
	ExperienceLevels = []interface{}{"none", "beginner", "intermediate", "advanced", "competitive"}
	Years            = []interface{}{"incoming", "freshman", "sophomore", "junior", "senior", "graduate"}
)

// SubmitRecruitRequest - POST /v1/recruits
type SubmitRecruitRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ExperienceLevel string `json:"experience_level"`
	Year            string `json:"year"`
	About           string `json:"about"`
}

// Validate mirrors the required fields of the intake form.
func (r SubmitRecruitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.ExperienceLevel, validation.Required, validation.In(ExperienceLevels...)),
		validation.Field(&r.Year, validation.Required, validation.In(Years...)),
		validation.Field(&r.About, validation.Length(0, 5000)),
	)
}

// ToEntity composes the stored row; the form collects first/last name
// separately but the table keeps one name column.
func (r *SubmitRecruitRequest) ToEntity() *Recruit {
	return &Recruit{
		Name:            strings.TrimSpace(r.FirstName + " " + r.LastName),
		Email:           r.Email,
		PhoneNumber:     r.Phone,
		ExperienceLevel: r.ExperienceLevel,
		Year:            r.Year,
		AboutResponse:   r.About,
	}
}
