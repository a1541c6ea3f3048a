package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/acadely/academia-api/pkg/errors"
)

// TeamGender is the closed set of genders a team may declare.
type TeamGender string

const (
	GenderMixed  TeamGender = "Mixed"
	GenderMale   TeamGender = "Male"
	GenderFemale TeamGender = "Female"
)

// Team represents an age-banded group of students and teachers. Its
// invariants (name length, age bounds, age_start < age_end, closed gender
// set) hold at construction and after every mutation.
type Team struct {
	ID       int64      `db:"id" json:"id"`
	Name     string     `db:"name" json:"name" validate:"required,min=2,max=100"`
	AgeStart int        `db:"age_start" json:"age_start" validate:"gte=0,lte=100"`
	AgeEnd   int        `db:"age_end" json:"age_end" validate:"gte=0,lte=100,gtfield=AgeStart"`
	Gender   TeamGender `db:"gender" json:"gender" validate:"required,oneof=Mixed Male Female"`
}

var teamValidate = validator.New()

// NewTeam constructs a validated Team.
func NewTeam(name string, ageStart, ageEnd int, gender TeamGender) (*Team, error) {
	t := &Team{Name: name, AgeStart: ageStart, AgeEnd: ageEnd, Gender: gender}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate enforces the team invariants.
func (t *Team) Validate() error {
	if err := teamValidate.Struct(t); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid team")
	}
	return nil
}

// Apply mutates the team fields and re-validates the invariants.
func (t *Team) Apply(name string, ageStart, ageEnd int, gender TeamGender) error {
	updated := *t
	updated.Name = name
	updated.AgeStart = ageStart
	updated.AgeEnd = ageEnd
	updated.Gender = gender
	if err := updated.Validate(); err != nil {
		return err
	}
	*t = updated
	return nil
}

// AgeRange renders the team's age band for display.
func (t *Team) AgeRange() string {
	return fmt.Sprintf("%d - %d años", t.AgeStart, t.AgeEnd)
}
