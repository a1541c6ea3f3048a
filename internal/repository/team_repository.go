package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const teamSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100),
	age_start INTEGER,
	age_end INTEGER,
	gender VARCHAR(10)`

// TeamRepository manages persistence for teams. Unlike the other entity
// repositories it converts between raw records and the validated Team
// value, so the age and gender invariants hold for every row it writes.
type TeamRepository struct {
	*Generic
	db *sqlx.DB
}

// NewTeamRepository constructs a TeamRepository.
func NewTeamRepository(db *sqlx.DB, log *zap.Logger) *TeamRepository {
	return &TeamRepository{Generic: NewGeneric(db, "team", log), db: db}
}

// CreateTable ensures the team table exists.
func (r *TeamRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, teamSchema)
}

// CreateTeam validates and inserts a team, assigning the store id.
func (r *TeamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	if err := team.Validate(); err != nil {
		return err
	}
	id, err := r.Insert(ctx, teamRecord(team))
	if err != nil {
		return err
	}
	team.ID = id
	return nil
}

// UpdateTeam validates the team and updates its row, reporting whether a
// row was changed.
func (r *TeamRepository) UpdateTeam(ctx context.Context, team *models.Team) (bool, error) {
	if team.ID == 0 {
		return false, fmt.Errorf("update team: missing id")
	}
	if err := team.Validate(); err != nil {
		return false, err
	}
	n, err := r.Update(ctx, teamRecord(team), Record{"id": team.ID})
	return n > 0, err
}

// DeleteTeam removes a team by id, reporting whether a row was deleted.
func (r *TeamRepository) DeleteTeam(ctx context.Context, id int64) (bool, error) {
	n, err := r.Delete(ctx, Record{"id": id})
	return n > 0, err
}

// GetTeamByID returns the team with the given id, or nil when absent.
func (r *TeamRepository) GetTeamByID(ctx context.Context, id int64) (*models.Team, error) {
	const query = `SELECT id, name, age_start, age_end, gender FROM team WHERE id = ? LIMIT 1`
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query, id); err != nil {
		return nil, fmt.Errorf("get team by id: %w", err)
	}
	if len(teams) == 0 {
		return nil, nil
	}
	return &teams[0], nil
}

// AllTeams returns every team.
func (r *TeamRepository) AllTeams(ctx context.Context) ([]models.Team, error) {
	const query = `SELECT id, name, age_start, age_end, gender FROM team`
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// SearchTeams returns teams whose name fuzzy-matches the term.
func (r *TeamRepository) SearchTeams(ctx context.Context, term string) ([]models.Team, error) {
	rows, err := r.List(ctx, Record{"name": term})
	if err != nil {
		return nil, err
	}
	return teamsFromRecords(rows), nil
}

// TeamsByGender returns teams declaring exactly the given gender.
func (r *TeamRepository) TeamsByGender(ctx context.Context, gender models.TeamGender) ([]models.Team, error) {
	const query = `SELECT id, name, age_start, age_end, gender FROM team WHERE gender = ?`
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query, gender); err != nil {
		return nil, fmt.Errorf("list teams by gender: %w", err)
	}
	return teams, nil
}

// TeamsByAgeRange returns teams whose age band overlaps the queried range:
// bands starting inside it, ending inside it, or fully contained by it.
func (r *TeamRepository) TeamsByAgeRange(ctx context.Context, minAge, maxAge int) ([]models.Team, error) {
	const query = `SELECT id, name, age_start, age_end, gender FROM team
		WHERE (age_start <= ? AND age_end >= ?)
		OR (age_start <= ? AND age_end >= ?)
		OR (age_start >= ? AND age_end <= ?)`
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query, maxAge, minAge, maxAge, minAge, minAge, maxAge); err != nil {
		return nil, fmt.Errorf("list teams by age range: %w", err)
	}
	return teams, nil
}

func teamRecord(t *models.Team) Record {
	return Record{
		"name":      t.Name,
		"age_start": t.AgeStart,
		"age_end":   t.AgeEnd,
		"gender":    string(t.Gender),
	}
}

func teamsFromRecords(rows []Record) []models.Team {
	teams := make([]models.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, models.Team{
			ID:       asID(row["id"]),
			Name:     asString(row["name"]),
			AgeStart: int(asID(row["age_start"])),
			AgeEnd:   int(asID(row["age_end"])),
			Gender:   models.TeamGender(asString(row["gender"])),
		})
	}
	return teams
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
